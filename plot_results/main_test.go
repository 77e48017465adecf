package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"berkotech.co/rbplot/chart"
)

func quiet(k string) string {
	switch k {
	case "RBPLOT_NO_SHOW":
		return "1"
	case "RBPLOT_LOG_LEVEL":
		return "info"
	}
	return ""
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRun(t *testing.T) {
	path := writeCSV(t, "n,insert_time,search_time,delete_time\n"+
		"10,0.0000000000,0.0000000000,   0.000001\n"+
		"100,0.0000110000,0.0000010000,   0.000013\n"+
		"1000,0.0001200000,0.0000150000,   0.000160\n")
	var logs bytes.Buffer
	if code := run([]string{path, "bicolor"}, quiet, &logs); code != exitOK {
		t.Fatalf("exit code %d, logs:\n%s", code, logs.String())
	}
	if !exists(filepath.Join(filepath.Dir(path), chart.Filename)) {
		t.Error("chart not written")
	}
	for _, want := range []string{"loaded table", "saved chart", "ignoring extra arguments", "n^"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want int
	}{
		{"missing delete_time", "n,insert_time\n10,0.1\n", exitMalformedData},
		{"empty", "n,insert_time,delete_time\n", exitMalformedData},
		{"zero anchor", "n,insert_time,delete_time\n10,0.1,0.1\n0,0.2,0.2\n", exitDegenerateScale},
		{"infinite time", "n,insert_time,delete_time\n10,inf,0.1\n100,0.2,0.2\n", exitMalformedData},
		{"zero n", "n,insert_time,delete_time\n0,0.1,0.1\n10,0.2,0.2\n", exitMalformedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.csv)
			var logs bytes.Buffer
			if code := run([]string{path}, quiet, &logs); code != tt.want {
				t.Errorf("exit code %d, want %d; logs:\n%s", code, tt.want, logs.String())
			}
			if exists(filepath.Join(filepath.Dir(path), chart.Filename)) {
				t.Error("chart written despite failure")
			}
		})
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	if code := run([]string{filepath.Join(dir, "absent.csv")}, quiet, &logs); code != exitMissingInput {
		t.Errorf("exit code %d, want %d", code, exitMissingInput)
	}
	if exists(filepath.Join(dir, chart.Filename)) {
		t.Error("chart written for missing input")
	}
}

func TestRunUsage(t *testing.T) {
	var logs bytes.Buffer
	if code := run(nil, quiet, &logs); code != exitUsage {
		t.Errorf("exit code %d, want %d", code, exitUsage)
	}
}

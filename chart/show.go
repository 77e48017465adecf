package chart

import (
	"io"
	"runtime"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

// hasDisplay reports whether goos can show a window. X11 and Wayland
// systems need one of their display variables set.
func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows":
		return true
	case "linux", "freebsd", "openbsd", "netbsd":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
	return false
}

// Show opens the saved chart in the desktop's default viewer. Failures are
// logged and otherwise ignored.
func Show(path string, getenv func(string) string, logger log.FieldLogger) bool {
	if !hasDisplay(runtime.GOOS, getenv) {
		logger.Debug("no display available, not opening viewer")
		return false
	}
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := browser.OpenFile(path); err != nil {
		logger.WithError(err).WithField("path", path).Warn("could not open viewer")
		return false
	}
	return true
}

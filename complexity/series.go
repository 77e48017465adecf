package complexity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinTime is the smallest time plotted; log(0) is undefined.
const MinTime = 1e-6

// Floor returns a copy of v with every element raised to at least min.
func Floor(v []float64, min float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Max(x, min)
	}
	return out
}

// Reference returns the linear curve through the last point of times:
// ref[i] = times[last] * n[i] / n[last].
func Reference(n []int, times []float64) ([]float64, error) {
	if len(n) == 0 || len(n) != len(times) {
		return nil, fmt.Errorf("%w: %d n values for %d times", ErrMalformedData, len(n), len(times))
	}
	last := len(n) - 1
	if n[last] == 0 {
		return nil, fmt.Errorf("%w: anchor n is zero", ErrDegenerateScale)
	}
	anchor := float64(n[last])
	ref := make([]float64, len(n))
	for i, v := range n {
		ref[i] = times[last] * (float64(v) / anchor)
	}
	return ref, nil
}

// Float64s converts n to float64.
func Float64s(n []int) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		out[i] = float64(v)
	}
	return out
}

// Series is what gets drawn: the floored measurements and their reference.
type Series struct {
	N         []float64
	Insert    []float64
	Delete    []float64
	Reference []float64
}

// Prepare floors both time columns and derives the reference curve from
// the floored insertion times. t is not modified.
func Prepare(t *Table) (*Series, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("transform: %w: empty table", ErrMalformedData)
	}
	ins := Floor(t.Insert, MinTime)
	del := Floor(t.Delete, MinTime)
	ref, err := Reference(t.N, ins)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	return &Series{
		N:         Float64s(t.N),
		Insert:    ins,
		Delete:    del,
		Reference: ref,
	}, nil
}

// GrowthExponent estimates k in time ≈ c·n^k as the least-squares slope of
// log(time) against log(n). Rows with n <= 0 are skipped; ok is false when
// fewer than two distinct n remain.
func GrowthExponent(n, times []float64) (k float64, ok bool) {
	var xs, ys []float64
	for i := range n {
		if n[i] <= 0 || times[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(n[i]))
		ys = append(ys, math.Log(times[i]))
	}
	if len(xs) < 2 || floats.Min(xs) == floats.Max(xs) {
		return 0, false
	}
	_, k = stat.LinearRegression(xs, ys, nil, false)
	return k, true
}

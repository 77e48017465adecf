package chart

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

var subdivisions = [][]float64{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 5},
	{1},
}

// decadeTicks returns ticks at multiples of powers of ten between min and
// max, labelling the powers themselves. The subdivision gets coarser until
// at most limit ticks remain.
func decadeTicks(min, max float64, limit int) []plot.Tick {
	if min <= 0 || max < min {
		return nil
	}
	lo := int(math.Floor(math.Log10(min)))
	hi := int(math.Ceil(math.Log10(max)))

	var ticks []plot.Tick
	for _, subs := range subdivisions {
		ticks = decade(lo, hi, 1, subs, min, max)
		if limit <= 0 || len(ticks) <= limit {
			break
		}
	}
	if limit > 0 && len(ticks) > limit {
		ticks = decade(lo, hi, (hi-lo)/limit+1, []float64{1}, min, max)
	}

	labelled := false
	for _, t := range ticks {
		labelled = labelled || !t.IsMinor()
	}
	if !labelled {
		for i := range ticks {
			ticks[i].Label = formatTick(ticks[i].Value)
		}
	}
	return ticks
}

func decade(lo, hi, stride int, subs []float64, min, max float64) []plot.Tick {
	const eps = 1e-9
	var ticks []plot.Tick
	for e := lo; e <= hi; e += stride {
		pow := math.Pow10(e)
		for _, m := range subs {
			v := m * pow
			if v < min*(1-eps) || v > max*(1+eps) {
				continue
			}
			t := plot.Tick{Value: v}
			if m == 1 {
				t.Label = formatTick(v)
			}
			ticks = append(ticks, t)
		}
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type decadeTicker struct {
	Limit int
}

func (d decadeTicker) Ticks(min, max float64) []plot.Tick {
	return decadeTicks(min, max, d.Limit)
}

// sampleTicks labels every distinct sample position with its literal value
// and fills the rest of the axis with unlabelled decade ticks.
type sampleTicks struct {
	Values []float64
	Limit  int
}

func (s sampleTicks) Ticks(min, max float64) []plot.Tick {
	seen := make(map[float64]bool)
	var ticks []plot.Tick
	for _, v := range s.Values {
		if seen[v] {
			continue
		}
		seen[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	for _, t := range decadeTicks(min, max, s.Limit) {
		if seen[t.Value] {
			continue
		}
		t.Label = ""
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

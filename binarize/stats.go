package binarize

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/awpalmer/irextract/capture"
)

// Summary describes the voltage distribution of a capture. SuggestedTriggerV
// is the midpoint between the 5th and 95th percentile, which lands between
// the noise floor and the carrier peaks for a clean capture and gives the
// user a starting point when the default trigger does not fit their probe.
type Summary struct {
	MinV              float64
	MaxV              float64
	MeanV             float64
	SuggestedTriggerV float64
}

// Stats computes a Summary over every sample, window included, so the user
// sees the pre-trigger noise they may want to skip.
func Stats(samples []capture.Sample) Summary {
	volts := make([]float64, len(samples))
	for i, s := range samples {
		volts[i] = s.Voltage
	}
	sort.Float64s(volts)

	lo := stat.Quantile(0.05, stat.Empirical, volts, nil)
	hi := stat.Quantile(0.95, stat.Empirical, volts, nil)

	return Summary{
		MinV:              volts[0],
		MaxV:              volts[len(volts)-1],
		MeanV:             stat.Mean(volts, nil),
		SuggestedTriggerV: (lo + hi) / 2,
	}
}

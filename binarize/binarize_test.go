package binarize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awpalmer/irextract/capture"
	"github.com/awpalmer/irextract/config"
	"github.com/awpalmer/irextract/errs"
)

func TestBinarize(t *testing.T) {
	conf := config.CaptureConf{TriggerV: 1.0, StartTimeMS: 0}
	samples := []capture.Sample{
		{TimeMS: -0.5, Voltage: 3.3}, // pre-window, dropped
		{TimeMS: 0.0, Voltage: 0.1},
		{TimeMS: 0.1, Voltage: 1.0}, // at threshold counts as on
		{TimeMS: 0.2, Voltage: 3.3},
		{TimeMS: 0.3, Voltage: 0.9},
	}

	t.Run("Thresholding and window", func(t *testing.T) {
		points, err := Binarize(samples, conf)

		require.NoError(t, err)
		require.Len(t, points, 4)
		require.Equal(t, []bool{false, true, true, false}, levels(points))
		require.Equal(t, 0.0, points[0].TimeMS)
	})

	t.Run("Start time past last sample", func(t *testing.T) {
		late := conf
		late.StartTimeMS = 1.0
		_, err := Binarize(samples, late)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNoSignalAfterStart)
	})

	t.Run("All below trigger", func(t *testing.T) {
		quiet := []capture.Sample{
			{TimeMS: 0.0, Voltage: 0.1},
			{TimeMS: 0.1, Voltage: 0.2},
		}
		points, err := Binarize(quiet, conf)

		require.NoError(t, err)
		require.Equal(t, []bool{false, false}, levels(points))
	})
}

func levels(points []Point) []bool {
	out := make([]bool, len(points))
	for i, p := range points {
		out[i] = p.On
	}
	return out
}

func TestStats(t *testing.T) {
	var samples []capture.Sample
	// Half noise floor, half carrier peak.
	for i := 0; i < 50; i++ {
		samples = append(samples, capture.Sample{TimeMS: float64(i), Voltage: 0.1})
	}
	for i := 50; i < 100; i++ {
		samples = append(samples, capture.Sample{TimeMS: float64(i), Voltage: 3.3})
	}

	sum := Stats(samples)

	require.Equal(t, 0.1, sum.MinV)
	require.Equal(t, 3.3, sum.MaxV)
	require.InDelta(t, 1.7, sum.MeanV, 1e-9)
	// Suggested trigger sits between floor and peak.
	require.Greater(t, sum.SuggestedTriggerV, 0.1)
	require.Less(t, sum.SuggestedTriggerV, 3.3)
}

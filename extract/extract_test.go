package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awpalmer/irextract/capture"
	"github.com/awpalmer/irextract/config"
	"github.com/awpalmer/irextract/errs"
	"github.com/awpalmer/irextract/segment"
)

const sampleRate = 1e6 // one sample per microsecond

// synthesize builds the capture a scope would record for the given
// alternating on/off durations (microseconds), starting with on.
func synthesize(durationsUS ...int) []capture.Sample {
	var samples []capture.Sample
	on := true
	for _, dur := range durationsUS {
		volts := 0.0
		if on {
			volts = 3.3
		}
		for i := 0; i < dur; i++ {
			t := float64(len(samples)) / sampleRate * 1000 // ms
			samples = append(samples, capture.Sample{TimeMS: t, Voltage: volts})
		}
		on = !on
	}
	return samples
}

func testConf() config.Extract {
	conf := config.Defaults()
	conf.SampleRate = sampleRate
	return conf
}

func TestRun(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		want := []segment.Segment{
			{On: true, DurationUS: 560},
			{On: false, DurationUS: 560},
			{On: true, DurationUS: 560},
			{On: false, DurationUS: 1690},
		}
		res, err := Run(synthesize(560, 560, 560, 1690), testConf())

		require.NoError(t, err)
		require.Equal(t, want, res.Segments)
		require.True(t, res.FirstOn)

		// Decoding each code through the table reproduces the original
		// durations exactly.
		require.Len(t, res.Codes, len(want))
		for i, code := range res.Codes {
			require.GreaterOrEqual(t, code, 0)
			require.Less(t, code, len(res.Table.EntriesUS))
			require.Equal(t, want[i].DurationUS, res.Table.EntriesUS[code])
		}
		require.Equal(t, []uint32{560, 1690}, res.Table.EntriesUS)
		require.Equal(t, []int{0, 0, 0, 1}, res.Codes)
	})

	t.Run("Deterministic", func(t *testing.T) {
		samples := synthesize(560, 560, 560, 1690, 560, 4500)

		a, err := Run(samples, testConf())
		require.NoError(t, err)
		b, err := Run(samples, testConf())
		require.NoError(t, err)

		require.Equal(t, a, b)
	})

	t.Run("Alternation", func(t *testing.T) {
		res, err := Run(synthesize(560, 1690, 560, 560, 4500, 560), testConf())

		require.NoError(t, err)
		for i := 1; i < len(res.Segments); i++ {
			require.NotEqual(t, res.Segments[i-1].On, res.Segments[i].On)
		}
	})

	t.Run("All below trigger", func(t *testing.T) {
		samples := make([]capture.Sample, 1000)
		for i := range samples {
			samples[i] = capture.Sample{TimeMS: float64(i) / 1000, Voltage: 0.2}
		}
		res, err := Run(samples, testConf())

		require.NoError(t, err)
		require.Equal(t, []segment.Segment{{On: false, DurationUS: 1000}}, res.Segments)
		require.Equal(t, []uint32{1000}, res.Table.EntriesUS)
		require.Equal(t, []int{0}, res.Codes)
	})

	t.Run("Empty window", func(t *testing.T) {
		conf := testConf()
		conf.Capture.StartTimeMS = 1e6

		_, err := Run(synthesize(560, 560), conf)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNoSignalAfterStart)
	})

	t.Run("Table capacity respected", func(t *testing.T) {
		conf := testConf()
		conf.Cluster.MaxTableEntries = 2

		_, err := Run(synthesize(560, 1690, 4500, 560), conf)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTableOverflow)
	})
}

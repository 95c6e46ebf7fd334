package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

type CaptureConf struct {
	TriggerV    float64 `koanf:"trigger_v"`
	StartTimeMS float64 `koanf:"start_time_ms"`
}

type ClusterConf struct {
	ToleranceUS     uint32 `koanf:"tolerance_us"`
	MaxTableEntries int    `koanf:"max_table_entries"`
}

type OutputConf struct {
	Suffix string `koanf:"suffix"`
}

// Extract is the full parameter set for one extraction run. SampleRate comes
// from the command line, everything else from the config file with the
// defaults below.
type Extract struct {
	SampleRate float64
	Capture    CaptureConf
	Cluster    ClusterConf
	Output     OutputConf
}

// Defaults returns the tunables that match a typical IR receiver capture:
// a 1V trigger sits inside the output swing of common IR LED taps, and the
// slightly negative start time keeps the sample at t=0 inside the window.
func Defaults() Extract {
	return Extract{
		Capture: CaptureConf{
			TriggerV:    1.0,
			StartTimeMS: -0.01,
		},
		Cluster: ClusterConf{
			ToleranceUS:     5,
			MaxTableEntries: 0,
		},
		Output: OutputConf{
			Suffix: "_output",
		},
	}
}

// FromKoanf overlays loaded file/env settings onto the defaults. Tunables
// the config source does not mention keep their default values. The
// tolerance is checked before the unsigned conversion: a negative value
// would otherwise wrap to billions of microseconds and fold every duration
// into one table entry.
func FromKoanf(k *koanf.Koanf) (Extract, error) {
	conf := Defaults()

	if k.Exists("capture.trigger_v") {
		conf.Capture.TriggerV = k.Float64("capture.trigger_v")
	}
	if k.Exists("capture.start_time_ms") {
		conf.Capture.StartTimeMS = k.Float64("capture.start_time_ms")
	}
	if k.Exists("cluster.tolerance_us") {
		tol := k.Int("cluster.tolerance_us")
		if tol < 0 {
			return Extract{}, fmt.Errorf("cluster.tolerance_us must be non-negative, got %d", tol)
		}
		conf.Cluster.ToleranceUS = uint32(tol)
	}
	if k.Exists("cluster.max_table_entries") {
		conf.Cluster.MaxTableEntries = k.Int("cluster.max_table_entries")
	}
	if k.Exists("output.suffix") {
		conf.Output.Suffix = k.String("output.suffix")
	}

	return conf, nil
}

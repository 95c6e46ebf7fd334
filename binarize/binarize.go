// Package binarize turns the analog capture into a boolean signal level by
// comparing each sample against a fixed trigger voltage. Samples before the
// configured start time are discarded so pre-trigger noise never reaches the
// segmenter.
package binarize

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/capture"
	"github.com/awpalmer/irextract/config"
	"github.com/awpalmer/irextract/errs"
)

// Point is one thresholded sample inside the capture window.
type Point struct {
	TimeMS float64
	On     bool
}

// Binarize maps each sample at or after conf.StartTimeMS to on/off against
// conf.TriggerV. It fails with errs.ErrNoSignalAfterStart when the window
// holds no samples at all.
func Binarize(samples []capture.Sample, conf config.CaptureConf) ([]Point, error) {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		if s.TimeMS < conf.StartTimeMS {
			continue
		}
		points = append(points, Point{TimeMS: s.TimeMS, On: s.Voltage >= conf.TriggerV})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("start_time_ms=%0.4f is past the last sample: %w", conf.StartTimeMS, errs.ErrNoSignalAfterStart)
	}

	log.Debugf("[binarize] %d of %d samples inside window, trigger=%0.2fV", len(points), len(samples), conf.TriggerV)
	return points, nil
}

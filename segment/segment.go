// Package segment run-length-encodes the thresholded level stream into
// alternating on/off durations, expressed in whole microseconds.
package segment

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/binarize"
	"github.com/awpalmer/irextract/errs"
)

// Segment is one maximal run of constant signal level. Adjacent segments
// always differ in level.
type Segment struct {
	On         bool
	DurationUS uint32
}

// Segments coalesces consecutive points that share a level into one segment
// per run. An empty point stream fails with errs.ErrNoSignalAfterStart; the
// binarizer never hands one over, but the guard keeps the exported entry
// point safe to call directly. A run of n samples lasts n/sampleRate seconds; the duration is
// converted to microseconds and rounded to the nearest integer. The
// sub-microsecond remainder is dropped on purpose: the playback timer works
// in whole microseconds, and a carrier-period capture has thousands of
// samples per pulse, so the loss is far below the clustering tolerance.
//
// A run that rounds to zero microseconds fails with errs.ErrDegenerateRun
// rather than being dropped, since dropping it would merge its neighbours
// and break level alternation.
func Segments(points []binarize.Point, sampleRate float64) ([]Segment, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to segment: %w", errs.ErrNoSignalAfterStart)
	}

	var segs []Segment

	runLevel := points[0].On
	runLen := 0
	flush := func() error {
		us := math.Round(float64(runLen) / sampleRate * 1e6)
		if us < 1 {
			return fmt.Errorf("%d-sample run at %0.0f samples/s: %w", runLen, sampleRate, errs.ErrDegenerateRun)
		}
		segs = append(segs, Segment{On: runLevel, DurationUS: uint32(us)})
		return nil
	}

	for _, p := range points {
		if p.On == runLevel {
			runLen++
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		runLevel = p.On
		runLen = 1
	}
	if err := flush(); err != nil {
		return nil, err
	}

	log.Debugf("[segment] %d points -> %d segments, first level %v", len(points), len(segs), segs[0].On)
	return segs, nil
}

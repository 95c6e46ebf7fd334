// Package codec builds the compact replay form of a segment sequence: a
// deduplicated duration table, the segment order re-expressed as table
// indices, and those indices bit-packed for the playback firmware image.
package codec

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/errs"
	"github.com/awpalmer/irextract/segment"
)

// Table is the deduplicated set of segment durations. Entry order is the
// order durations were first seen, which makes the index assignment stable
// across runs on the same input. The table is immutable once built.
type Table struct {
	EntriesUS   []uint32
	ToleranceUS uint32
}

// match returns the index of the first entry within the tolerance of dur,
// or -1. First-match lookup mirrors construction, so a duration always
// resolves to the entry it joined while the table was built. An exact hit
// always matches, so zero tolerance means exact dedup rather than a table
// no lookup can resolve against.
func (t Table) match(dur uint32) int {
	for i, entry := range t.EntriesUS {
		var diff uint32
		if dur > entry {
			diff = dur - entry
		} else {
			diff = entry - dur
		}
		if diff == 0 || diff < t.ToleranceUS {
			return i
		}
	}
	return -1
}

// BuildTable clusters segment durations greedily in first-seen order: a
// duration joins the first existing entry within tolUS of it, otherwise it
// becomes a new entry holding its own value. Re-running the same segment
// sequence always yields the same table; a reordered sequence may not.
//
// maxEntries > 0 bounds the table for playback targets with a narrow index
// representation; exceeding it fails with errs.ErrTableOverflow. Zero means
// unbounded.
func BuildTable(segs []segment.Segment, tolUS uint32, maxEntries int) (Table, error) {
	t := Table{ToleranceUS: tolUS}
	for _, s := range segs {
		if t.match(s.DurationUS) >= 0 {
			continue
		}
		if maxEntries > 0 && len(t.EntriesUS) == maxEntries {
			return Table{}, fmt.Errorf("duration %dus needs entry %d but capacity is %d: %w",
				s.DurationUS, maxEntries+1, maxEntries, errs.ErrTableOverflow)
		}
		t.EntriesUS = append(t.EntriesUS, s.DurationUS)
	}

	log.Debugf("[codec] %d segments deduplicated to %d table entries (tolerance %dus)", len(segs), len(t.EntriesUS), tolUS)
	return t, nil
}

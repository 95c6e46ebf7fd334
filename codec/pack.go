package codec

import (
	"fmt"
	"math/bits"

	"github.com/awpalmer/irextract/errs"
	"github.com/awpalmer/irextract/segment"
)

// Pack re-expresses the segment sequence as indices into the table, one per
// segment in segment order. Lookup uses the same tolerance rule the table
// was built with, so every duration that went into BuildTable must resolve;
// errs.ErrUnmatchedDuration therefore marks an internal-consistency fault,
// not bad input.
func Pack(segs []segment.Segment, table Table) ([]int, error) {
	codes := make([]int, len(segs))
	for i, s := range segs {
		idx := table.match(s.DurationUS)
		if idx < 0 {
			return nil, fmt.Errorf("segment %d (%dus): %w", i, s.DurationUS, errs.ErrUnmatchedDuration)
		}
		codes[i] = idx
	}
	return codes, nil
}

// IndexBits returns the number of bits needed to address n table entries.
// A one-entry table still takes one bit per index so the packed stream has
// a nonzero width.
func IndexBits(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// PackBits packs the code sequence MSB-first at a fixed width of
// IndexBits(n) bits per index, where n is the table size. The final partial
// byte is zero-padded on the right. This is the layout the playback
// firmware stores code data in. Returns the packed bytes and the width.
func PackBits(codes []int, n int) ([]byte, int) {
	width := IndexBits(n)

	var packed []byte
	var cur byte
	used := 0
	for _, code := range codes {
		for b := width - 1; b >= 0; b-- {
			cur <<= 1
			cur |= byte(code>>b) & 1
			used++
			if used == 8 {
				packed = append(packed, cur)
				cur, used = 0, 0
			}
		}
	}
	if used > 0 {
		packed = append(packed, cur<<(8-used))
	}
	return packed, width
}

// Package extract runs the capture-to-code pipeline: binarize the samples,
// run-length-encode them into segments, deduplicate the durations into a
// table, and pack the segment order as table indices. Each stage consumes
// its predecessor's complete output; nothing is streamed and nothing is
// mutated after the stage that produced it returns.
package extract

import (
	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/binarize"
	"github.com/awpalmer/irextract/capture"
	"github.com/awpalmer/irextract/codec"
	"github.com/awpalmer/irextract/config"
	"github.com/awpalmer/irextract/segment"
)

// Result is everything the writer needs to serialize one extraction.
type Result struct {
	Segments     []segment.Segment
	Table        codec.Table
	Codes        []int
	Packed       []byte
	BitsPerIndex int
	FirstOn      bool
}

// Run executes the pipeline over an already-read capture. Any stage error
// aborts the run with no Result.
func Run(samples []capture.Sample, conf config.Extract) (Result, error) {
	points, err := binarize.Binarize(samples, conf.Capture)
	if err != nil {
		return Result{}, err
	}

	segs, err := segment.Segments(points, conf.SampleRate)
	if err != nil {
		return Result{}, err
	}

	table, err := codec.BuildTable(segs, conf.Cluster.ToleranceUS, conf.Cluster.MaxTableEntries)
	if err != nil {
		return Result{}, err
	}

	codes, err := codec.Pack(segs, table)
	if err != nil {
		return Result{}, err
	}

	packed, width := codec.PackBits(codes, len(table.EntriesUS))

	log.Infof("Extracted %d segments into %d codes (%d table entries, %d bits/index, %d packed bytes)",
		len(segs), len(codes), len(table.EntriesUS), width, len(packed))

	return Result{
		Segments:     segs,
		Table:        table,
		Codes:        codes,
		Packed:       packed,
		BitsPerIndex: width,
		FirstOn:      segs[0].On,
	}, nil
}

// Package capture reads scope-exported waveform records. The expected shape
// is the CSV a Picoscope (or similar) produces for a single-shot trigger:
// three header rows, then one row per sample with the timestamp in
// milliseconds in the first field and the probe voltage in the second. Extra
// fields are ignored.
package capture

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/errs"
)

const headerRows = 3

// Sample is one captured point of the waveform. Samples are ordered by
// timestamp as recorded; the reader does not re-sort.
type Sample struct {
	TimeMS  float64
	Voltage float64
}

// ReadSamples parses every data row of a capture record. It fails with
// errs.ErrMalformedRecord on a short or non-numeric row and with
// errs.ErrEmptyInput when nothing follows the header.
func ReadSamples(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var samples []Sample
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %v: %w", row+1, err, errs.ErrMalformedRecord)
		}
		if row < headerRows {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d has %d fields, need at least 2: %w", row+1, len(record), errs.ErrMalformedRecord)
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d timestamp %q: %w", row+1, record[0], errs.ErrMalformedRecord)
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d voltage %q: %w", row+1, record[1], errs.ErrMalformedRecord)
		}
		samples = append(samples, Sample{TimeMS: t, Voltage: v})
	}

	if len(samples) == 0 {
		return nil, errs.ErrEmptyInput
	}

	log.Debugf("[capture] Read %d samples, t=%0.4fms..%0.4fms", len(samples), samples[0].TimeMS, samples[len(samples)-1].TimeMS)
	return samples, nil
}

// ReadFile opens path and reads it with ReadSamples.
func ReadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Package output serializes an extraction result to the output record. The
// layout is fixed because the playback firmware's build script consumes it
// positionally:
//
//	entries,bits per index,first level
//	<count>,<width>,<on|off>
//	index,duration_us,level
//	<i>,<duration>,<on|off>     one row per table entry
//	codes
//	<c0>,<c1>,...               one field per code, single row
//	packed
//	0xNN                        one row per packed byte
//
// The level column is inferred from index parity starting at the first
// segment's level. Durations near the tolerance can fold an on and an off
// time into one entry, so the column is informational; playback level always
// alternates by sequence position.
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/awpalmer/irextract/extract"
)

func levelName(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Write serializes res in the documented layout. Pure formatting; nothing is
// recomputed.
func Write(w *csv.Writer, res extract.Result) error {
	if err := w.Write([]string{"entries", "bits per index", "first level"}); err != nil {
		return err
	}
	err := w.Write([]string{
		strconv.Itoa(len(res.Table.EntriesUS)),
		strconv.Itoa(res.BitsPerIndex),
		levelName(res.FirstOn),
	})
	if err != nil {
		return err
	}

	if err := w.Write([]string{"index", "duration_us", "level"}); err != nil {
		return err
	}
	for i, dur := range res.Table.EntriesUS {
		level := res.FirstOn == (i%2 == 0)
		err := w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatUint(uint64(dur), 10),
			levelName(level),
		})
		if err != nil {
			return err
		}
	}

	if err := w.Write([]string{"codes"}); err != nil {
		return err
	}
	codes := make([]string, len(res.Codes))
	for i, c := range res.Codes {
		codes[i] = strconv.Itoa(c)
	}
	if err := w.Write(codes); err != nil {
		return err
	}

	if err := w.Write([]string{"packed"}); err != nil {
		return err
	}
	for _, b := range res.Packed {
		if err := w.Write([]string{fmt.Sprintf("0x%02x", b)}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// OutputPath derives the output record name from the input name by
// appending suffix before the extension.
func OutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix + ext
}

// WriteFile writes res next to the input capture. The file is only created
// once the whole pipeline has succeeded, so a failed run leaves nothing
// behind.
func WriteFile(inputPath, suffix string, res extract.Result) (string, error) {
	path := OutputPath(inputPath, suffix)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(csv.NewWriter(bw), res); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	log.Infof("Saved extraction to %s", path)
	return path, nil
}

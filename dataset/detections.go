// Package dataset loads detection files and frame images for the tracker.
//
// The detection file format is line oriented: an image filename, a line with
// the bounding box count n, then n lines each carrying "x y w h". The numbers
// may be floats; they are truncated to integer pixel units.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cuetrack/cuetrack-go/cuetrack"
)

// MalformedInputError reports a detection file whose declared structure does
// not match the data actually supplied.
type MalformedInputError struct {
	Record int // 0-based frame record within the file
	Line   int // 1-based line number
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed detection file: record %d, line %d: %s", e.Record, e.Line, e.Reason)
}

// FrameRecord pairs one image name with the bounding boxes parsed for it.
type FrameRecord struct {
	ImageName string
	Boxes     []cuetrack.BBox
}

// ParseDetections reads every frame record from a detection file. Trailing
// blank lines are tolerated; anything else that breaks the declared structure
// fails with *MalformedInputError before any record is handed to scoring.
func ParseDetections(r io.Reader) ([]FrameRecord, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "can't read detection file")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var records []FrameRecord
	pos := 0
	for pos < len(lines) {
		record := len(records)
		name := lines[pos]
		if name == "" {
			return nil, &MalformedInputError{Record: record, Line: pos + 1, Reason: "empty image name"}
		}
		pos++
		if pos >= len(lines) {
			return nil, &MalformedInputError{Record: record, Line: pos + 1, Reason: "missing bounding box count"}
		}
		count, err := strconv.Atoi(lines[pos])
		if err != nil || count < 0 {
			return nil, &MalformedInputError{Record: record, Line: pos + 1, Reason: fmt.Sprintf("bad bounding box count %q", lines[pos])}
		}
		pos++
		boxes := make([]cuetrack.BBox, 0, count)
		for k := 0; k < count; k++ {
			if pos >= len(lines) || lines[pos] == "" {
				return nil, &MalformedInputError{Record: record, Line: pos + 1, Reason: fmt.Sprintf("declared %d bounding boxes, found %d", count, k)}
			}
			box, perr := parseBox(lines[pos])
			if perr != nil {
				return nil, &MalformedInputError{Record: record, Line: pos + 1, Reason: perr.Error()}
			}
			boxes = append(boxes, box)
			pos++
		}
		records = append(records, FrameRecord{ImageName: name, Boxes: boxes})
	}
	return records, nil
}

func parseBox(line string) (cuetrack.BBox, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return cuetrack.BBox{}, fmt.Errorf("expected 4 numbers, got %d", len(fields))
	}
	var vals [4]int
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return cuetrack.BBox{}, fmt.Errorf("bad number %q", field)
		}
		vals[i] = int(v)
	}
	return cuetrack.NewBBox(vals[0], vals[1], vals[2], vals[3]), nil
}

// LoadDetectionsFile parses the detection file at path.
func LoadDetectionsFile(path string) ([]FrameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open detection file")
	}
	defer f.Close()
	return ParseDetections(f)
}

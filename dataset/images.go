package dataset

import (
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/cuetrack/cuetrack-go/cuetrack"
)

// LoadImage decodes the frame image at path. PNG, JPEG and GIF are supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "can't decode image %s", path)
	}
	return img, nil
}

// Sequence walks a dataset: a detection file plus the directory holding the
// frame images the records name. Frames are produced strictly in record order.
type Sequence struct {
	framesDir string
	records   []FrameRecord
	pos       int
}

// OpenSequence parses the detection file and prepares iteration over its
// frames. Images are decoded lazily, one per Next call.
func OpenSequence(detectionsPath, framesDir string) (*Sequence, error) {
	records, err := LoadDetectionsFile(detectionsPath)
	if err != nil {
		return nil, err
	}
	return &Sequence{
		framesDir: framesDir,
		records:   records,
	}, nil
}

// Len returns the number of frame records in the sequence.
func (s *Sequence) Len() int {
	return len(s.records)
}

// Next decodes and returns the next frame together with its image name.
// Returns io.EOF once the sequence is exhausted.
func (s *Sequence) Next() (*cuetrack.Frame, string, error) {
	if s.pos >= len(s.records) {
		return nil, "", io.EOF
	}
	record := s.records[s.pos]
	index := s.pos
	s.pos++

	img, err := LoadImage(filepath.Join(s.framesDir, record.ImageName))
	if err != nil {
		return nil, "", errors.Wrapf(err, "can't load frame %d", index)
	}
	return &cuetrack.Frame{
		Index: index,
		Image: img,
		Boxes: record.Boxes,
	}, record.ImageName, nil
}

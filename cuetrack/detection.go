package cuetrack

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// SignatureBuckets is the number of intensity buckets in an appearance signature.
const SignatureBuckets = 256

// Detection is a single bounding box observed on a single frame, together with
// its derived center and appearance signature. A detection is immutable once
// extracted, except for the track identity which the registry sets exactly once.
type Detection struct {
	id         uuid.UUID
	bbox       BBox
	center     Point
	signature  [SignatureBuckets]float64
	frameIndex int
	trackID    int64
}

// ExtractDetection builds a detection from one bounding box and its source
// image. The crop must lie within the image extent and carry pixel mass:
// a crop exceeding the extent fails with *OutOfBoundsError, a zero-area box
// with *DegenerateRegionError. boxIndex is only used to identify the box in
// errors.
func ExtractDetection(img image.Image, box BBox, frameIndex, boxIndex int) (*Detection, error) {
	extent := ExtentOf(img)
	if box.Width <= 0 || box.Height <= 0 {
		return nil, &DegenerateRegionError{FrameIndex: frameIndex, BoxIndex: boxIndex, Box: box}
	}
	bounds := img.Bounds()
	crop := box.Rect().Add(bounds.Min)
	if !crop.In(bounds) {
		return nil, &OutOfBoundsError{FrameIndex: frameIndex, BoxIndex: boxIndex, Box: box, Extent: extent}
	}

	detection := Detection{
		id:         uuid.New(),
		bbox:       box,
		center:     box.Center(),
		frameIndex: frameIndex,
		trackID:    NoTrack,
	}

	// Intensity histogram over the grayscale crop. imaging.Grayscale writes the
	// luminance into every channel, so the red channel carries the intensity.
	gray := imaging.Grayscale(imaging.Crop(img, crop))
	grayBounds := gray.Bounds()
	for y := grayBounds.Min.Y; y < grayBounds.Max.Y; y++ {
		for x := grayBounds.Min.X; x < grayBounds.Max.X; x++ {
			detection.signature[gray.NRGBAAt(x, y).R]++
		}
	}
	total := floats.Sum(detection.signature[:])
	if total == 0 {
		return nil, &DegenerateRegionError{FrameIndex: frameIndex, BoxIndex: boxIndex, Box: box}
	}
	floats.Scale(1.0/total, detection.signature[:])
	return &detection, nil
}

// GetID returns detection's identifier
func (detection *Detection) GetID() uuid.UUID {
	return detection.id
}

// GetBBox returns detection's bounding box
func (detection *Detection) GetBBox() BBox {
	return detection.bbox
}

// GetCenter returns detection's center
func (detection *Detection) GetCenter() Point {
	return detection.center
}

// GetSignature returns detection's normalized appearance signature.
// Be careful: this is not copy of signature, but reference to it
func (detection *Detection) GetSignature() []float64 {
	return detection.signature[:]
}

// GetFrameIndex returns the ordinal position of the detection's frame
func (detection *Detection) GetFrameIndex() int {
	return detection.frameIndex
}

// TrackID returns the resolved track identity, or NoTrack if the detection has
// not been through assignment yet.
func (detection *Detection) TrackID() int64 {
	return detection.trackID
}

func (detection *Detection) assignTrack(id int64) {
	detection.trackID = id
}

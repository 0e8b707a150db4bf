package cuetrack

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func grayFrame(width, height int, background uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = background
	}
	return img
}

func fillBox(img *image.Gray, box BBox, value uint8) {
	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: value})
		}
	}
}

func TestExtractDetection(t *testing.T) {
	img := grayFrame(100, 100, 0)
	box := NewBBox(10, 20, 10, 6)
	fillBox(img, box, 200)

	detection, err := ExtractDetection(img, box, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := detection.GetCenter(); got != NewPoint(15, 23) {
		t.Errorf("center = %v, expected (15, 23)", got)
	}
	if detection.GetFrameIndex() != 3 {
		t.Errorf("frame index = %d, expected 3", detection.GetFrameIndex())
	}
	if detection.TrackID() != NoTrack {
		t.Errorf("fresh detection has track id %d, expected NoTrack", detection.TrackID())
	}
	sum := 0.0
	for _, v := range detection.GetSignature() {
		if v < 0.0 {
			t.Fatalf("negative signature bucket: %v", v)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("signature mass = %v, expected 1.0", sum)
	}
}

func TestExtractDetectionUniformPatchesAgree(t *testing.T) {
	// The same uniform patch extracted from two frames must produce a perfect
	// histogram intersection.
	imgA := grayFrame(100, 100, 0)
	imgB := grayFrame(100, 100, 0)
	boxA := NewBBox(10, 10, 8, 8)
	boxB := NewBBox(40, 40, 8, 8)
	fillBox(imgA, boxA, 180)
	fillBox(imgB, boxB, 180)

	a, err := ExtractDetection(imgA, boxA, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ExtractDetection(imgB, boxB, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	pair := ScoreCues(b, a, NewExtent(100, 100))
	if pair.Appearance != 1.0 {
		t.Errorf("appearance probability = %v, expected 1.0 for identical uniform patches", pair.Appearance)
	}
}

func TestExtractDetectionOutOfBounds(t *testing.T) {
	img := grayFrame(50, 50, 10)
	cases := []BBox{
		NewBBox(45, 10, 10, 10), // spills right
		NewBBox(10, 45, 10, 10), // spills bottom
		NewBBox(-5, 10, 10, 10), // spills left
	}
	for _, box := range cases {
		_, err := ExtractDetection(img, box, 2, 1)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("box %v: expected OutOfBoundsError, got %v", box, err)
		}
		if oob.FrameIndex != 2 || oob.BoxIndex != 1 {
			t.Errorf("error identity = frame %d box %d, expected frame 2 box 1", oob.FrameIndex, oob.BoxIndex)
		}
	}
}

func TestExtractDetectionDegenerate(t *testing.T) {
	img := grayFrame(50, 50, 10)
	for _, box := range []BBox{
		NewBBox(10, 10, 0, 10),
		NewBBox(10, 10, 10, 0),
		NewBBox(10, 10, -3, 10),
	} {
		_, err := ExtractDetection(img, box, 0, 4)
		var degenerate *DegenerateRegionError
		if !errors.As(err, &degenerate) {
			t.Fatalf("box %v: expected DegenerateRegionError, got %v", box, err)
		}
		if degenerate.BoxIndex != 4 {
			t.Errorf("error box index = %d, expected 4", degenerate.BoxIndex)
		}
	}
}

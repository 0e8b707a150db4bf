package cuetrack

import "fmt"

// OutOfBoundsError reports a bounding box whose crop region exceeds the pixel
// extent of its source image. The offending detection is identified by frame
// index and box index within the frame.
type OutOfBoundsError struct {
	FrameIndex int
	BoxIndex   int
	Box        BBox
	Extent     Extent
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("bounding box #%d on frame %d: crop region (%d,%d)-(%d,%d) exceeds image extent %dx%d",
		e.BoxIndex, e.FrameIndex,
		e.Box.X, e.Box.Y, e.Box.X+e.Box.Width, e.Box.Y+e.Box.Height,
		e.Extent.Width, e.Extent.Height)
}

// DegenerateRegionError reports a bounding box with no pixel mass, so no
// normalized appearance signature can be built for it.
type DegenerateRegionError struct {
	FrameIndex int
	BoxIndex   int
	Box        BBox
}

func (e *DegenerateRegionError) Error() string {
	return fmt.Sprintf("bounding box #%d on frame %d: region %dx%d has no pixel mass",
		e.BoxIndex, e.FrameIndex, e.Box.Width, e.Box.Height)
}

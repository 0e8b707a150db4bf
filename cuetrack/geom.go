package cuetrack

import (
	"image"
	"math"
)

// BBox is an axis-aligned bounding box in integer pixel units.
// Width and Height must be positive for the box to carry any pixel mass.
type BBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewBBox(x, y, width, height int) BBox {
	return BBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewBBoxFrom(rect image.Rectangle) BBox {
	return BBox{
		X:      rect.Min.X,
		Y:      rect.Min.Y,
		Width:  rect.Dx(),
		Height: rect.Dy(),
	}
}

// Rect returns the box as a half-open image.Rectangle [X, X+Width) x [Y, Y+Height).
func (b BBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Center returns the box center rounded to integer pixels.
func (b BBox) Center() Point {
	return Point{
		X: int(math.Round(float64(b.X) + float64(b.Width)/2.0)),
		Y: int(math.Round(float64(b.Y) + float64(b.Height)/2.0)),
	}
}

// Point is a pixel position.
type Point struct {
	X int
	Y int
}

func NewPoint(x, y int) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Extent is the pixel size of a frame. Its diagonal is the maximum possible
// center-to-center distance within the frame.
type Extent struct {
	Width  int
	Height int
}

func NewExtent(width, height int) Extent {
	return Extent{
		Width:  width,
		Height: height,
	}
}

// ExtentOf returns the extent of a decoded image.
func ExtentOf(img image.Image) Extent {
	bounds := img.Bounds()
	return Extent{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

func (e Extent) Diagonal() float64 {
	return math.Sqrt(math.Pow(float64(e.Width), 2) + math.Pow(float64(e.Height), 2))
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(float64(p1.X-p2.X), 2) + math.Pow(float64(p1.Y-p2.Y), 2))
}

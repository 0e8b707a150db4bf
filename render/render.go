// Package render draws tracker output over frame images for visual
// inspection: bounding boxes, center dots, track id labels and smoothed track
// paths, one stable color per track.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/cuetrack/cuetrack-go/cuetrack"
)

// TrackColor returns a deterministic saturated color for a track identity.
// Unresolved boxes get a neutral gray.
func TrackColor(id int64) color.Color {
	if id == cuetrack.NoTrack {
		return colorful.Hsv(0, 0, 0.65)
	}
	// Spread hues so neighboring ids stay visually distinct.
	hue := float64((id * 47) % 360)
	return colorful.Hsv(hue, 0.85, 0.9)
}

// Annotate draws the resolved results over a copy of the frame image. Boxes
// whose extraction failed are skipped. When registry is non-nil, matched
// tracks also get their smoothed path drawn.
func Annotate(img image.Image, boxes []cuetrack.BBox, results []cuetrack.Result, registry *cuetrack.Registry) image.Image {
	dc := gg.NewContextForImage(img)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		box := boxes[res.BoxIndex]
		c := TrackColor(res.TrackID)

		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
		dc.Stroke()

		dc.DrawCircle(float64(res.Center.X), float64(res.Center.Y), 2)
		dc.Fill()

		if res.TrackID == cuetrack.NoTrack {
			continue
		}
		dc.DrawString(fmt.Sprintf("#%d", res.TrackID), float64(box.X), float64(box.Y)-3)
		if registry != nil {
			if track := registry.Track(res.TrackID); track != nil {
				drawPath(dc, track.Path(), c)
			}
		}
	}
	return dc.Image()
}

func drawPath(dc *gg.Context, path []cuetrack.Point, c color.Color) {
	if len(path) < 2 {
		return
	}
	dc.SetColor(c)
	dc.SetLineWidth(1)
	for i := 1; i < len(path); i++ {
		dc.DrawLine(float64(path[i-1].X), float64(path[i-1].Y), float64(path[i].X), float64(path[i].Y))
	}
	dc.Stroke()
}

// SavePNG writes an annotated image to path.
func SavePNG(img image.Image, path string) error {
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "can't save %s", path)
	}
	return nil
}

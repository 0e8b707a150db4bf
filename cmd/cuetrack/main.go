// Command cuetrack associates detected objects across a frame sequence so the
// same physical object keeps a stable identity. It expects a dataset
// directory with a bboxes.txt detection file and a frames/ image directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/cuetrack/cuetrack-go/cuetrack"
	"github.com/cuetrack/cuetrack-go/dataset"
	"github.com/cuetrack/cuetrack-go/render"
)

var logger = golog.NewDevelopmentLogger("cuetrack")

func main() {
	tau := flag.Float64("tau", cuetrack.DefaultSimilarityThreshold, "similarity threshold for linking detections across frames")
	staleAfter := flag.Int("stale-after", cuetrack.DefaultStaleAfter, "missed frames before a track is terminated")
	outDir := flag.String("out", "", "directory for annotated frames (omit to skip rendering)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cuetrack [flags] <dataset-dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := run(flag.Arg(0), *tau, *staleAfter, *outDir); err != nil {
		logger.Fatal(err)
	}
}

func run(datasetDir string, tau float64, staleAfter int, outDir string) error {
	seq, err := dataset.OpenSequence(filepath.Join(datasetDir, "bboxes.txt"), filepath.Join(datasetDir, "frames"))
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return errors.Wrap(err, "can't create output directory")
		}
	}

	tracker := cuetrack.NewTrackerWith(tau, staleAfter)
	for {
		frame, name, err := seq.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		results, err := tracker.Step(frame)
		if err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				logger.Warnw("skipping detection", "frame", frame.Index, "box", res.BoxIndex, "error", res.Err)
				continue
			}
			logger.Infow("resolved detection",
				"frame", frame.Index,
				"box", res.BoxIndex,
				"track", res.TrackID,
				"center", fmt.Sprintf("(%d,%d)", res.Center.X, res.Center.Y),
			)
		}

		if outDir != "" {
			annotated := render.Annotate(frame.Image, frame.Boxes, results, tracker.Registry())
			outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
			if err := render.SavePNG(annotated, filepath.Join(outDir, outName)); err != nil {
				return err
			}
		}
	}

	logger.Infow("sequence done", "frames", seq.Len(), "tracks", tracker.Registry().Len())
	return nil
}

package cuetrack

import (
	"image"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Frame is an ordered collection of bounding boxes sharing one source image.
// Frames must be fed to the tracker strictly in sequence order.
type Frame struct {
	Index int
	Image image.Image
	Boxes []BBox
}

// Result reports the resolved identity for one input bounding box. Results
// are parallel to Frame.Boxes. A box whose feature extraction failed carries
// the error in Err, keeps TrackID == NoTrack and takes no part in matching.
type Result struct {
	BoxIndex    int
	DetectionID uuid.UUID
	Center      Point
	TrackID     int64
	Err         error
}

// Tracker runs the frame-to-frame association loop: feature extraction, cue
// scoring, fusion, assignment and registry bookkeeping. It owns the only
// persistent mutable state of the pipeline and is not safe for concurrent
// use; run one Tracker per independent stream.
type Tracker struct {
	registry       *Registry
	tau            float64
	prevDetections []*Detection
	prevTracks     []*Track
}

// NewTracker creates a tracker with the default similarity threshold and
// staleness window.
func NewTracker() *Tracker {
	return NewTrackerWith(DefaultSimilarityThreshold, DefaultStaleAfter)
}

// NewTrackerWith creates a tracker linking pairs that score at least tau and
// terminating tracks after staleAfter consecutive missed frames.
func NewTrackerWith(tau float64, staleAfter int) *Tracker {
	return &Tracker{
		registry: NewRegistryWith(staleAfter),
		tau:      tau,
	}
}

// Registry exposes the track registry, e.g. for rendering or reporting.
func (tracker *Tracker) Registry() *Registry {
	return tracker.registry
}

// Step processes one frame boundary and returns a result per input box.
//
// Extraction failures (out-of-bounds or degenerate boxes) do not abort the
// frame: the offending box is reported through its result's Err and the
// remaining detections are matched normally. On the very first frame, and
// after a frame with zero detections, every detection is a birth. A frame
// with zero boxes simply leaves all frontier tracks without continuation.
func (tracker *Tracker) Step(frame *Frame) ([]Result, error) {
	if frame == nil || frame.Image == nil {
		return nil, errors.New("can't process frame without an image")
	}
	extent := ExtentOf(frame.Image)

	results := make([]Result, len(frame.Boxes))
	detections := make([]*Detection, 0, len(frame.Boxes))
	boxOf := make([]int, 0, len(frame.Boxes))
	for i, box := range frame.Boxes {
		results[i] = Result{BoxIndex: i, TrackID: NoTrack}
		detection, err := ExtractDetection(frame.Image, box, frame.Index, i)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].DetectionID = detection.GetID()
		results[i].Center = detection.GetCenter()
		detections = append(detections, detection)
		boxOf = append(boxOf, i)
	}

	var assignment Assignment
	if len(tracker.prevDetections) == 0 || len(detections) == 0 {
		assignment = Assignment{
			UnmatchedPrev: indexRange(len(tracker.prevDetections)),
			UnmatchedCurr: indexRange(len(detections)),
		}
	} else {
		scores := ScoreMatrix(tracker.prevDetections, detections, extent)
		assignment = ResolveAssignment(scores, tracker.tau)
	}

	frontier := tracker.registry.Apply(assignment, tracker.prevTracks, detections, frame.Index)

	for k, detection := range detections {
		results[boxOf[k]].TrackID = detection.TrackID()
	}
	tracker.prevDetections = detections
	tracker.prevTracks = frontier
	return results, nil
}

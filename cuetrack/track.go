package cuetrack

import (
	"math"

	kalman_filter "github.com/LdDl/kalman-filter"
)

// NoTrack marks a detection whose identity has not been resolved.
const NoTrack int64 = -1

// TrackState is the lifecycle state of a track.
type TrackState uint8

const (
	// TrackActive means the track is still a live identity.
	TrackActive TrackState = iota
	// TrackTerminated means the track went unmatched for the configured
	// staleness window. It is never deleted, only stops being extended.
	TrackTerminated
)

// Observation ties a detection to the frame it was seen on.
type Observation struct {
	FrameIndex int
	Detection  *Detection
}

// Track is a persistent identity spanning frames. Besides the raw
// observations it keeps a Kalman-smoothed center path intended for rendering;
// the association math itself only ever sees raw detection centers.
type Track struct {
	id           int64
	observations []Observation
	path         []Point
	maxPathLen   int
	state        TrackState
	missedFrames int
	smoother     *kalman_filter.Kalman2D
}

func newTrack(id int64, frameIndex int, detection *Detection) *Track {
	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	center := detection.GetCenter()
	kf := kalman_filter.NewKalman2D(1.0, ux, uy, stdDevA, stdDevMx, stdDevMy,
		kalman_filter.WithState2D(float64(center.X), float64(center.Y)))
	track := Track{
		id:           id,
		observations: make([]Observation, 0, 150),
		path:         make([]Point, 0, 150),
		maxPathLen:   150,
		state:        TrackActive,
		missedFrames: 0,
		smoother:     kf,
	}
	track.observations = append(track.observations, Observation{FrameIndex: frameIndex, Detection: detection})
	track.path = append(track.path, center)
	detection.assignTrack(id)
	return &track
}

// ID returns track's identifier
func (track *Track) ID() int64 {
	return track.id
}

// State returns track's lifecycle state
func (track *Track) State() TrackState {
	return track.state
}

// MissedFrames returns how many consecutive frames went by without a
// continuation for this track.
func (track *Track) MissedFrames() int {
	return track.missedFrames
}

// Observations returns the (frameIndex, detection) pairs the track owns.
// Be careful: this is not copy of observations, but reference to it
func (track *Track) Observations() []Observation {
	return track.observations
}

// LastObservation returns the most recent observation of the track.
func (track *Track) LastObservation() Observation {
	return track.observations[len(track.observations)-1]
}

// Path returns the smoothed center path. Be careful: this is not copy of
// path, but reference to it
func (track *Track) Path() []Point {
	return track.path
}

// SetMaxPathLen sets how many smoothed points the track retains.
func (track *Track) SetMaxPathLen(newMaxPathLen int) {
	track.maxPathLen = newMaxPathLen
}

// extend appends a continuation, resets the staleness counter and advances
// the center smoother. The smoothed path is display-only: if the smoother
// update fails, the raw center stands in and the identity continuation still
// lands, so the registry never ends up half-advanced.
func (track *Track) extend(frameIndex int, detection *Detection) {
	center := detection.GetCenter()
	smoothed := center
	track.smoother.Predict()
	if err := track.smoother.Update(float64(center.X), float64(center.Y)); err == nil {
		stateX, stateY := track.smoother.GetState()
		smoothed = Point{X: int(math.Round(stateX)), Y: int(math.Round(stateY))}
	}
	track.observations = append(track.observations, Observation{FrameIndex: frameIndex, Detection: detection})
	track.path = append(track.path, smoothed)
	if len(track.path) > track.maxPathLen {
		track.path = track.path[1:]
	}
	track.missedFrames = 0
	detection.assignTrack(track.id)
}

// markMissed records one frame without continuation. After staleAfter
// consecutive misses the track flips to TrackTerminated.
func (track *Track) markMissed(staleAfter int) {
	track.missedFrames++
	if staleAfter > 0 && track.missedFrames >= staleAfter {
		track.state = TrackTerminated
	}
}

package cuetrack

import "testing"

func TestRegistryMonotonicIDs(t *testing.T) {
	registry := NewRegistry()
	for i := 1; i <= 4; i++ {
		track := registry.Birth(0, syntheticDetection(NewPoint(i*10, i*10), i, 0))
		if track.ID() != int64(i) {
			t.Errorf("birth #%d issued id %d", i, track.ID())
		}
	}
	if registry.Len() != 4 {
		t.Errorf("registry length = %d, expected 4", registry.Len())
	}
	tracks := registry.Tracks()
	for i := 1; i < len(tracks); i++ {
		if tracks[i-1].ID() >= tracks[i].ID() {
			t.Fatalf("tracks not ordered by id: %d before %d", tracks[i-1].ID(), tracks[i].ID())
		}
	}
}

func TestBirthAssignsTrackIDOnce(t *testing.T) {
	registry := NewRegistry()
	detection := syntheticDetection(NewPoint(10, 10), 50, 0)
	track := registry.Birth(0, detection)
	if detection.TrackID() != track.ID() {
		t.Errorf("detection track id = %d, expected %d", detection.TrackID(), track.ID())
	}
}

func TestStalenessWindow(t *testing.T) {
	registry := NewRegistryWith(2)
	track := registry.Birth(0, syntheticDetection(NewPoint(10, 10), 50, 0))

	track.markMissed(2)
	if track.State() != TrackActive {
		t.Fatal("one missed frame should not terminate the track")
	}
	track.markMissed(2)
	if track.State() != TrackTerminated {
		t.Fatal("track should terminate after the staleness window elapses")
	}

	// Terminated, never deleted.
	if registry.Len() != 1 {
		t.Errorf("registry length = %d, expected 1", registry.Len())
	}
	if len(registry.ActiveTracks()) != 0 {
		t.Error("terminated track still reported active")
	}
	if len(registry.Tracks()) != 1 {
		t.Error("terminated track missing from full track list")
	}
}

func TestApplyFrameStep(t *testing.T) {
	registry := NewRegistry()
	prev := []*Detection{
		syntheticDetection(NewPoint(10, 10), 100, 0),
		syntheticDetection(NewPoint(80, 80), 40, 0),
	}
	prevTracks := []*Track{
		registry.Birth(0, prev[0]),
		registry.Birth(0, prev[1]),
	}

	curr := []*Detection{
		syntheticDetection(NewPoint(12, 12), 100, 1),
		syntheticDetection(NewPoint(50, 50), 200, 1),
	}
	assignment := Assignment{
		Matches:       [][2]int{{0, 0}},
		UnmatchedPrev: []int{1},
		UnmatchedCurr: []int{1},
	}
	frontier := registry.Apply(assignment, prevTracks, curr, 1)
	if len(frontier) != 2 {
		t.Fatalf("frontier length = %d, expected 2", len(frontier))
	}
	if frontier[0] != prevTracks[0] {
		t.Error("matched detection should stay on its previous track")
	}
	if curr[0].TrackID() != 1 {
		t.Errorf("matched detection track id = %d, expected 1", curr[0].TrackID())
	}
	if frontier[1].ID() != 3 {
		t.Errorf("birthed track id = %d, expected 3", frontier[1].ID())
	}
	if prevTracks[1].MissedFrames() != 1 {
		t.Errorf("unmatched previous track missed frames = %d, expected 1", prevTracks[1].MissedFrames())
	}
	if got := len(prevTracks[0].Path()); got != 2 {
		t.Errorf("extended track path length = %d, expected 2", got)
	}
}

func TestApplyFrontierComplete(t *testing.T) {
	// Every current detection must leave Apply owning a track, matched or
	// born, with the registry fully advanced in a single step.
	registry := NewRegistry()
	prev := []*Detection{
		syntheticDetection(NewPoint(10, 10), 100, 0),
		syntheticDetection(NewPoint(40, 40), 100, 0),
		syntheticDetection(NewPoint(80, 80), 100, 0),
	}
	prevTracks := []*Track{
		registry.Birth(0, prev[0]),
		registry.Birth(0, prev[1]),
		registry.Birth(0, prev[2]),
	}

	curr := []*Detection{
		syntheticDetection(NewPoint(82, 82), 100, 1),
		syntheticDetection(NewPoint(55, 55), 100, 1),
		syntheticDetection(NewPoint(11, 11), 100, 1),
	}
	assignment := Assignment{
		Matches:       [][2]int{{0, 2}, {2, 0}},
		UnmatchedPrev: []int{1},
		UnmatchedCurr: []int{1},
	}
	frontier := registry.Apply(assignment, prevTracks, curr, 1)
	for j, track := range frontier {
		if track == nil {
			t.Fatalf("frontier slot %d has no track", j)
		}
		if curr[j].TrackID() != track.ID() {
			t.Errorf("detection %d track id = %d, expected %d", j, curr[j].TrackID(), track.ID())
		}
	}
	if frontier[2] != prevTracks[0] || frontier[0] != prevTracks[2] {
		t.Error("matched detections should stay on their previous tracks")
	}
	if frontier[1].ID() != 4 {
		t.Errorf("birthed track id = %d, expected 4", frontier[1].ID())
	}
	if prevTracks[0].MissedFrames() != 0 || prevTracks[2].MissedFrames() != 0 {
		t.Error("extended tracks should have their staleness counters reset")
	}
}

func TestTrackPathCapped(t *testing.T) {
	registry := NewRegistry()
	track := registry.Birth(0, syntheticDetection(NewPoint(0, 0), 10, 0))
	track.SetMaxPathLen(3)
	for i := 1; i <= 5; i++ {
		track.extend(i, syntheticDetection(NewPoint(i, i), 10, i))
	}
	if got := len(track.Path()); got != 3 {
		t.Errorf("path length = %d, expected cap of 3", got)
	}
	if got := len(track.Observations()); got != 6 {
		t.Errorf("observation count = %d, expected 6", got)
	}
}

package cuetrack

import "sort"

// DefaultStaleAfter is how many consecutive missed frames a track survives
// before it is considered terminated.
const DefaultStaleAfter = 5

// Registry owns the live set of tracks and issues monotonically increasing
// identities. Tracks are never deleted: a track that stops being extended
// merely transitions to TrackTerminated once the staleness window elapses.
//
// A registry is owned and mutated by a single sequential driver loop; a
// concurrent multi-stream design needs one registry per stream.
type Registry struct {
	nextID     int64
	tracks     map[int64]*Track
	staleAfter int
}

// NewRegistry creates a registry with the default staleness window.
func NewRegistry() *Registry {
	return NewRegistryWith(DefaultStaleAfter)
}

// NewRegistryWith creates a registry terminating tracks after staleAfter
// consecutive missed frames. staleAfter <= 0 keeps every track active forever.
func NewRegistryWith(staleAfter int) *Registry {
	return &Registry{
		nextID:     1,
		tracks:     make(map[int64]*Track),
		staleAfter: staleAfter,
	}
}

// Birth allocates a new track with a freshly issued identity for a detection
// with no acceptable previous-frame match.
func (registry *Registry) Birth(frameIndex int, detection *Detection) *Track {
	track := newTrack(registry.nextID, frameIndex, detection)
	registry.nextID++
	registry.tracks[track.id] = track
	return track
}

// Apply performs one resolved frame step: matched pairs extend their existing
// tracks, unmatched current detections birth new tracks and unmatched
// previous tracks are marked missed. prevTracks is parallel to the previous
// frame's detections, curr to the current frame's. Returns the frontier —
// the track owning each current detection, parallel to curr — which becomes
// prevTracks for the next step.
func (registry *Registry) Apply(assignment Assignment, prevTracks []*Track, curr []*Detection, frameIndex int) []*Track {
	frontier := make([]*Track, len(curr))
	for _, match := range assignment.Matches {
		track := prevTracks[match[0]]
		track.extend(frameIndex, curr[match[1]])
		frontier[match[1]] = track
	}
	for _, i := range assignment.UnmatchedPrev {
		prevTracks[i].markMissed(registry.staleAfter)
	}
	for _, j := range assignment.UnmatchedCurr {
		frontier[j] = registry.Birth(frameIndex, curr[j])
	}
	return frontier
}

// Track returns the track with the given identity, or nil.
func (registry *Registry) Track(id int64) *Track {
	return registry.tracks[id]
}

// Tracks returns all tracks ever created, ordered by identity.
func (registry *Registry) Tracks() []*Track {
	all := make([]*Track, 0, len(registry.tracks))
	for _, track := range registry.tracks {
		all = append(all, track)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })
	return all
}

// ActiveTracks returns the tracks that have not been terminated, ordered by
// identity.
func (registry *Registry) ActiveTracks() []*Track {
	active := make([]*Track, 0, len(registry.tracks))
	for _, track := range registry.tracks {
		if track.state == TrackActive {
			active = append(active, track)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].id < active[j].id })
	return active
}

// Len returns how many tracks the registry has ever issued.
func (registry *Registry) Len() int {
	return len(registry.tracks)
}

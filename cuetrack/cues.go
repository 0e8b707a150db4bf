package cuetrack

import "math"

// CuePair holds the two independent evidence probabilities computed for one
// (previous detection, current detection) pair.
type CuePair struct {
	Distance   float64
	Appearance float64
}

// ScoreCues computes the spatial-proximity and appearance-similarity cues for
// a current-frame detection against a previous-frame detection. extent is the
// current frame's pixel size; its diagonal normalizes the center distance.
func ScoreCues(actual, before *Detection, extent Extent) CuePair {
	return CuePair{
		Distance:   distanceProbability(actual.center, before.center, extent),
		Appearance: histogramIntersection(&actual.signature, &before.signature),
	}
}

// distanceProbability maps center distance to [0,1]: 1 for identical centers,
// 0 for opposite frame corners.
func distanceProbability(actual, before Point, extent Extent) float64 {
	maxDistance := extent.Diagonal()
	if maxDistance == 0 {
		// Zero-area frame: no distance is meaningful, only coincidence is.
		if actual == before {
			return 1.0
		}
		return 0.0
	}
	return clamp01(1.0 - euclideanDistance(actual, before)/maxDistance)
}

// histogramIntersection of two normalized distributions, in [0,1] and equal to
// 1 only when the distributions are identical.
func histogramIntersection(a, b *[SignatureBuckets]float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Min(a[i], b[i])
	}
	return clamp01(sum)
}

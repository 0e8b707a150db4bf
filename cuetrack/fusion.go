package cuetrack

// similarityTable is the fixed conditional table P(same object | close, alike)
// over the two binary cues. Indexed [close][alike]. Distance is the stronger
// cue: a close but dissimilar pair scores 0.7 while a far but similar pair
// scores only 0.5, favoring motion continuity over appearance noise.
var similarityTable = [2][2]float64{
	{0.0, 0.5},
	{0.7, 0.8},
}

// Fuse combines the two cue probabilities into a single same-object
// probability by marginalizing the similarity table over two independent
// binary cue variables with marginals d ("close enough") and h ("looks
// alike"). Monotone in both arguments; result is in [0, 0.8].
func Fuse(d, h float64) float64 {
	d = clamp01(d)
	h = clamp01(h)
	return (1.0-d)*(1.0-h)*similarityTable[0][0] +
		(1.0-d)*h*similarityTable[0][1] +
		d*(1.0-h)*similarityTable[1][0] +
		d*h*similarityTable[1][1]
}

// FuseCues is Fuse over a scored cue pair.
func FuseCues(pair CuePair) float64 {
	return Fuse(pair.Distance, pair.Appearance)
}

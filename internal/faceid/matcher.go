package faceid

// CosineDistance computes 1 - dot(a, b) for unit-normalized vectors.
// The result lies in [0, 2]: 0 means identical direction, 2 opposite.
// Mismatched or empty inputs report the maximum distance.
func CosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 2.0
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}

	// Clamp to [-1, 1] to absorb floating point drift.
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return 1 - dot
}

// BestMatch scans all templates and returns the index and distance of the
// closest one. Ties resolve to the earliest template. The templates slice
// must be non-empty; callers enforce that before reaching the matcher.
func BestMatch(probe []float32, templates [][]float32) (int, float64) {
	bestIndex := 0
	bestDistance := CosineDistance(probe, templates[0])
	for i, tmpl := range templates[1:] {
		if d := CosineDistance(probe, tmpl); d < bestDistance {
			bestIndex = i + 1
			bestDistance = d
		}
	}
	return bestIndex, bestDistance
}

// Decide applies the match threshold. The boundary is inclusive:
// a distance exactly at the threshold counts as a match.
func Decide(bestDistance, threshold float64) bool {
	return bestDistance <= threshold
}

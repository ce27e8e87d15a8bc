package faceid

import "math"

// Dim is the embedding dimension produced by the InsightFace model.
const Dim = 512

// normEpsilon guards against division by zero when normalizing a zero vector.
const normEpsilon = 1e-9

// Normalize rescales a vector to unit L2 length.
// It never fails: a zero vector comes back as a near-zero vector instead of NaN.
// Normalizing an already-normalized vector is a no-op up to rounding.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum) + normEpsilon

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

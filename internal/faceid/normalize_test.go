package faceid

import (
	"math"
	"testing"
)

func l2Norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalize_UnitLength(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
	}{
		{name: "simple vector", input: []float32{3, 4}},
		{name: "single component", input: []float32{42}},
		{name: "negative components", input: []float32{-1, 2, -3, 4}},
		{name: "tiny values", input: []float32{1e-5, 2e-5, 3e-5}},
		{name: "large values", input: []float32{1e6, -2e6, 5e5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if norm := l2Norm(result); math.Abs(norm-1.0) > 1e-5 {
				t.Errorf("Normalize(%v) has norm %v, want 1.0", tt.input, norm)
			}
		})
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	result := Normalize([]float32{0, 0, 0})

	// Degenerate input must not fail or produce NaN, only a near-zero vector.
	for i, x := range result {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			t.Fatalf("component %d is %v, want finite", i, x)
		}
		if math.Abs(float64(x)) > 1e-6 {
			t.Errorf("component %d = %v, want near zero", i, x)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	v := []float32{0.5, -1.5, 2.5, 3.5}

	once := Normalize(v)
	twice := Normalize(once)

	for i := range once {
		if math.Abs(float64(once[i])-float64(twice[i])) > 1e-6 {
			t.Errorf("component %d changed on second normalize: %v -> %v", i, once[i], twice[i])
		}
	}
}

func TestNormalize_PreservesDirection(t *testing.T) {
	result := Normalize([]float32{3, 4})

	if math.Abs(float64(result[0])-0.6) > 1e-6 {
		t.Errorf("expected 0.6, got %v", result[0])
	}
	if math.Abs(float64(result[1])-0.8) > 1e-6 {
		t.Errorf("expected 0.8, got %v", result[1])
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	v := []float32{3, 4}
	Normalize(v)

	if v[0] != 3 || v[1] != 4 {
		t.Errorf("input mutated: %v", v)
	}
}

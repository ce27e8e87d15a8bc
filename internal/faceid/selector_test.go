package faceid

import (
	"errors"
	"testing"
)

func TestSelectPrimary_LargestFaceWins(t *testing.T) {
	detections := []Detection{
		{Index: 0, BBox: []float64{0, 0, 10, 10}},   // area 100
		{Index: 1, BBox: []float64{50, 50, 70, 70}}, // area 400
		{Index: 2, BBox: []float64{0, 0, 5, 5}},     // area 25
	}

	primary, err := SelectPrimary(detections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Index != 1 {
		t.Errorf("expected detection 1 (area 400), got %d", primary.Index)
	}
}

func TestSelectPrimary_SingleFace(t *testing.T) {
	detections := []Detection{
		{Index: 0, BBox: []float64{10, 10, 20, 20}},
	}

	primary, err := SelectPrimary(detections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Index != 0 {
		t.Errorf("expected the only detection, got index %d", primary.Index)
	}
}

func TestSelectPrimary_TieKeepsEarliest(t *testing.T) {
	// Near-duplicate boxes with identical area: the first one must win.
	detections := []Detection{
		{Index: 0, BBox: []float64{0, 0, 10, 10}},
		{Index: 1, BBox: []float64{100, 100, 110, 110}},
	}

	primary, err := SelectPrimary(detections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Index != 0 {
		t.Errorf("tie should keep the earliest detection, got index %d", primary.Index)
	}
}

func TestSelectPrimary_Empty(t *testing.T) {
	_, err := SelectPrimary(nil)
	if err == nil {
		t.Fatal("expected error for empty detections")
	}
	if !errors.Is(err, ErrNoFace) {
		t.Errorf("expected ErrNoFace, got %v", err)
	}
}

func TestDetection_Area(t *testing.T) {
	tests := []struct {
		name     string
		bbox     []float64
		expected float64
	}{
		{name: "square", bbox: []float64{0, 0, 10, 10}, expected: 100},
		{name: "rectangle", bbox: []float64{5, 5, 15, 25}, expected: 200},
		{name: "offset box", bbox: []float64{100, 200, 140, 260}, expected: 2400},
		{name: "invalid length", bbox: []float64{1, 2, 3}, expected: 0},
		{name: "nil bbox", bbox: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Detection{BBox: tt.bbox}
			if area := d.Area(); area != tt.expected {
				t.Errorf("Area() = %v, want %v", area, tt.expected)
			}
		})
	}
}

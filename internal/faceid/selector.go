package faceid

import "errors"

// ErrNoFace is returned when the embedder finds no faces in an image.
var ErrNoFace = errors.New("no face detected")

// Detection is a single face reported by the embedding model.
// BBox is [x1, y1, x2, y2] in pixel coordinates.
type Detection struct {
	Index     int       `json:"face_index"`
	BBox      []float64 `json:"bbox"`
	Embedding []float32 `json:"embedding"`
	Score     float64   `json:"det_score"`
}

// Area returns the bounding box area in square pixels.
func (d Detection) Area() float64 {
	if len(d.BBox) != 4 {
		return 0
	}
	return (d.BBox[2] - d.BBox[0]) * (d.BBox[3] - d.BBox[1])
}

// SelectPrimary picks the face with the largest bounding box.
// When several boxes share the maximum area, the earliest detection wins,
// so the selection is deterministic. Returns ErrNoFace on an empty slice.
func SelectPrimary(detections []Detection) (Detection, error) {
	if len(detections) == 0 {
		return Detection{}, ErrNoFace
	}

	best := detections[0]
	bestArea := best.Area()
	for _, d := range detections[1:] {
		if a := d.Area(); a > bestArea {
			best = d
			bestArea = a
		}
	}
	return best, nil
}

package model

import (
	"fmt"
	"math"
)

// Triangle represents a row in the `triangles` table.  Side lengths are not
// checked against the triangle inequality; degenerate sides yield a NaN
// area, matching the permissive contract of the API.
type Triangle struct {
	TriangleID uint64  // triangles.triangle_id
	Length1    float64 // triangles.length1
	Length2    float64 // triangles.length2
	Length3    float64 // triangles.length3
	UserID     uint64  // triangles.user_id
}

// Area computes the area via Heron's formula.
func (t Triangle) Area() float64 {
	s := (t.Length1 + t.Length2 + t.Length3) / 2
	return math.Sqrt(s * (s - t.Length1) * (s - t.Length2) * (s - t.Length3))
}

// Perimeter returns the sum of the three sides.
func (t Triangle) Perimeter() float64 { return t.Length1 + t.Length2 + t.Length3 }

// ApplyUpdate copies over only the fields present in the input map and
// re-stamps the owner.
func (t *Triangle) ApplyUpdate(fields map[string]any, ownerID uint64) {
	if v, ok := fields["length1"].(float64); ok {
		t.Length1 = v
	}
	if v, ok := fields["length2"].(float64); ok {
		t.Length2 = v
	}
	if v, ok := fields["length3"].(float64); ok {
		t.Length3 = v
	}
	t.UserID = ownerID
}

// TriangleRepr is the JSON shape of a triangle resource.
type TriangleRepr struct {
	TriangleID uint64  `json:"triangle_id"`
	UserID     uint64  `json:"user_id"`
	Length1    float64 `json:"length1"`
	Length2    float64 `json:"length2"`
	Length3    float64 `json:"length3"`
	Links      Links   `json:"_links"`
}

// Representation builds the response body including the hypermedia block.
func (t Triangle) Representation() TriangleRepr {
	self := fmt.Sprintf("/api/triangles/%d", t.TriangleID)
	return TriangleRepr{
		TriangleID: t.TriangleID,
		UserID:     t.UserID,
		Length1:    t.Length1,
		Length2:    t.Length2,
		Length3:    t.Length3,
		Links: Links{
			"owner":     fmt.Sprintf("/api/users/%d", t.UserID),
			"self":      self,
			"area":      self + "/area",
			"perimeter": self + "/perimeter",
			"update":    self,
			"delete":    self,
		},
	}
}

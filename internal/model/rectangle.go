package model

import "fmt"

// Rectangle represents a row in the `rectangles` table.  Each rectangle
// belongs to exactly one user; the owner is the only principal allowed to
// read, update or delete it.
//
// Fields:
//  RectangleID – primary key identifier.
//  Length      – side length, strictly positive.
//  Width       – side width, strictly positive.
//  UserID      – owning user (rectangles.user_id references users.user_id).
type Rectangle struct {
	RectangleID uint64  // rectangles.rectangle_id
	Length      float64 // rectangles.length
	Width       float64 // rectangles.width
	UserID      uint64  // rectangles.user_id
}

// Area returns length times width.
func (r Rectangle) Area() float64 { return r.Length * r.Width }

// Perimeter returns twice the sum of the sides.
func (r Rectangle) Perimeter() float64 { return 2 * (r.Length + r.Width) }

// ApplyUpdate copies over only the fields present in the input map and
// re-stamps the owner.  Absent fields keep their current value, which gives
// PUT the partial-update semantics the API documents.  Inputs are assumed
// to be validated already; no checks happen here.
func (r *Rectangle) ApplyUpdate(fields map[string]any, ownerID uint64) {
	if v, ok := fields["length"].(float64); ok {
		r.Length = v
	}
	if v, ok := fields["width"].(float64); ok {
		r.Width = v
	}
	r.UserID = ownerID
}

// RectangleRepr is the JSON shape of a rectangle resource.
type RectangleRepr struct {
	RectangleID uint64  `json:"rectangle_id"`
	UserID      uint64  `json:"user_id"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Links       Links   `json:"_links"`
}

// Representation builds the response body including the hypermedia block.
func (r Rectangle) Representation() RectangleRepr {
	self := fmt.Sprintf("/api/rectangles/%d", r.RectangleID)
	return RectangleRepr{
		RectangleID: r.RectangleID,
		UserID:      r.UserID,
		Length:      r.Length,
		Width:       r.Width,
		Links: Links{
			"owner":     fmt.Sprintf("/api/users/%d", r.UserID),
			"self":      self,
			"area":      self + "/area",
			"perimeter": self + "/perimeter",
			"update":    self,
			"delete":    self,
		},
	}
}

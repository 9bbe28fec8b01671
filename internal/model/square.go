package model

import "fmt"

// Square is a view over a rectangle with both sides equal.  Squares share
// the `rectangles` table; the length==width invariant is enforced by the
// constructor and ApplyUpdate, never by the database.
type Square struct {
	Rectangle
}

// NewSquare builds a square owned by the given user.
func NewSquare(length float64, ownerID uint64) Square {
	return Square{Rectangle{Length: length, Width: length, UserID: ownerID}}
}

// SquareOf reinterprets a stored rectangle as a square resource.
func SquareOf(r Rectangle) Square { return Square{r} }

// ApplyUpdate sets both sides from the "length" field when present and
// re-stamps the owner.
func (s *Square) ApplyUpdate(fields map[string]any, ownerID uint64) {
	if v, ok := fields["length"].(float64); ok {
		s.Length = v
		s.Width = v
	}
	s.UserID = ownerID
}

// SquareRepr is the JSON shape of a square resource.  The underlying row id
// is published as square_id and only one side is exposed.
type SquareRepr struct {
	SquareID uint64  `json:"square_id"`
	UserID   uint64  `json:"user_id"`
	Length   float64 `json:"length"`
	Links    Links   `json:"_links"`
}

// Representation builds the response body including the hypermedia block.
func (s Square) Representation() SquareRepr {
	self := fmt.Sprintf("/api/squares/%d", s.RectangleID)
	return SquareRepr{
		SquareID: s.RectangleID,
		UserID:   s.UserID,
		Length:   s.Length,
		Links: Links{
			"owner":     fmt.Sprintf("/api/users/%d", s.UserID),
			"self":      self,
			"area":      self + "/area",
			"perimeter": self + "/perimeter",
			"update":    self,
			"delete":    self,
		},
	}
}

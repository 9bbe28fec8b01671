package model

import (
	"fmt"
	"math"
)

// Diamond represents a row in the `diamonds` table.  A diamond is treated
// as a rhombus described by its two diagonals.
type Diamond struct {
	DiamondID uint64  // diamonds.diamond_id
	Diagonal1 float64 // diamonds.diagonal1
	Diagonal2 float64 // diamonds.diagonal2
	UserID    uint64  // diamonds.user_id
}

// Area returns half the product of the diagonals.
func (d Diamond) Area() float64 { return d.Diagonal1 * d.Diagonal2 / 2 }

// Perimeter returns 2*sqrt(d1^2+d2^2).  This is the formula the API has
// always published for this sub-resource and is kept verbatim, even though
// it equals twice the rhombus side rather than the full outline.
func (d Diamond) Perimeter() float64 {
	return 2 * math.Sqrt(d.Diagonal1*d.Diagonal1+d.Diagonal2*d.Diagonal2)
}

// ApplyUpdate copies over only the fields present in the input map and
// re-stamps the owner.
func (d *Diamond) ApplyUpdate(fields map[string]any, ownerID uint64) {
	if v, ok := fields["diagonal1"].(float64); ok {
		d.Diagonal1 = v
	}
	if v, ok := fields["diagonal2"].(float64); ok {
		d.Diagonal2 = v
	}
	d.UserID = ownerID
}

// DiamondRepr is the JSON shape of a diamond resource.
type DiamondRepr struct {
	DiamondID uint64  `json:"diamond_id"`
	UserID    uint64  `json:"user_id"`
	Diagonal1 float64 `json:"diagonal1"`
	Diagonal2 float64 `json:"diagonal2"`
	Links     Links   `json:"_links"`
}

// Representation builds the response body including the hypermedia block.
func (d Diamond) Representation() DiamondRepr {
	self := fmt.Sprintf("/api/diamonds/%d", d.DiamondID)
	return DiamondRepr{
		DiamondID: d.DiamondID,
		UserID:    d.UserID,
		Diagonal1: d.Diagonal1,
		Diagonal2: d.Diagonal2,
		Links: Links{
			"owner":     fmt.Sprintf("/api/users/%d", d.UserID),
			"self":      self,
			"area":      self + "/area",
			"perimeter": self + "/perimeter",
			"update":    self,
			"delete":    self,
		},
	}
}

package model

// Shape is the capability shared by every geometric resource.  Handlers
// compute derived sub-resources (area, perimeter) through this interface
// without caring which concrete shape backs it.
type Shape interface {
	Area() float64
	Perimeter() float64
}

// AreaPayload wraps a computed area the way the API publishes it.  The
// capitalized JSON key is part of the public contract.
type AreaPayload struct {
	Area float64 `json:"Area"`
}

// PerimeterPayload wraps a computed perimeter for the sub-resource response.
type PerimeterPayload struct {
	Perimeter float64 `json:"Perimeter"`
}

// Links maps a relation name (self, owner, area, ...) to the path of the
// related operation.  It is rendered under "_links" in every representation.
type Links map[string]string

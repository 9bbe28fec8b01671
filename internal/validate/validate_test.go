package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		partial bool
		wantMsg string
	}{
		{
			name: "valid create",
			body: map[string]any{"length": 4.0, "width": 5.0},
		},
		{
			name:    "missing width",
			body:    map[string]any{"length": 4.0},
			wantMsg: "must include length and width fields",
		},
		{
			name:    "missing both",
			body:    map[string]any{},
			wantMsg: "must include length and width fields",
		},
		{
			name:    "length not a number",
			body:    map[string]any{"length": "four", "width": 5.0},
			wantMsg: "length and width must be numbers",
		},
		{
			name:    "negative length",
			body:    map[string]any{"length": -1.0, "width": 5.0},
			wantMsg: "length and width must be positive",
		},
		{
			name:    "zero width",
			body:    map[string]any{"length": 4.0, "width": 0.0},
			wantMsg: "length and width must be positive",
		},
		{
			name:    "partial update ignores absent fields",
			body:    map[string]any{"width": 7.0},
			partial: true,
		},
		{
			name:    "partial update still type-checks present fields",
			body:    map[string]any{"width": true},
			partial: true,
			wantMsg: "length and width must be numbers",
		},
		{
			name:    "partial update still range-checks present fields",
			body:    map[string]any{"width": -2.0},
			partial: true,
			wantMsg: "length and width must be positive",
		},
		{
			name:    "empty partial update is fine",
			body:    map[string]any{},
			partial: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Rectangle(tt.body, tt.partial)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// The presence check must win over type and range when several rules are
// violated at once; type must win over range.
func TestRectangleCheckOrder(t *testing.T) {
	err := Rectangle(map[string]any{"length": "x"}, false)
	require.Error(t, err)
	assert.Equal(t, "must include length and width fields", err.Error())

	err = Rectangle(map[string]any{"length": "x", "width": -1.0}, false)
	require.Error(t, err)
	assert.Equal(t, "length and width must be numbers", err.Error())
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		partial bool
		wantMsg string
	}{
		{name: "valid", body: map[string]any{"length": 3.0}},
		{name: "missing length", body: map[string]any{}, wantMsg: "must include length field"},
		{name: "not a number", body: map[string]any{"length": "3"}, wantMsg: "length must be a number"},
		{name: "not positive", body: map[string]any{"length": 0.0}, wantMsg: "length must be positive"},
		{name: "empty partial", body: map[string]any{}, partial: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Square(tt.body, tt.partial)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestTriangle(t *testing.T) {
	valid := map[string]any{"length1": 3.0, "length2": 4.0, "length3": 5.0}
	assert.NoError(t, Triangle(valid, false))

	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{
			name:    "missing length3",
			body:    map[string]any{"length1": 3.0, "length2": 4.0},
			wantMsg: "must include length1, length2, and length3 fields",
		},
		{
			name:    "string side",
			body:    map[string]any{"length1": 3.0, "length2": "4", "length3": 5.0},
			wantMsg: "length must be numbers",
		},
		{
			name:    "negative side",
			body:    map[string]any{"length1": 3.0, "length2": -4.0, "length3": 5.0},
			wantMsg: "length must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Triangle(tt.body, false)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	// Degenerate but positive sides pass: the triangle inequality is
	// deliberately not enforced.
	assert.NoError(t, Triangle(map[string]any{"length1": 1.0, "length2": 1.0, "length3": 100.0}, false))
}

func TestDiamond(t *testing.T) {
	assert.NoError(t, Diamond(map[string]any{"diagonal1": 6.0, "diagonal2": 8.0}, false))

	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{
			name:    "missing diagonal2",
			body:    map[string]any{"diagonal1": 6.0},
			wantMsg: "must include diagonal1 and diagonal2 fields",
		},
		{
			name:    "boolean diagonal",
			body:    map[string]any{"diagonal1": 6.0, "diagonal2": false},
			wantMsg: "diagonal1 and diagonal2 must be numbers",
		},
		{
			name:    "negative diagonal",
			body:    map[string]any{"diagonal1": -6.0, "diagonal2": 8.0},
			wantMsg: "diagonal1 and diagonal2 must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Diamond(tt.body, false)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register(map[string]any{"user_name": "ana", "password": "s3cret"}))

	for _, body := range []map[string]any{
		{},
		{"user_name": "ana"},
		{"password": "s3cret"},
		{"user_name": "", "password": "s3cret"},
	} {
		err := Register(body)
		require.Error(t, err)
		assert.Equal(t, "must include user_name and password fields", err.Error())
	}
}

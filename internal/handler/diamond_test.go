package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoshapes/shape-api/internal/model"
)

func TestDiamondCreate(t *testing.T) {
	store := newFakeDiamondStore()
	h := NewDiamondHandler(store, nil)

	c, rec := request(t, http.MethodPost, "/api/diamonds", `{"diagonal1": 6, "diagonal2": 8}`, 9)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/diamonds/1", rec.Header().Get("Location"))

	body := decodeBody(t, rec)
	assert.Equal(t, 1.0, body["diamond_id"])
	assert.Equal(t, 6.0, body["diagonal1"])
	assert.Equal(t, 8.0, body["diagonal2"])
}

func TestDiamondCreateValidation(t *testing.T) {
	h := NewDiamondHandler(newFakeDiamondStore(), nil)

	c, rec := request(t, http.MethodPost, "/api/diamonds", `{"diagonal1": 6}`, 9)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must include diagonal1 and diagonal2 fields", decodeBody(t, rec)["message"])

	c, rec = request(t, http.MethodPost, "/api/diamonds", `{"diagonal1": "6", "diagonal2": 8}`, 9)
	require.NoError(t, h.Create(c))
	assert.Equal(t, "diagonal1 and diagonal2 must be numbers", decodeBody(t, rec)["message"])
}

func TestDiamondAreaAndPerimeter(t *testing.T) {
	store := newFakeDiamondStore()
	h := NewDiamondHandler(store, nil)
	require.NoError(t, store.Create(t.Context(), &model.Diamond{Diagonal1: 6, Diagonal2: 8, UserID: 9}))

	c, rec := request(t, http.MethodGet, "/api/diamonds/1/area", "", 9)
	require.NoError(t, h.GetArea(withParam(c, "1")))
	assert.Equal(t, map[string]any{"Area": 24.0}, decodeBody(t, rec))

	c, rec = request(t, http.MethodGet, "/api/diamonds/1/perimeter", "", 9)
	require.NoError(t, h.GetPerimeter(withParam(c, "1")))
	assert.Equal(t, map[string]any{"Perimeter": 20.0}, decodeBody(t, rec))
}

func TestDiamondDeleteThenGet(t *testing.T) {
	store := newFakeDiamondStore()
	h := NewDiamondHandler(store, nil)
	require.NoError(t, store.Create(t.Context(), &model.Diamond{Diagonal1: 6, Diagonal2: 8, UserID: 9}))

	c, rec := request(t, http.MethodDelete, "/api/diamonds/1", "", 9)
	require.NoError(t, h.Delete(withParam(c, "1")))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = request(t, http.MethodGet, "/api/diamonds/1", "", 9)
	require.NoError(t, h.Get(withParam(c, "1")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

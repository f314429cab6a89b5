package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_OK(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "accepted"}, 202)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 202, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"accepted"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, func() {}, 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestGetCallerFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "editor-service")

	caller, ok := GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "editor-service", caller)

	_, ok = GetCallerFromContext(context.Background())
	assert.False(t, ok)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

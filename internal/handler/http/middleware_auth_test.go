package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-translation-webhooks/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectedProbe wires the auth middleware in front of a handler that
// reports the caller identity extracted from the context.
func protectedProbe(t *testing.T) (http.Handler, *string) {
	t.Helper()

	var caller string
	h := newTestHandler(t, &stubQueue{})
	probe := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ = utils.GetCallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	return probe, &caller
}

func TestAuth_ValidToken(t *testing.T) {
	probe, caller := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerToken(t, time.Minute))
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "translation-server-core", *caller)
}

func TestAuth_MissingHeader(t *testing.T) {
	probe, _ := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuth_MalformedHeader(t *testing.T) {
	probe, _ := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_EmptyToken(t *testing.T) {
	probe, _ := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	probe, _ := protectedProbe(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearerToken(t, -time.Minute))
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), utils.ErrTokenIsExpired.Error())
}

func TestAuth_WrongSignKey(t *testing.T) {
	probe, _ := protectedProbe(t)

	token, err := utils.GenerateJWTToken(testIssuer, "translation-server-core", time.Minute, "some-other-key")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongIssuer(t *testing.T) {
	probe, _ := protectedProbe(t)

	token, err := utils.GenerateJWTToken("some-other-service", "translation-server-core", time.Minute, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

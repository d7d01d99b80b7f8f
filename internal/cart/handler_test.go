package cart

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), NewService(newStubFinder()))
	r := chi.NewRouter()
	r.Route("/api/cart", handler.MountRoutes)
	return r
}

func postAdd(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAddEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := postAdd(router, `{"productId":2,"quantity":2}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var got addResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Success)
	require.Len(t, got.Cart.Items, 1)
	assert.Equal(t, int64(4999800), got.Cart.Total)
}

func TestAddEndpointUnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	rr := postAdd(router, `{"productId":99,"quantity":1}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rr.Body.String())
}

func TestAddEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing productId", body: `{"quantity":1}`},
		{name: "zero productId", body: `{"productId":0}`},
		{name: "malformed body", body: `{"productId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postAdd(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), `"success":false`)
		})
	}
}

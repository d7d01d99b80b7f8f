package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, products []Product) http.Handler {
	t.Helper()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), newTestService(t, products))
	r := chi.NewRouter()
	r.Route("/api/products", handler.MountProductRoutes)
	r.Route("/api/categories", handler.MountCategoryRoutes)
	return r
}

func TestListProductsEndpoint(t *testing.T) {
	router := newTestRouter(t, testProducts())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Kundan Pearl Necklace", got[0].Title)
}

func TestListProductsEndpointCategoryFilter(t *testing.T) {
	router := newTestRouter(t, testProducts())

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Necklaces", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestListProductsEndpointUnmatchedFilterIsEmptyArray(t *testing.T) {
	router := newTestRouter(t, testProducts())

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Anklets", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetProductEndpoint(t *testing.T) {
	router := newTestRouter(t, testProducts())

	req := httptest.NewRequest(http.MethodGet, "/api/products/2", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, int64(5), got.Stock)
}

func TestGetProductEndpointNotFound(t *testing.T) {
	router := newTestRouter(t, testProducts())

	for _, path := range []string{"/api/products/99", "/api/products/abc"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.JSONEq(t, `{"error":"Product not found"}`, rr.Body.String(), path)
	}
}

func TestListCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(t, testProducts())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Necklaces","Rings"]`, rr.Body.String())
}

func TestListCategoriesEndpointEmptyCatalog(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

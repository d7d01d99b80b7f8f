package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// Handler wires the catalog query endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountProductRoutes registers product routes on the provided router.
func (h *Handler) MountProductRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// MountCategoryRoutes registers category routes on the provided router.
func (h *Handler) MountCategoryRoutes(r chi.Router) {
	r.Get("/", h.listCategories)
}

// list handles GET /api/products with an optional ?category= filter.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(r.Context(), category)
	if err != nil {
		h.logger.Error("list products failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// get handles GET /api/products/{id}. A non-numeric identifier matches no
// product and is reported the same way as an unknown one.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logger.Error("get product failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

// listCategories handles GET /api/categories.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	httpx.JSON(w, http.StatusOK, categories)
}

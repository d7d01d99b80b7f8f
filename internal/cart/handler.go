package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// Handler wires the cart endpoint.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers cart routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/add", h.add)
}

type addRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"gte=0"`
}

type addResponse struct {
	Success bool    `json:"success"`
	Cart    Summary `json:"cart"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "A valid productId and quantity are required")
		return
	}

	summary, err := h.service.Add(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, httpx.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, httpx.ErrValidation):
			httpx.Fail(w, http.StatusBadRequest, "Quantity must be positive")
		default:
			h.logger.Error("cart add failed", slog.Any("error", err))
			httpx.Fail(w, http.StatusInternalServerError, "Unable to add to cart")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, addResponse{Success: true, Cart: summary})
}

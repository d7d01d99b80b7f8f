package newsletter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// Handler wires the newsletter signup endpoint.
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

// MountRoutes registers newsletter routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/subscribe", h.subscribe)
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	sub, err := h.service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, httpx.ErrDuplicate) {
			httpx.Fail(w, http.StatusConflict, "Email is already subscribed")
			return
		}
		h.logger.Error("newsletter subscribe failed", slog.Any("error", err))
		httpx.Fail(w, http.StatusBadRequest, "Unable to subscribe")
		return
	}

	h.logger.Info("newsletter signup", slog.String("subscription_id", sub.ID.String()))
	httpx.OK(w, "Successfully subscribed to the newsletter")
}

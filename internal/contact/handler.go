package contact

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// Handler wires the contact form endpoint.
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

// MountRoutes registers contact routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.submit)
}

type submitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	sub, err := h.service.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.logger.Error("contact submit failed", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Unable to submit message")
		return
	}

	h.logger.Info("contact submission received",
		slog.String("submission_id", sub.ID.String()),
		slog.String("email", sub.Email),
	)
	httpx.OK(w, "Thank you for reaching out, we will get back to you soon")
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/httputil"
	"github.com/fariyk68-sudo/Khan/pkg/validator"
)

// SelectionHandler handles HTTP requests for product page selections.
type SelectionHandler struct {
	service *service.SelectionService
	logger  *slog.Logger
}

// NewSelectionHandler creates a new selection HTTP handler.
func NewSelectionHandler(svc *service.SelectionService, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{
		service: svc,
		logger:  logger,
	}
}

// SetQuantityRequest is the JSON request body for the quantity picker.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectOptionRequest is the JSON request body for choosing a variation option.
type SelectOptionRequest struct {
	Label  string `json:"label" validate:"required"`
	Option string `json:"option" validate:"required"`
}

// Get handles GET /api/v1/selections/{productID}
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	selection, err := h.service.Get(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: selection})
}

// SetQuantity handles PUT /api/v1/selections/{productID}/quantity
func (h *SelectionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req SetQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	selection, err := h.service.SetQuantity(r.Context(), productID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: selection})
}

// SelectOption handles PUT /api/v1/selections/{productID}/options
func (h *SelectionHandler) SelectOption(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req SelectOptionRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	selection, err := h.service.SelectOption(r.Context(), productID, req.Label, req.Option)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: selection})
}

// Reset handles DELETE /api/v1/selections/{productID}
func (h *SelectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.service.Reset(r.Context(), productID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/httputil"
	"github.com/fariyk68-sudo/Khan/pkg/validator"
)

// Store contact details shown on the contact page.
const (
	StoreName     = "KHAN STORE"
	StorePhone    = "0310 5314345"
	StoreLocation = "Islamabad F17 Telegarden"
)

// MessageSentReply is shown after a contact message is accepted.
const MessageSentReply = "Message sent! We will contact you soon."

// ContactHandler serves the contact page payload and takes messages.
type ContactHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact HTTP handler.
func NewContactHandler(svc *service.CatalogService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		service: svc,
		logger:  logger,
	}
}

// contactView bundles the store details with the contact carousel.
type contactView struct {
	StoreName string         `json:"store_name"`
	Phone     string         `json:"phone"`
	Location  string         `json:"location"`
	Slides    []domain.Slide `json:"slides"`
}

// SendMessageRequest is the JSON request body for the contact form.
type SendMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// messageSentView acknowledges a contact message.
type messageSentView struct {
	Message string `json:"message"`
}

// Get handles GET /api/v1/contact
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListContactSlides(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: contactView{
		StoreName: StoreName,
		Phone:     StorePhone,
		Location:  StoreLocation,
		Slides:    slides,
	}})
}

// SendMessage handles POST /api/v1/contact
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	// There is no inbox behind the store; the message is acknowledged and
	// logged for the operators.
	h.logger.InfoContext(r.Context(), "contact message received",
		slog.String("name", req.Name),
		slog.String("email", req.Email),
	)

	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{Data: messageSentView{
		Message: MessageSentReply,
	}})
}

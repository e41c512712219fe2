package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	"github.com/fariyk68-sudo/Khan/internal/event"
	"github.com/fariyk68-sudo/Khan/internal/repository"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

// DefaultAutoCloseDelay is how long the confirmation screen stays up before
// the session closes on its own.
const DefaultAutoCloseDelay = 4 * time.Second

// ConfirmationMessage is shown on the order confirmation screen.
const ConfirmationMessage = "Order Confirmed! Thank you for shopping with us."

// StartCheckoutInput holds the parameters for opening a checkout session.
type StartCheckoutInput struct {
	Mode      string `json:"mode" validate:"required,oneof=cart buy_now"`
	ProductID string `json:"product_id,omitempty"`
}

// ShippingInput is the checkout form. Every field is required.
type ShippingInput struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required,max=500"`
}

// SubmitResult describes the outcome of submitting the checkout form.
// Exactly one of the two outcomes applies: the shopper is handed off to an
// external payment page, or the order is confirmed in place.
type SubmitResult struct {
	Confirmed   bool   `json:"confirmed"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CheckoutService manages the single checkout session lifecycle.
type CheckoutService struct {
	repo       repository.CheckoutRepository
	cartRepo   repository.CartRepository
	catalog    repository.CatalogRepository
	selections repository.SelectionRepository
	cart       *CartService
	producer   *event.Producer
	logger     *slog.Logger

	autoCloseDelay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	repo repository.CheckoutRepository,
	cartRepo repository.CartRepository,
	catalog repository.CatalogRepository,
	selections repository.SelectionRepository,
	cart *CartService,
	producer *event.Producer,
	logger *slog.Logger,
	autoCloseDelay time.Duration,
) *CheckoutService {
	if autoCloseDelay <= 0 {
		autoCloseDelay = DefaultAutoCloseDelay
	}
	return &CheckoutService{
		repo:           repo,
		cartRepo:       cartRepo,
		catalog:        catalog,
		selections:     selections,
		cart:           cart,
		producer:       producer,
		logger:         logger,
		autoCloseDelay: autoCloseDelay,
	}
}

// PaymentMethods returns the supported payment methods in display order.
func (s *CheckoutService) PaymentMethods() []domain.PaymentMethod {
	return domain.PaymentMethods
}

// Current returns the active session, or a not-found error when no checkout
// is in progress.
func (s *CheckoutService) Current(ctx context.Context) (*domain.CheckoutSession, error) {
	session, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	if session == nil {
		return nil, apperrors.NotFound("checkout session", "current")
	}
	return session, nil
}

// Start opens a checkout session. Only one session may exist at a time.
// Cart mode snapshots the whole cart; buy-now mode checks out a single
// product using its current page selection.
func (s *CheckoutService) Start(ctx context.Context, input StartCheckoutInput) (*domain.CheckoutSession, error) {
	existing, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("a checkout is already in progress")
	}

	session := &domain.CheckoutSession{
		ID:            uuid.New().String(),
		Status:        domain.CheckoutOpen,
		PaymentMethod: domain.DefaultPaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	switch domain.CheckoutMode(input.Mode) {
	case domain.CheckoutModeCart:
		cart, err := s.cartRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("get cart: %w", err)
		}
		if cart.IsEmpty() {
			return nil, apperrors.InvalidInput("cannot check out an empty cart")
		}
		session.Mode = domain.CheckoutModeCart
		session.Items = cart.Items
		session.Subtotal = cart.SubtotalAmount()
		session.Total = cart.TotalAmount()

	case domain.CheckoutModeBuyNow:
		if input.ProductID == "" {
			return nil, apperrors.InvalidInput("product id is required for buy now")
		}
		product, err := s.catalog.GetProduct(ctx, input.ProductID)
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		selection, err := selectionFor(ctx, s.selections, product)
		if err != nil {
			return nil, err
		}
		// The cart's applied discount covers buy-now totals too.
		cart, err := s.cartRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("get cart: %w", err)
		}
		item := domain.CartItem{
			ProductID:          product.ID,
			Name:               product.Name,
			Price:              product.Price,
			ImageURL:           product.ImageURL,
			Quantity:           selection.Quantity,
			SelectedVariations: selection.Options,
		}
		session.Mode = domain.CheckoutModeBuyNow
		session.Items = []domain.CartItem{item}
		session.Subtotal = item.Price * int64(item.Quantity)
		session.Total = session.Subtotal * int64(100-cart.DiscountPercent) / 100

	default:
		return nil, apperrors.InvalidInput("mode must be cart or buy_now")
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout started",
		slog.String("session_id", session.ID),
		slog.String("mode", string(session.Mode)),
		slog.Int("item_count", session.ItemCount()),
		slog.Int64("total", session.Total),
	)

	return session, nil
}

// SetPaymentMethod changes the session's payment method while it is open.
func (s *CheckoutService) SetPaymentMethod(ctx context.Context, name string) (*domain.CheckoutSession, error) {
	if _, ok := domain.PaymentMethodByName(name); !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unsupported payment method %q", name))
	}

	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutOpen {
		return nil, apperrors.Conflict("checkout is no longer accepting changes")
	}

	session.PaymentMethod = name
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "payment method selected",
		slog.String("session_id", session.ID),
		slog.String("payment_method", name),
	)

	return session, nil
}

// Submit validates the shipping form and places the order. Redirect methods
// close the session and hand back the external payment URL; the rest confirm
// in place and auto-close after the configured delay. Only a whole-cart
// checkout clears the cart on confirmation.
func (s *CheckoutService) Submit(ctx context.Context, input ShippingInput) (*SubmitResult, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, apperrors.InvalidInput("first name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.InvalidInput("last name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.InvalidInput("email is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, apperrors.InvalidInput("address is required")
	}

	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutOpen {
		return nil, apperrors.Conflict("checkout was already submitted")
	}

	session.Shipping = domain.ShippingDetails{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Address:   strings.TrimSpace(input.Address),
	}

	method, ok := domain.PaymentMethodByName(session.PaymentMethod)
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unsupported payment method %q", session.PaymentMethod))
	}

	if method.RequiresRedirect {
		// The external page takes over; the session ends here and the
		// cart is left untouched.
		if err := s.repo.Delete(ctx); err != nil {
			return nil, fmt.Errorf("close checkout session: %w", err)
		}

		s.publishCompleted(ctx, session)

		s.logger.InfoContext(ctx, "checkout handed off to payment provider",
			slog.String("session_id", session.ID),
			slog.String("payment_method", method.Name),
		)

		return &SubmitResult{RedirectURL: method.RedirectURL}, nil
	}

	session.Status = domain.CheckoutConfirmed
	session.ConfirmedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}

	s.publishCompleted(ctx, session)

	s.scheduleAutoClose(session)

	s.logger.InfoContext(ctx, "checkout confirmed",
		slog.String("session_id", session.ID),
		slog.String("payment_method", method.Name),
		slog.Int64("total", session.Total),
	)

	return &SubmitResult{Confirmed: true, Message: ConfirmationMessage}, nil
}

// Cancel abandons an open checkout. Confirmed sessions cannot be cancelled;
// they close on their own.
func (s *CheckoutService) Cancel(ctx context.Context) error {
	session, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if session.Status != domain.CheckoutOpen {
		return apperrors.Conflict("a confirmed checkout cannot be cancelled")
	}

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("close checkout session: %w", err)
	}

	if err := s.producer.PublishCheckoutCancelled(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.cancelled event",
			slog.String("session_id", session.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout cancelled",
		slog.String("session_id", session.ID),
	)

	return nil
}

// Close stops any pending auto-close timer. Called on shutdown.
func (s *CheckoutService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// scheduleAutoClose arms the confirmation timeout. When it fires, the session
// is deleted and, for whole-cart checkouts, the cart is emptied.
func (s *CheckoutService) scheduleAutoClose(session *domain.CheckoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	mode := session.Mode
	sessionID := session.ID

	s.timer = time.AfterFunc(s.autoCloseDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.repo.Delete(ctx); err != nil {
			s.logger.ErrorContext(ctx, "failed to close confirmed checkout",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
			return
		}

		if mode == domain.CheckoutModeCart {
			if err := s.cart.Clear(ctx, "checkout completed"); err != nil {
				s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
					slog.String("session_id", sessionID),
					slog.String("error", err.Error()),
				)
			}
		}

		s.logger.Info("checkout session closed",
			slog.String("session_id", sessionID),
			slog.String("mode", string(mode)),
		)
	})
}

func (s *CheckoutService) publishCompleted(ctx context.Context, session *domain.CheckoutSession) {
	if err := s.producer.PublishCheckoutCompleted(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("session_id", session.ID),
			slog.String("error", err.Error()),
		)
	}
}

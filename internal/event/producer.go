package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	pkgkafka "github.com/fariyk68-sudo/Khan/pkg/kafka"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated       = "storefront.cart.updated"
	TopicCartCleared       = "storefront.cart.cleared"
	TopicWishlistUpdated   = "storefront.wishlist.updated"
	TopicReviewCreated     = "storefront.review.created"
	TopicCheckoutCompleted = "storefront.checkout.completed"
	TopicCheckoutCancelled = "storefront.checkout.cancelled"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeWishlist = "wishlist"
	AggregateTypeProduct  = "product"
	AggregateTypeCheckout = "checkout"
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// The storefront serves a single shopper, so cart and wishlist events
// always share one aggregate ID.
const singleShopperAggregateID = "shopper"

// CartItemData is the item payload within cart and checkout events.
type CartItemData struct {
	ProductID  string            `json:"product_id"`
	Name       string            `json:"name"`
	Price      int64             `json:"price"`
	Quantity   int               `json:"quantity"`
	Variations map[string]string `json:"variations,omitempty"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	Items           []CartItemData `json:"items"`
	ItemCount       int            `json:"item_count"`
	DiscountPercent int            `json:"discount_percent"`
	TotalAmount     int64          `json:"total_amount"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	Reason string `json:"reason"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	ProductID string `json:"product_id"`
	Saved     bool   `json:"saved"`
	Count     int    `json:"count"`
}

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ProductID    string `json:"product_id"`
	ReviewID     string `json:"review_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	SessionID     string         `json:"session_id"`
	Mode          string         `json:"mode"`
	PaymentMethod string         `json:"payment_method"`
	Items         []CartItemData `json:"items"`
	TotalAmount   int64          `json:"total_amount"`
}

// CheckoutCancelledData is the payload for a checkout.cancelled event.
type CheckoutCancelledData struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"mode"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		Items:           cartItemData(cart.Items),
		ItemCount:       cart.ItemCount(),
		DiscountPercent: cart.DiscountPercent,
		TotalAmount:     cart.TotalAmount(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, singleShopperAggregateID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, reason string) error {
	data := CartClearedData{Reason: reason}

	event, err := pkgkafka.NewEvent(TopicCartCleared, singleShopperAggregateID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("reason", reason),
	)

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event.
func (p *Producer) PublishWishlistUpdated(ctx context.Context, productID string, saved bool, count int) error {
	data := WishlistUpdatedData{ProductID: productID, Saved: saved, Count: count}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, singleShopperAggregateID, AggregateTypeWishlist, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.updated event",
		slog.String("product_id", productID),
		slog.Bool("saved", saved),
	)

	return nil
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, productID string, review domain.Review) error {
	data := ReviewCreatedData{
		ProductID:    productID,
		ReviewID:     review.ID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
	}

	event, err := pkgkafka.NewEvent(TopicReviewCreated, productID, AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create review.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewCreated, event); err != nil {
		return fmt.Errorf("publish review.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.created event",
		slog.String("product_id", productID),
		slog.String("review_id", review.ID),
	)

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, session *domain.CheckoutSession) error {
	data := CheckoutCompletedData{
		SessionID:     session.ID,
		Mode:          string(session.Mode),
		PaymentMethod: session.PaymentMethod,
		Items:         cartItemData(session.Items),
		TotalAmount:   session.TotalAmount(),
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, session.ID, AggregateTypeCheckout, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("session_id", session.ID),
		slog.String("payment_method", session.PaymentMethod),
	)

	return nil
}

// PublishCheckoutCancelled publishes a checkout.cancelled event.
func (p *Producer) PublishCheckoutCancelled(ctx context.Context, session *domain.CheckoutSession) error {
	data := CheckoutCancelledData{SessionID: session.ID, Mode: string(session.Mode)}

	event, err := pkgkafka.NewEvent(TopicCheckoutCancelled, session.ID, AggregateTypeCheckout, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.cancelled event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCancelled, event); err != nil {
		return fmt.Errorf("publish checkout.cancelled event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.cancelled event",
		slog.String("session_id", session.ID),
	)

	return nil
}

func cartItemData(items []domain.CartItem) []CartItemData {
	out := make([]CartItemData, len(items))
	for i, item := range items {
		out[i] = CartItemData{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Variations: item.SelectedVariations,
		}
	}
	return out
}

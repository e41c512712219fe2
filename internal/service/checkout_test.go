package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

func validShipping() ShippingInput {
	return ShippingInput{
		FirstName: "Ayesha",
		LastName:  "Khan",
		Email:     "ayesha@example.com",
		Address:   "42 Mall Road, Islamabad",
	}
}

func TestCheckoutService_Start_CartMode(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.cart.ApplyDiscountCode(ctx, "SAVE10")
	require.NoError(t, err)

	session, err := f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutOpen, session.Status)
	assert.Equal(t, domain.CheckoutModeCart, session.Mode)
	assert.Equal(t, domain.DefaultPaymentMethod, session.PaymentMethod)
	assert.Equal(t, int64(12999), session.Subtotal)
	assert.Equal(t, int64(12999)*90/100, session.Total)
}

func TestCheckoutService_Start_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.Start(context.Background(), StartCheckoutInput{Mode: "cart"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCheckoutService_Start_Conflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)

	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCheckoutService_Start_BuyNow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.selection.SetQuantity(ctx, "p1", 2)
	require.NoError(t, err)
	_, err = f.selection.SelectOption(ctx, "p1", "Storage", "1TB")
	require.NoError(t, err)

	session, err := f.checkout.Start(ctx, StartCheckoutInput{Mode: "buy_now", ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutModeBuyNow, session.Mode)
	require.Len(t, session.Items, 1)
	assert.Equal(t, 2, session.Items[0].Quantity)
	assert.Equal(t, "1TB", session.Items[0].SelectedVariations["Storage"])
	assert.Equal(t, int64(99900*2), session.Total)
}

func TestCheckoutService_Start_BuyNow_AppliesCartDiscount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.ApplyDiscountCode(ctx, "SAVE10")
	require.NoError(t, err)

	session, err := f.checkout.Start(ctx, StartCheckoutInput{Mode: "buy_now", ProductID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, int64(12999), session.Subtotal)
	assert.Equal(t, int64(11699), session.Total)
}

func TestCheckoutService_Start_BuyNow_RequiresProduct(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.Start(context.Background(), StartCheckoutInput{Mode: "buy_now"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCheckoutService_Start_InvalidMode(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.Start(context.Background(), StartCheckoutInput{Mode: "teleport"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCheckoutService_SetPaymentMethod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)

	session, err := f.checkout.SetPaymentMethod(ctx, "Cash")
	require.NoError(t, err)
	assert.Equal(t, "Cash", session.PaymentMethod)

	_, err = f.checkout.SetPaymentMethod(ctx, "Barter")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCheckoutService_SetPaymentMethod_NoSession(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.SetPaymentMethod(context.Background(), "Cash")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCheckoutService_Submit_RedirectMethod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)

	// Default method is Visa, which redirects.
	result, err := f.checkout.Submit(ctx, validShipping())
	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.Equal(t, "https://www.visa.com/pay-with-visa", result.RedirectURL)

	// Handed off: the session is gone and the cart is untouched.
	_, err = f.checkout.Current(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_Submit_ConfirmAndAutoClose_CartMode(t *testing.T) {
	f := newFixtureWithAutoClose(30 * time.Millisecond)
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.cart.ApplyDiscountCode(ctx, "SAVE20")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)
	_, err = f.checkout.SetPaymentMethod(ctx, "Cash")
	require.NoError(t, err)

	result, err := f.checkout.Submit(ctx, validShipping())
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
	assert.Empty(t, result.RedirectURL)
	assert.Equal(t, ConfirmationMessage, result.Message)

	// Until the timeout fires the session is still visible as confirmed.
	session, err := f.checkout.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutConfirmed, session.Status)

	assert.Eventually(t, func() bool {
		_, err := f.checkout.Current(ctx)
		return errors.Is(err, apperrors.ErrNotFound)
	}, time.Second, 10*time.Millisecond)

	// Whole-cart checkout empties the cart when the session closes.
	assert.Eventually(t, func() bool {
		cart, err := f.cart.GetCart(ctx)
		return err == nil && cart.IsEmpty()
	}, time.Second, 10*time.Millisecond)

	// The applied discount is not reset by the clear.
	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, cart.DiscountPercent)
}

func TestCheckoutService_Submit_ConfirmAndAutoClose_BuyNowKeepsCart(t *testing.T) {
	f := newFixtureWithAutoClose(30 * time.Millisecond)
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)

	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "buy_now", ProductID: "p6"})
	require.NoError(t, err)
	_, err = f.checkout.SetPaymentMethod(ctx, "Payeer")
	require.NoError(t, err)

	result, err := f.checkout.Submit(ctx, validShipping())
	require.NoError(t, err)
	assert.True(t, result.Confirmed)

	assert.Eventually(t, func() bool {
		_, err := f.checkout.Current(ctx)
		return errors.Is(err, apperrors.ErrNotFound)
	}, time.Second, 10*time.Millisecond)

	// A buy-now purchase never touches the saved cart.
	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCheckoutService_Submit_ValidatesForm(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input ShippingInput
	}{
		{"missing first name", ShippingInput{LastName: "Khan", Email: "a@b.com", Address: "x"}},
		{"missing last name", ShippingInput{FirstName: "Ayesha", Email: "a@b.com", Address: "x"}},
		{"missing email", ShippingInput{FirstName: "Ayesha", LastName: "Khan", Address: "x"}},
		{"missing address", ShippingInput{FirstName: "Ayesha", LastName: "Khan", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.checkout.Submit(ctx, tt.input)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		})
	}

	// The session is still open after failed submissions.
	session, err := f.checkout.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutOpen, session.Status)
}

func TestCheckoutService_Submit_NoSession(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.Submit(context.Background(), validShipping())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCheckoutService_Cancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)

	require.NoError(t, f.checkout.Cancel(ctx))

	_, err = f.checkout.Current(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// Cancelling leaves the cart intact.
	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestCheckoutService_Cancel_ConfirmedSession(t *testing.T) {
	f := newFixtureWithAutoClose(time.Minute)
	defer f.checkout.Close()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.checkout.Start(ctx, StartCheckoutInput{Mode: "cart"})
	require.NoError(t, err)
	_, err = f.checkout.SetPaymentMethod(ctx, "Cash")
	require.NoError(t, err)
	_, err = f.checkout.Submit(ctx, validShipping())
	require.NoError(t, err)

	err = f.checkout.Cancel(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCheckoutService_Cancel_NoSession(t *testing.T) {
	f := newFixture()

	err := f.checkout.Cancel(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCheckoutService_PaymentMethods(t *testing.T) {
	f := newFixture()

	methods := f.checkout.PaymentMethods()
	require.Len(t, methods, 6)
	assert.Equal(t, "Payoneer", methods[0].Name)
}

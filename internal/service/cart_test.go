package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

func TestCartService_AddFromSelection_Defaults(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cart, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Stealth Audio Wireless", cart.Items[0].Name)
	assert.Equal(t, int64(12999), cart.Items[0].Price)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_AddFromSelection_UsesSelection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.selection.SetQuantity(ctx, "p1", 2)
	require.NoError(t, err)
	_, err = f.selection.SelectOption(ctx, "p1", "Storage", "512GB")
	require.NoError(t, err)
	_, err = f.selection.SelectOption(ctx, "p1", "Color", "Midnight")
	require.NoError(t, err)

	cart, err := f.cart.AddFromSelection(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "512GB", cart.Items[0].SelectedVariations["Storage"])

	// Adding resets the page quantity back to 1 but keeps the choices.
	s, err := f.selection.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Quantity)
	assert.Equal(t, "Midnight", s.Options["Color"])
}

func TestCartService_AddFromSelection_MergesSameChoices(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.selection.SelectOption(ctx, "p3", "Size", "M")
	require.NoError(t, err)

	_, err = f.cart.AddFromSelection(ctx, "p3")
	require.NoError(t, err)
	cart, err := f.cart.AddFromSelection(ctx, "p3")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_AddFromSelection_DifferentChoicesSeparateLines(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.selection.SelectOption(ctx, "p3", "Size", "M")
	require.NoError(t, err)
	_, err = f.cart.AddFromSelection(ctx, "p3")
	require.NoError(t, err)

	_, err = f.selection.SelectOption(ctx, "p3", "Size", "L")
	require.NoError(t, err)
	cart, err := f.cart.AddFromSelection(ctx, "p3")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
}

func TestCartService_AddFromSelection_DefaultVariations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// An untouched product page carries the first option of each axis.
	cart, err := f.cart.AddFromSelection(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "256GB", cart.Items[0].SelectedVariations["Storage"])
	assert.Equal(t, "Titanium", cart.Items[0].SelectedVariations["Color"])
}

func TestCartService_UpdateQuantity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)

	cart, err := f.cart.UpdateQuantity(ctx, "p2", "", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity_FloorsAtOne(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)

	cart, err := f.cart.UpdateQuantity(ctx, "p2", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity_AbsentLineIsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)

	cart, err := f.cart.UpdateQuantity(ctx, "p6", "", 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCartService_RemoveItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.cart.AddFromSelection(ctx, "p6")
	require.NoError(t, err)

	cart, err := f.cart.RemoveItem(ctx, "p2", "")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p6", cart.Items[0].ProductID)

	// Removing again is a no-op.
	cart, err = f.cart.RemoveItem(ctx, "p2", "")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ApplyDiscountCode(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)

	cart, err := f.cart.ApplyDiscountCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 10, cart.DiscountPercent)

	cart, err = f.cart.ApplyDiscountCode(ctx, "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, 20, cart.DiscountPercent)
}

func TestCartService_ApplyDiscountCode_RejectedKeepsPrevious(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.ApplyDiscountCode(ctx, "SAVE10")
	require.NoError(t, err)

	_, err = f.cart.ApplyDiscountCode(ctx, "SAVE99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDiscountRejected))

	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, cart.DiscountPercent)
}

func TestCartService_DiscountedTotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Seed a cart worth exactly 35.00 to check integer discount math.
	cart := &domain.Cart{Items: []domain.CartItem{
		{ProductID: "a", Price: 2000, Quantity: 1},
		{ProductID: "b", Price: 1500, Quantity: 1},
	}}
	require.NoError(t, f.cartRepo.Save(ctx, cart))

	got, err := f.cart.ApplyDiscountCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, int64(3500), got.SubtotalAmount())
	assert.Equal(t, int64(3150), got.TotalAmount())
}

func TestCartService_Clear(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddFromSelection(ctx, "p2")
	require.NoError(t, err)
	_, err = f.cart.ApplyDiscountCode(ctx, "SAVE20")
	require.NoError(t, err)

	require.NoError(t, f.cart.Clear(ctx, "test"))

	cart, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	// The discount outlives the cleared lines; only a new code replaces it.
	assert.Equal(t, 20, cart.DiscountPercent)
}

func TestCartService_AddFromSelection_UnknownProduct(t *testing.T) {
	f := newFixture()

	_, err := f.cart.AddFromSelection(context.Background(), "p99")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

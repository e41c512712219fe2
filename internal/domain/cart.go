package domain

import (
	"sort"
	"strings"
	"time"
)

// CartItem represents a single line in the cart. A product can appear on
// multiple lines when added with different variation choices.
type CartItem struct {
	ProductID          string            `json:"product_id"`
	Name               string            `json:"name"`
	Price              int64             `json:"price"`
	ImageURL           string            `json:"image_url,omitempty"`
	Quantity           int               `json:"quantity"`
	SelectedVariations map[string]string `json:"selected_variations,omitempty"`
}

// VariationKey returns a canonical identity for the item's variation
// choices: "label=option" pairs sorted by label and joined with ";".
// Two items with the same product and the same choices always produce the
// same key regardless of map iteration order.
func (i *CartItem) VariationKey() string {
	return VariationKey(i.SelectedVariations)
}

// VariationKey builds the canonical key for a set of variation choices.
// An empty or nil map yields the empty key.
func VariationKey(selections map[string]string) string {
	if len(selections) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(selections))
	for label, option := range selections {
		pairs = append(pairs, label+"="+option)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

// Cart represents the shopper's cart, including any applied discount.
type Cart struct {
	Items           []CartItem `json:"items"`
	DiscountPercent int        `json:"discount_percent"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SubtotalAmount calculates the pre-discount total of all lines (in cents).
func (c *Cart) SubtotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// TotalAmount calculates the payable total after the applied discount (in cents).
func (c *Cart) TotalAmount() int64 {
	subtotal := c.SubtotalAmount()
	if c.DiscountPercent <= 0 {
		return subtotal
	}
	return subtotal * int64(100-c.DiscountPercent) / 100
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the line matching the given product ID
// and variation key, or -1 if no such line exists.
func (c *Cart) FindItemIndex(productID, variationKey string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].VariationKey() == variationKey {
			return i
		}
	}
	return -1
}

// AddItem merges the item into an existing matching line or appends a new one.
func (c *Cart) AddItem(item CartItem) {
	if idx := c.FindItemIndex(item.ProductID, item.VariationKey()); idx >= 0 {
		c.Items[idx].Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line matching the given product ID and variation key.
// Removing an absent line is a no-op.
func (c *Cart) RemoveItem(productID, variationKey string) {
	if idx := c.FindItemIndex(productID, variationKey); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
}

// Clear removes every line. The applied discount stays until a new code is
// entered.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

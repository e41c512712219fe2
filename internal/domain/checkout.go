package domain

import "time"

// CheckoutStatus is the lifecycle state of a checkout session.
type CheckoutStatus string

const (
	// CheckoutOpen means the session is active and accepting form input.
	CheckoutOpen CheckoutStatus = "open"
	// CheckoutConfirmed means the order was placed and the confirmation
	// screen is showing until the session auto-closes.
	CheckoutConfirmed CheckoutStatus = "confirmed"
)

// CheckoutMode distinguishes a whole-cart checkout from a direct buy-now
// purchase of a single item.
type CheckoutMode string

const (
	CheckoutModeCart   CheckoutMode = "cart"
	CheckoutModeBuyNow CheckoutMode = "buy_now"
)

// PaymentMethod describes one way to pay. Redirect methods hand the shopper
// off to an external page; the rest confirm in place.
type PaymentMethod struct {
	Name             string `json:"name"`
	RequiresRedirect bool   `json:"requires_redirect"`
	RedirectURL      string `json:"redirect_url,omitempty"`
}

// PaymentMethods lists the supported payment methods in display order.
var PaymentMethods = []PaymentMethod{
	{Name: "Payoneer", RequiresRedirect: true, RedirectURL: "https://www.payoneer.com"},
	{Name: "Google Pay", RequiresRedirect: true, RedirectURL: "https://pay.google.com"},
	{Name: "Payeer"},
	{Name: "Visa", RequiresRedirect: true, RedirectURL: "https://www.visa.com/pay-with-visa"},
	{Name: "MasterCard", RequiresRedirect: true, RedirectURL: "https://www.mastercard.com/global/en/personal/get-support/payments.html"},
	{Name: "Cash"},
}

// DefaultPaymentMethod is preselected when a checkout session starts.
const DefaultPaymentMethod = "Visa"

// PaymentMethodByName looks up a supported payment method by its display name.
func PaymentMethodByName(name string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.Name == name {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// ShippingDetails is the buyer information collected by the checkout form.
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// CheckoutSession is a single in-progress or just-confirmed checkout. At most
// one session exists at a time.
type CheckoutSession struct {
	ID            string          `json:"id"`
	Mode          CheckoutMode    `json:"mode"`
	Status        CheckoutStatus  `json:"status"`
	Items         []CartItem      `json:"items"`
	Subtotal      int64           `json:"subtotal"`
	Total         int64           `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Shipping      ShippingDetails `json:"shipping,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ConfirmedAt   time.Time       `json:"confirmed_at,omitempty"`
}

// TotalAmount returns the payable total for the session's items (in cents).
func (s *CheckoutSession) TotalAmount() int64 {
	return s.Total
}

// ItemCount returns the total quantity across the session's items.
func (s *CheckoutSession) ItemCount() int {
	var count int
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

package domain

// Selection captures the shopper's in-progress choices on a product page:
// a quantity and one chosen option per variation axis. It exists before
// anything is added to the cart.
type Selection struct {
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Options   map[string]string `json:"options,omitempty"`
}

// NewSelection returns the default selection for a product: quantity 1 and
// the first option of each variation axis pre-selected.
func NewSelection(p *Product) Selection {
	options := make(map[string]string, len(p.Variations))
	for _, v := range p.Variations {
		if len(v.Options) > 0 {
			options[v.Label] = v.Options[0]
		}
	}
	return Selection{
		ProductID: p.ID,
		Quantity:  1,
		Options:   options,
	}
}

// Complete reports whether every variation axis of the product has a chosen
// option. Products without variations are always complete.
func (s *Selection) Complete(p *Product) bool {
	for _, v := range p.Variations {
		if _, ok := s.Options[v.Label]; !ok {
			return false
		}
	}
	return true
}

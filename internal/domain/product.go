package domain

// Badge is a merchandising label displayed on a product card.
type Badge string

const (
	BadgeBestseller Badge = "Bestseller"
	BadgeNewArrival Badge = "New Arrival"
	BadgeLimited    Badge = "Limited"
	BadgeStaffPick  Badge = "Staff Pick"
)

// Variation is a named axis of product choice (e.g. Storage, Color, Size)
// with its allowed options.
type Variation struct {
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// Product represents a catalog product. Prices are in cents.
type Product struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Price           int64       `json:"price"`
	OriginalPrice   int64       `json:"original_price"`
	DiscountPercent int         `json:"discount_percent"`
	Category        string      `json:"category"`
	ImageURL        string      `json:"image_url"`
	ImageURLs       []string    `json:"image_urls"`
	Badge           Badge       `json:"badge,omitempty"`
	Variations      []Variation `json:"variations,omitempty"`
	Reviews         []Review    `json:"reviews"`
}

// VariationByLabel returns the variation axis with the given label,
// or false if the product has no such axis.
func (p *Product) VariationByLabel(label string) (Variation, bool) {
	for _, v := range p.Variations {
		if v.Label == label {
			return v, true
		}
	}
	return Variation{}, false
}

// HasOption reports whether option is one of the allowed choices for the
// given variation label.
func (p *Product) HasOption(label, option string) bool {
	v, ok := p.VariationByLabel(label)
	if !ok {
		return false
	}
	for _, o := range v.Options {
		if o == option {
			return true
		}
	}
	return false
}

// AverageRating returns the mean review rating, or 0 when there are no reviews.
func (p *Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

// Category is a browsable product grouping.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Slide is a promotional banner shown in a carousel.
type Slide struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

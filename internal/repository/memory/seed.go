package memory

import "github.com/fariyk68-sudo/Khan/internal/domain"

// seedCategories returns the browsable categories.
func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "mobile", Name: "Mobile", ImageURL: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=1200&q=80"},
		{ID: "electronics", Name: "Electronics", ImageURL: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=1200&q=80"},
		{ID: "accessories", Name: "Accessories", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=1200&q=80"},
		{ID: "clothes", Name: "Clothes", ImageURL: "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=1200&q=80"},
	}
}

// seedProducts returns the launch catalog. Prices are in cents.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:              "p1",
			Name:            "Titan Pro Max 5G",
			Description:     `The ultimate flagship experience. Featuring a 6.9" Dynamic AMOLED display, 200MP pro-grade camera, and the fastest chip ever in a smartphone.`,
			Price:           99900,
			OriginalPrice:   119900,
			DiscountPercent: 15,
			Category:        "Mobile",
			ImageURL:        "https://images.unsplash.com/photo-1616348436168-de43ad0db179?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1616348436168-de43ad0db179?w=800&q=80",
				"https://images.unsplash.com/photo-1592890288564-76628a30a657?w=800&q=80",
				"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800&q=80",
				"https://images.unsplash.com/photo-1556656793-062ff9878273?w=800&q=80",
				"https://images.unsplash.com/photo-1533228891704-fb96ac775be3?w=800&q=80",
			},
			Badge: domain.BadgeNewArrival,
			Variations: []domain.Variation{
				{Label: "Storage", Options: []string{"256GB", "512GB", "1TB"}},
				{Label: "Color", Options: []string{"Titanium", "Midnight", "Emerald"}},
			},
			Reviews: []domain.Review{
				{ID: "r1", ReviewerName: "Alex", Rating: 5, Comment: "Incredible camera quality!", Date: "Today"},
			},
		},
		{
			ID:              "p2",
			Name:            "Stealth Audio Wireless",
			Description:     "Immersive sound with hybrid noise cancellation, 40h runtime, and premium memory foam cushions for all-day comfort.",
			Price:           12999,
			OriginalPrice:   19999,
			DiscountPercent: 35,
			Category:        "Electronics",
			ImageURL:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
				"https://images.unsplash.com/photo-1524678606370-a47ad25cb82a?w=800&q=80",
				"https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800&q=80",
				"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=800&q=80",
			},
			Badge:   domain.BadgeBestseller,
			Reviews: []domain.Review{},
		},
		{
			ID:              "p3",
			Name:            "Urban Riviera Blazer",
			Description:     "Bespoke tailoring meets casual comfort. Breathable Italian linen in a contemporary slim cut for the modern professional.",
			Price:           8500,
			OriginalPrice:   12500,
			DiscountPercent: 32,
			Category:        "Clothes",
			ImageURL:        "https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=800&q=80",
				"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&q=80",
				"https://images.unsplash.com/photo-1594932224456-806c95465bf3?w=800&q=80",
				"https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=800&q=80",
				"https://images.unsplash.com/photo-1520975916090-3105956dac52?w=800&q=80",
			},
			Badge: domain.BadgeStaffPick,
			Variations: []domain.Variation{
				{Label: "Size", Options: []string{"S", "M", "L", "XL"}},
			},
			Reviews: []domain.Review{},
		},
		{
			ID:              "p4",
			Name:            `Neo Tab Ultra 14"`,
			Description:     "A powerhouse tablet for creators. 14-inch OLED display with pressure-sensitive stylus included. Perfect for design and gaming.",
			Price:           74900,
			OriginalPrice:   89900,
			DiscountPercent: 16,
			Category:        "Electronics",
			ImageURL:        "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=800&q=80",
				"https://images.unsplash.com/photo-1561154464-82e99adf3276?w=800&q=80",
				"https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&q=80",
				"https://images.unsplash.com/photo-1585790050230-5ad2847699cd?w=800&q=80",
				"https://images.unsplash.com/photo-1510557880182-3d4d3cba35a5?w=800&q=80",
			},
			Reviews: []domain.Review{},
		},
		{
			ID:              "p5",
			Name:            "Vantage Chrono Watch",
			Description:     "Precision engineering meets classic design. Sapphire glass, waterproof up to 100m, and genuine leather strap.",
			Price:           15500,
			OriginalPrice:   22000,
			DiscountPercent: 30,
			Category:        "Accessories",
			ImageURL:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
				"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=800&q=80",
				"https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?w=800&q=80",
				"https://images.unsplash.com/photo-1508057198894-247b23fe5ade?w=800&q=80",
				"https://images.unsplash.com/photo-1542496658-e33a6d0d50f6?w=800&q=80",
			},
			Badge:   domain.BadgeLimited,
			Reviews: []domain.Review{},
		},
		{
			ID:              "p6",
			Name:            "Canvas Trek Backpack",
			Description:     `Durable, waterproof, and stylish. Features a 16" laptop compartment and hidden anti-theft pockets.`,
			Price:           6500,
			OriginalPrice:   9500,
			DiscountPercent: 31,
			Category:        "Accessories",
			ImageURL:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			ImageURLs: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
				"https://images.unsplash.com/photo-1491633582648-279425c14963?w=800&q=80",
				"https://images.unsplash.com/photo-1544648183-ce163d487212?w=800&q=80",
				"https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?w=800&q=80",
				"https://images.unsplash.com/photo-1547949003-9792a18a2601?w=800&q=80",
			},
			Reviews: []domain.Review{},
		},
	}
}

// seedHeroSlides returns the home page carousel.
func seedHeroSlides() []domain.Slide {
	return []domain.Slide{
		{ID: 1, ImageURL: "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=1600&q=80", Title: "Joy Of Shopping", Subtitle: "Find your perfect style with a smile."},
		{ID: 2, ImageURL: "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?w=1600&q=80", Title: "New Collections", Subtitle: "Explore the latest trends in luxury lifestyle."},
		{ID: 3, ImageURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=1600&q=80", Title: "Premium Gadgets", Subtitle: "Experience performance and design redefined."},
		{ID: 4, ImageURL: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=1600&q=80", Title: "Modern Living", Subtitle: "Technology that simplifies your everyday life."},
		{ID: 5, ImageURL: "https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=1600&q=80", Title: "Designer Wear", Subtitle: "Unbeatable style meets quality craftsmanship."},
		{ID: 6, ImageURL: "https://images.unsplash.com/photo-1552581234-26160f608093?w=1600&q=80", Title: "Happy Customers", Subtitle: "Join thousands of satisfied shoppers today."},
	}
}

// seedContactSlides returns the contact page carousel.
func seedContactSlides() []domain.Slide {
	return []domain.Slide{
		{ID: 1, ImageURL: "https://images.unsplash.com/photo-1534536281715-e28d76689b4d?w=1600&q=80", Title: "Always Here To Help", Subtitle: "Our dedicated team is ready for your questions."},
		{ID: 2, ImageURL: "https://images.unsplash.com/photo-1549923746-c502d488b3ea?w=1600&q=80", Title: "Premium Support", Subtitle: "Get assistance from our shopping experts."},
		{ID: 3, ImageURL: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1600&q=80", Title: "Visit Our Office", Subtitle: "Located in the tech hub of Islamabad F17."},
	}
}

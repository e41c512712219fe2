package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneProduct() *Product {
	return &Product{
		ID:   "p1",
		Name: "Titan Pro Max 5G",
		Variations: []Variation{
			{Label: "Storage", Options: []string{"256GB", "512GB", "1TB"}},
			{Label: "Color", Options: []string{"Titanium", "Midnight", "Emerald"}},
		},
	}
}

func TestProduct_VariationByLabel(t *testing.T) {
	p := phoneProduct()

	v, ok := p.VariationByLabel("Storage")
	require.True(t, ok)
	assert.Equal(t, []string{"256GB", "512GB", "1TB"}, v.Options)

	_, ok = p.VariationByLabel("Material")
	assert.False(t, ok)
}

func TestProduct_HasOption(t *testing.T) {
	p := phoneProduct()

	assert.True(t, p.HasOption("Color", "Emerald"))
	assert.False(t, p.HasOption("Color", "Crimson"))
	assert.False(t, p.HasOption("Material", "Steel"))
}

func TestProduct_AverageRating(t *testing.T) {
	p := &Product{}
	assert.Zero(t, p.AverageRating())

	p.Reviews = []Review{{Rating: 5}, {Rating: 4}}
	assert.InDelta(t, 4.5, p.AverageRating(), 0.001)
}

func TestNewReview(t *testing.T) {
	r := NewReview("Alex", 5, "Incredible camera quality!")

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Alex", r.ReviewerName)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, ReviewDateLabel, r.Date)
}

func TestSelection_Complete(t *testing.T) {
	p := phoneProduct()
	s := Selection{ProductID: p.ID, Quantity: 1, Options: map[string]string{}}
	assert.False(t, s.Complete(p))

	s.Options["Storage"] = "512GB"
	assert.False(t, s.Complete(p))

	s.Options["Color"] = "Midnight"
	assert.True(t, s.Complete(p))
}

func TestSelection_Complete_NoVariations(t *testing.T) {
	p := &Product{ID: "p2"}
	s := NewSelection(p)
	assert.True(t, s.Complete(p))
}

func TestNewSelection_FirstOptionPerAxis(t *testing.T) {
	p := phoneProduct()
	s := NewSelection(p)
	assert.Equal(t, 1, s.Quantity)
	assert.Equal(t, "256GB", s.Options["Storage"])
	assert.Equal(t, "Titanium", s.Options["Color"])
	assert.True(t, s.Complete(p))
}

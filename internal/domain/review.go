package domain

import "github.com/google/uuid"

// Review represents a product review submitted by a shopper.
type Review struct {
	ID           string `json:"id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

// ReviewDateLabel is the display date stamped on newly submitted reviews.
// The storefront shows a relative label rather than a timestamp.
const ReviewDateLabel = "Today"

// NewReview creates a review with a generated ID and the standard date label.
func NewReview(reviewerName string, rating int, comment string) Review {
	return Review{
		ID:           uuid.New().String(),
		ReviewerName: reviewerName,
		Rating:       rating,
		Comment:      comment,
		Date:         ReviewDateLabel,
	}
}

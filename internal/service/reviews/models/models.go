package models

import (
	"time"

	"github.com/boinvit/booking-service/internal/domain"
)

// CreateReviewRequest rates a completed booking
type CreateReviewRequest struct {
	BookingID string  `json:"bookingId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

// ReviewResponse is the review wire representation
type ReviewResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	BookingID  string    `json:"bookingId"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse is a business's reviews with the aggregate rating
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	Total         int              `json:"total"`
	AverageRating float64          `json:"averageRating"`
}

// FromDomainReview converts a review into its wire form
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		BookingID:  r.BookingID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

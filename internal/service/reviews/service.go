package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/boinvit/booking-service/internal/domain"
	bookingRepo "github.com/boinvit/booking-service/internal/infra/storage/booking"
	reviewRepo "github.com/boinvit/booking-service/internal/infra/storage/review"
	"github.com/boinvit/booking-service/internal/service/reviews/models"
)

// Service manages client reviews of completed bookings
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the reviews service
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create rates a completed booking, once
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: booking=%s, rating=%d", req.BookingID, req.Rating)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, ErrInvalidRating
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CreateReview: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CreateReview: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - failed to get booking: %v", ErrInternal, err)
	}
	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("CreateReview: booking id=%s has status %s", req.BookingID, booking.Status)
		return nil, ErrBookingNotCompleted
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		ID:         uuid.NewString(),
		BusinessID: booking.BusinessID,
		BookingID:  booking.ID,
		ClientName: booking.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("CreateReview: booking id=%s already reviewed", req.BookingID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("CreateReview: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReview(review), nil
}

// List returns a business's reviews with the mean rating rounded to one decimal
func (s *Service) List(ctx context.Context, businessID string) (*models.ReviewListResponse, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	reviews, err := s.reviewRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("ListReviews: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	avg, _, err := s.reviewRepo.AverageRating(ctx, businessID)
	if err != nil {
		s.logger.Error("ListReviews: failed to get average rating for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - failed to get average rating: %v", ErrInternal, err)
	}

	out := make([]models.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, *models.FromDomainReview(r))
	}

	return &models.ReviewListResponse{
		Reviews:       out,
		Total:         len(out),
		AverageRating: math.Round(avg*10) / 10,
	}, nil
}

package businesses

import (
	"context"
	"errors"
	"fmt"

	"github.com/boinvit/booking-service/internal/domain"
	"github.com/boinvit/booking-service/internal/infra/cache"
	businessRepo "github.com/boinvit/booking-service/internal/infra/storage/business"
	"github.com/boinvit/booking-service/internal/service/businesses/models"
	"github.com/boinvit/booking-service/pkg/booklink"
)

// Service serves business profiles, their catalogue, and their configuration.
// Public reads go through the cache; every write invalidates it.
type Service struct {
	businessRepo BusinessRepository
	cache        BusinessCache
	logger       Logger
}

// NewService creates the businesses service. Cache may be nil when redis is
// not configured; reads then go straight to storage.
func NewService(businessRepo BusinessRepository, cache BusinessCache, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetByID fetches a business through the cache
func (s *Service) GetByID(ctx context.Context, id string) (*models.BusinessResponse, error) {
	business, err := s.getDomain(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBusiness(business), nil
}

// GetDomainByID exposes the cached domain entity to the usecase layer
func (s *Service) GetDomainByID(ctx context.Context, id string) (*domain.Business, error) {
	return s.getDomain(ctx, id)
}

// GetService resolves one service of a business (pass-through for usecases)
func (s *Service) GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error) {
	return s.businessRepo.GetService(ctx, businessID, serviceID)
}

func (s *Service) getDomain(ctx context.Context, id string) (*domain.Business, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	if s.cache != nil {
		if business, err := s.cache.Get(ctx, id); err == nil {
			return business, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("GetByID: cache read failed for business id=%s: %v", id, err)
		}
	}

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByID: business id=%s not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByID: repository error for business id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, business); err != nil {
			s.logger.Warn("GetByID: cache write failed for business id=%s: %v", id, err)
		}
	}

	return business, nil
}

// ListServices returns the business's active catalogue
func (s *Service) ListServices(ctx context.Context, businessID string) (*models.ServiceListResponse, error) {
	if businessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}

	services, err := s.businessRepo.ListServices(ctx, businessID)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServices(services), nil
}

// UpdateHours replaces the weekly opening windows
func (s *Service) UpdateHours(ctx context.Context, businessID string, req *models.UpdateHoursRequest) error {
	s.logger.Info("UpdateHours: business=%s", businessID)

	if businessID == "" {
		return fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}
	if len(req.Hours) == 0 {
		return fmt.Errorf("%w: hours are required", ErrInvalidHours)
	}
	if err := req.Hours.Validate(); err != nil {
		s.logger.Warn("UpdateHours: invalid hours for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	if err := s.businessRepo.UpdateHours(ctx, businessID, req.Hours); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return ErrBusinessNotFound
		}
		s.logger.Error("UpdateHours: repository error for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, businessID)
	return nil
}

// UpdatePaymentConfig replaces the payout configuration
func (s *Service) UpdatePaymentConfig(ctx context.Context, businessID string, req *models.UpdatePaymentConfigRequest) error {
	s.logger.Info("UpdatePaymentConfig: business=%s", businessID)

	if businessID == "" {
		return fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}
	if req.PlatformFeePercent != nil && (*req.PlatformFeePercent < 0 || *req.PlatformFeePercent > 100) {
		return fmt.Errorf("%w: platformFeePercent must be within [0, 100]", ErrInvalidInput)
	}

	if err := s.businessRepo.UpdatePaymentConfig(ctx, businessID, req.ToDomain()); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return ErrBusinessNotFound
		}
		s.logger.Error("UpdatePaymentConfig: repository error for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: UpdatePaymentConfig - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, businessID)
	return nil
}

// ResolveLink classifies a scanned QR payload and, for booking links,
// verifies the business actually exists
func (s *Service) ResolveLink(ctx context.Context, payload string) (*models.ResolveLinkResponse, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	resolution := booklink.Resolve(payload)
	resp := &models.ResolveLinkResponse{
		Kind:       string(resolution.Kind),
		BusinessID: resolution.BusinessID,
		URL:        resolution.URL,
		Text:       resolution.Text,
	}

	if resolution.Kind == booklink.KindBusiness {
		if _, err := s.getDomain(ctx, resolution.BusinessID); err != nil {
			if errors.Is(err, ErrBusinessNotFound) {
				// a booking-shaped link to an unknown business degrades to
				// a plain external URL
				resp.Kind = string(booklink.KindExternalURL)
				resp.BusinessID = ""
				return resp, nil
			}
			return nil, err
		}
	}

	return resp, nil
}

func (s *Service) invalidate(ctx context.Context, businessID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, businessID); err != nil {
		s.logger.Warn("cache invalidation failed for business id=%s: %v", businessID, err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/store"
	"github.com/quickdo/market-api/internal/validators"
	"github.com/quickdo/market-api/models"
)

// MaxPropertiesPerOwner is the number of non-deleted properties an owner may
// have.
const MaxPropertiesPerOwner = 3

type propertyService struct {
	propertyRepository store.PropertyRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewPropertyService(propertyRepository store.PropertyRepository, validator validators.Validator, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *propertyService) ListActive(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	properties, err := s.propertyRepository.FindActive(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("active properties search failed")
		return nil, fmt.Errorf("active properties search failed: %w", err)
	}
	return properties, nil
}

func (s *propertyService) ListByOwner(ctx context.Context, actor models.User, ownerID int64) ([]models.Property, error) {
	if actor.UserID != ownerID && !actor.Admin {
		return nil, ErrPropertiesForbidden
	}

	properties, err := s.propertyRepository.FindByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("owner properties search failed")
		return nil, fmt.Errorf("owner properties search failed: %w", err)
	}
	return properties, nil
}

// Create adds an inactive, unverified property owned by actor.
func (s *propertyService) Create(ctx context.Context, actor models.User, req models.CreatePropertyRequest) (models.Property, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Property{}, newValidationError(err)
	}

	count, err := s.propertyRepository.CountByOwner(ctx, actor.UserID)
	if err != nil {
		log.Err(err).Int64("owner_id", actor.UserID).Msg("properties count failed")
		return models.Property{}, fmt.Errorf("properties count failed: %w", err)
	}
	if count >= MaxPropertiesPerOwner {
		return models.Property{}, ErrPropertyLimitReached
	}

	property, err := s.propertyRepository.CreateProperty(ctx, models.Property{
		Owner:       actor.UserID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Country:     strings.TrimSpace(req.Country),
		City:        strings.TrimSpace(req.City),
		Street:      req.Street,
		Zipcode:     req.Zipcode,
		Type:        strings.TrimSpace(req.Type),
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Kitchen:     req.Kitchen,
		Size:        req.Size,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Reasons:     req.Reasons,
		Amenities:   req.Amenities,
		Images:      req.Images,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", actor.UserID).Msg("property creation failed")
		return models.Property{}, fmt.Errorf("property creation failed: %w", err)
	}

	log.Info().Int64("property_id", property.PropertyID).Int64("owner_id", actor.UserID).Msg("property created")
	return property, nil
}

// Delete soft deletes a property. Owners and administrators only.
func (s *propertyService) Delete(ctx context.Context, actor models.User, propertyID int64) error {
	log := logger.FromContext(ctx)

	property, err := s.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		log.Err(err).Int64("property_id", propertyID).Msg("property search failed")
		return fmt.Errorf("property search failed: %w", err)
	}

	if property.Owner != actor.UserID && !actor.Admin {
		return ErrNotPropertyOwner
	}

	if err = s.propertyRepository.DeleteProperty(ctx, propertyID); err != nil {
		if errors.Is(err, store.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		log.Err(err).Int64("property_id", propertyID).Msg("property delete failed")
		return fmt.Errorf("property delete failed: %w", err)
	}

	return nil
}

// Update applies a partial update to a property of actor.
//
// A request touching active or verified is not applied: the property is
// unlisted until an administrator reviews it again.
func (s *propertyService) Update(ctx context.Context, actor models.User, propertyID int64, req models.UpdatePropertyRequest) error {
	log := logger.FromContext(ctx)

	property, err := s.propertyRepository.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		log.Err(err).Int64("property_id", propertyID).Msg("property search failed")
		return fmt.Errorf("property search failed: %w", err)
	}

	if property.Owner != actor.UserID {
		return ErrNotPropertyUpdater
	}

	if req.TouchesStatus() {
		err = s.propertyRepository.UpdateProperty(ctx, propertyID, models.PropertyUpdate{ResetStatus: true})
		if err != nil && !errors.Is(err, store.ErrPropertyNotFound) {
			log.Err(err).Int64("property_id", propertyID).Msg("property status reset failed")
			return fmt.Errorf("property status reset failed: %w", err)
		}
		log.Warn().Int64("property_id", propertyID).Msg("property unlisted after status change attempt")
		return ErrPropertyStatusLocked
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	update := models.PropertyUpdate{
		Name:        trimmed(req.Name),
		Description: req.Description,
		Country:     trimmed(req.Country),
		City:        trimmed(req.City),
		Street:      req.Street,
		Zipcode:     req.Zipcode,
		Type:        trimmed(req.Type),
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Kitchen:     req.Kitchen,
		Size:        req.Size,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Reasons:     req.Reasons,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
	if update.Empty() {
		return nil
	}

	if err = s.propertyRepository.UpdateProperty(ctx, propertyID, update); err != nil {
		if errors.Is(err, store.ErrPropertyNotFound) {
			return ErrPropertyNotFound
		}
		log.Err(err).Int64("property_id", propertyID).Msg("property update failed")
		return fmt.Errorf("property update failed: %w", err)
	}

	log.Info().Int64("property_id", propertyID).Msg("property updated")
	return nil
}

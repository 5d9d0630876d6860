package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/models"
)

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. The list columns (reasons, amenities, images) are
// stored as JSONB arrays.
type propertyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// "properties" table.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	var reasons, amenities, images []byte

	err := row.Scan(
		&p.PropertyID,
		&p.Owner,
		&p.Name,
		&p.Description,
		&p.Country,
		&p.City,
		&p.Street,
		&p.Zipcode,
		&p.Type,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Kitchen,
		&p.Size,
		&p.Price,
		&p.Latitude,
		&p.Longitude,
		&reasons,
		&amenities,
		&images,
		&p.Active,
		&p.Verified,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}

	if p.Reasons, err = decodeList(reasons); err != nil {
		return models.Property{}, err
	}
	if p.Amenities, err = decodeList(amenities); err != nil {
		return models.Property{}, err
	}
	if p.Images, err = decodeList(images); err != nil {
		return models.Property{}, err
	}

	return p, nil
}

func decodeList(raw []byte) ([]string, error) {
	list := make([]string, 0)
	if len(raw) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decoding list column: %w", err)
	}
	return list, nil
}

func encodeList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

// FindActive returns listed properties matching filter.
func (r *propertyRepository) FindActive(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	return r.find(ctx, "propertyRepository.FindActive", filter, true)
}

// FindByOwner returns every non deleted property of ownerID, listed or not.
func (r *propertyRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Property, error) {
	return r.find(ctx, "propertyRepository.FindByOwner", models.PropertyFilter{Owner: ownerID}, false)
}

func (r *propertyRepository) find(ctx context.Context, fn string, filter models.PropertyFilter, activeOnly bool) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPropertiesQuery(filter, activeOnly)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("owner", filter.Owner).
			Str("classification", r.classify(err)).
			Msg("failed to execute query for finding properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0, 10)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return properties, nil
}

// FindByID returns a non deleted property or [ErrPropertyNotFound].
func (r *propertyRepository) FindByID(ctx context.Context, propertyID int64) (models.Property, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findPropertyByID, propertyID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "propertyRepository.FindByID").
			Int64("property_id", propertyID).
			Str("classification", r.classify(err)).
			Msg("failed to query property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, ErrPropertyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.FindByID").Msg("failed to scan property row")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// CountByOwner returns the number of non deleted properties of ownerID.
func (r *propertyRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countPropertiesByOwner, ownerID).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "propertyRepository.CountByOwner").
			Int64("owner", ownerID).
			Str("classification", r.classify(err)).
			Msg("failed to count properties")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CreateProperty inserts property and returns it with the server assigned
// id, flags and timestamps.
func (r *propertyRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	reasons, err := encodeList(property.Reasons)
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	amenities, err := encodeList(property.Amenities)
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	images, err := encodeList(property.Images)
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.DB.QueryRowContext(ctx, createProperty,
		property.Owner,
		property.Name,
		property.Description,
		property.Country,
		property.City,
		property.Street,
		property.Zipcode,
		property.Type,
		property.Bedrooms,
		property.Bathrooms,
		property.Kitchen,
		property.Size,
		property.Price,
		property.Latitude,
		property.Longitude,
		reasons,
		amenities,
		images,
	).Scan(&property.PropertyID, &property.Active, &property.Verified, &property.Published, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.CreateProperty").
			Int64("owner", property.Owner).
			Str("classification", r.classify(err)).
			Msg("failed to insert property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return property, nil
}

// UpdateProperty writes the non-nil columns of update.
// It returns [ErrPropertyNotFound] when no non deleted property matches.
func (r *propertyRepository) UpdateProperty(ctx context.Context, propertyID int64, update models.PropertyUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePropertyQuery(propertyID, update)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.UpdateProperty").Int64("property_id", propertyID).Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.UpdateProperty").
			Int64("property_id", propertyID).
			Str("classification", r.classify(err)).
			Msg("failed to update property")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(result, ErrPropertyNotFound)
}

// DeleteProperty unlists the property and marks it deleted.
func (r *propertyRepository) DeleteProperty(ctx context.Context, propertyID int64) error {
	result, err := r.DB.ExecContext(ctx, deleteProperty, propertyID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "propertyRepository.DeleteProperty").
			Int64("property_id", propertyID).
			Str("classification", r.classify(err)).
			Msg("failed to delete property")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(result, ErrPropertyNotFound)
}

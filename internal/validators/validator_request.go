package validators

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

const (
	minPasswordLength = 6
	maxNameLength     = 200
)

// RequestValidator implements Validator for the request bodies of the API:
// registration, login, profile updates and property listings.
type RequestValidator struct {
	phoneRegion string
}

// NewRequestValidator constructs a RequestValidator parsing national phone
// numbers with phoneRegion.
func NewRequestValidator(phoneRegion string) Validator {
	return &RequestValidator{phoneRegion: phoneRegion}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Returns ErrUnsupportedType for any other value.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value)
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)
	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, *value)
	case models.CreatePropertyRequest:
		return v.validateCreatePropertyRequest(ctx, value)
	case *models.CreatePropertyRequest:
		return v.validateCreatePropertyRequest(ctx, *value)
	case models.UpdatePropertyRequest:
		return v.validateUpdatePropertyRequest(ctx, value)
	case *models.UpdatePropertyRequest:
		return v.validateUpdatePropertyRequest(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

// trimmed returns a copy of *s without surrounding spaces, nil for nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// Text fields are checked as the services store them: trimmed.
func (v *RequestValidator) validateRegisterRequest(_ context.Context, r models.RegisterRequest) error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = trimmed(r.Email)

	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
		validation.Field(&r.Phone, validation.Required, phoneRule(v.phoneRegion)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, utils.MaxSecretLength)),
		validation.Field(&r.Repassword, validation.Required),
	)
}

func (v *RequestValidator) validateLoginRequest(_ context.Context, r models.LoginRequest) error {
	r.Phone = strings.TrimSpace(r.Phone)

	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required, phoneRule(v.phoneRegion)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, utils.MaxSecretLength)),
	)
}

func (v *RequestValidator) validateUpdateUserRequest(_ context.Context, r models.UpdateUserRequest) error {
	r.FirstName = trimmed(r.FirstName)
	r.LastName = trimmed(r.LastName)
	r.Email = trimmed(r.Email)

	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty, validation.Length(1, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.NewPassword, validation.Length(minPasswordLength, utils.MaxSecretLength)),
	)
}

func (v *RequestValidator) validateCreatePropertyRequest(_ context.Context, r models.CreatePropertyRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLength)),
		validation.Field(&r.Country, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Bedrooms, validation.Min(0)),
		validation.Field(&r.Bathrooms, validation.Min(0)),
		validation.Field(&r.Kitchen, validation.Min(0)),
		validation.Field(&r.Size, validation.Min(0.0)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

func (v *RequestValidator) validateUpdatePropertyRequest(_ context.Context, r models.UpdatePropertyRequest) error {
	r.Name = trimmed(r.Name)
	r.Country = trimmed(r.Country)
	r.City = trimmed(r.City)
	r.Type = trimmed(r.Type)

	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, maxNameLength)),
		validation.Field(&r.Country, validation.NilOrNotEmpty),
		validation.Field(&r.City, validation.NilOrNotEmpty),
		validation.Field(&r.Type, validation.NilOrNotEmpty),
		validation.Field(&r.Bedrooms, validation.Min(0)),
		validation.Field(&r.Bathrooms, validation.Min(0)),
		validation.Field(&r.Kitchen, validation.Min(0)),
		validation.Field(&r.Size, validation.Min(0.0)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

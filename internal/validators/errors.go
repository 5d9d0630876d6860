package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidPhone       = errors.New("must be a valid phone number")
	ErrUnsupportedCountry = errors.New("must be a cameroonian phone number")
)

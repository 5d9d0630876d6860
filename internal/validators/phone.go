package validators

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/nyaruka/phonenumbers"
)

// CameroonCountryCode is the only calling code accepted for accounts.
const CameroonCountryCode = 237

// NormalizePhone parses raw using region for numbers written without an
// international prefix and returns the E.164 form.
func NormalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalidPhone
	}
	if num.GetCountryCode() != CameroonCountryCode {
		return "", ErrUnsupportedCountry
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// phoneRule is an ozzo rule accepting values NormalizePhone can parse.
// Empty values are left to validation.Required.
func phoneRule(region string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := NormalizePhone(s, region); err != nil {
			if errors.Is(err, ErrUnsupportedCountry) {
				return ErrUnsupportedCountry
			}
			return ErrInvalidPhone
		}
		return nil
	})
}

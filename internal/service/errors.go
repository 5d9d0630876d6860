package service

import (
	"errors"

	"github.com/quickdo/market-api/internal/app"
)

// Error categories. Every client-facing service error wraps exactly one of
// them; the handler layer maps categories to HTTP statuses.
var (
	ErrValidation      = errors.New("validation failed")
	ErrAuth            = errors.New("authentication failed")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service failure")
	ErrTooManyAttempts = errors.New("too many attempts")
)

// Error is a client-facing service failure. Its message is safe to return to
// callers and errors.Is matches both the error itself and its category.
type Error struct {
	category error
	message  string
}

func newError(category error, message string) *Error {
	return &Error{category: category, message: message}
}

// newValidationError turns a validator failure into an ErrValidation error
// carrying the validator's message.
func newValidationError(err error) *Error {
	return newError(ErrValidation, err.Error())
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.category
}

// Category returns the category sentinel of e.
func (e *Error) Category() error {
	return e.category
}

var (
	ErrPasswordsMismatch       = newError(ErrValidation, app.MsgPasswordsMismatch)
	ErrActivationCodeRequired  = newError(ErrValidation, app.MsgActivationCodeRequired)
	ErrNewPasswordsMismatch    = newError(ErrValidation, app.MsgNewPasswordsMismatch)
	ErrNewPasswordIncomplete   = newError(ErrValidation, app.MsgNewPasswordIncomplete)
	ErrInvalidOldPassword      = newError(ErrValidation, app.MsgInvalidOldPassword)
	ErrInvalidNotificationType = newError(ErrValidation, app.MsgInvalidNotificationType)

	ErrInvalidCredentials    = newError(ErrAuth, app.MsgInvalidCredentials)
	ErrAccountDisabled       = newError(ErrAuth, app.MsgAccountDisabledLogin)
	ErrSessionDisabled       = newError(ErrAuth, app.MsgAccountDisabled)
	ErrInvalidToken          = newError(ErrAuth, app.MsgInvalidToken)
	ErrInvalidActivationCode = newError(ErrAuth, app.MsgInvalidActivationCode)
	ErrTokenRejected         = newError(ErrAuth, app.MsgGivenTokenInvalid)
	ErrPermissionDenied      = newError(ErrAuth, app.MsgPermissionDenied)
	ErrAdminRequired         = newError(ErrAuth, app.MsgAdminRequired)

	ErrAccountLocked          = newError(ErrForbidden, app.MsgAccountLocked)
	ErrNotOwner               = newError(ErrForbidden, app.MsgNotAccountOwner)
	ErrNotificationsForbidden = newError(ErrForbidden, app.MsgNotificationsForbidden)
	ErrPropertiesForbidden    = newError(ErrForbidden, app.MsgPropertiesForbidden)
	ErrNotPropertyOwner       = newError(ErrForbidden, app.MsgNotPropertyOwner)
	ErrNotPropertyUpdater     = newError(ErrForbidden, app.MsgNotPropertyUpdater)
	ErrPropertyStatusLocked   = newError(ErrForbidden, app.MsgPropertyStatusLocked)
	ErrPropertyLimitReached   = newError(ErrForbidden, app.MsgPropertyLimitReached)

	ErrPhoneAlreadyExists = newError(ErrConflict, app.MsgPhoneAlreadyExists)
	ErrEmailAlreadyExists = newError(ErrConflict, app.MsgEmailAlreadyExists)

	ErrUserNotFound     = newError(ErrNotFound, app.MsgUserNotFound)
	ErrPropertyNotFound = newError(ErrNotFound, app.MsgPropertyNotFound)

	ErrVerificationFailed = newError(ErrExternalService, app.MsgVerificationFailed)

	ErrLoginAttemptsExceeded = newError(ErrTooManyAttempts, app.MsgTooManyLoginAttempts)
)

// ErrVersionIsNotSpecified is returned by NewAppInfoService when no version is
// configured.
var ErrVersionIsNotSpecified = errors.New(app.MsgVersionIsNotSpecified)

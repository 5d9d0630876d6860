package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/quickdo/market-api/internal/adapter"
	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/store"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/internal/validators"
	"github.com/quickdo/market-api/models"
)

// ActivationCodeLength is the number of digits of a generated activation code.
const ActivationCodeLength = 6

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, phone activation and
// the token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	// propertyRepository provides the active properties returned next to
	// every issued token.
	propertyRepository store.PropertyRepository

	// loginAttempts counts login attempts per phone number.
	loginAttempts store.LoginAttempts

	// otp delivers and checks activation codes.
	otp adapter.OTPProvider

	// mailer sends the welcome email. Nil when no mail API is configured.
	mailer adapter.Mailer

	notifications NotificationService
	validator     validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	phoneRegion      string
	appName          string
	loginMaxAttempts int

	// sideEffectTimeout bounds each best-effort call made after registration.
	sideEffectTimeout time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storages
// and adapters and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	storages *store.Storages,
	adapters *adapter.Adapters,
	notifications NotificationService,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	sideEffectTimeout := cfg.Adapter.RequestTimeout
	if sideEffectTimeout <= 0 {
		sideEffectTimeout = config.DefaultAdapterTimeout
	}

	return &authService{
		userRepository:     storages.UserRepository,
		propertyRepository: storages.PropertyRepository,
		loginAttempts:      storages.LoginAttempts,
		otp:                adapters.OTP,
		mailer:             adapters.Mailer,
		notifications:      notifications,
		validator:          validators.NewRequestValidator(cfg.App.PhoneRegion),
		tokenSignKey:       cfg.App.TokenSecret,
		tokenIssuer:        cfg.App.TokenIssuer,
		tokenDuration:      cfg.App.TokenDuration,
		phoneRegion:        cfg.App.PhoneRegion,
		appName:            cfg.App.Name,
		loginMaxAttempts:   cfg.App.LoginMaxAttempts,
		sideEffectTimeout:  sideEffectTimeout,
		now:                time.Now,
		logger:             logger,
	}
}

// Register creates an inactive account and starts phone verification.
//
// The phone lookup only short-circuits the common duplicate case; the unique
// index on users.phone decides concurrent registrations.
//
// Returns the created user or:
//   - an ErrValidation error for invalid fields or ErrPasswordsMismatch.
//   - ErrPhoneAlreadyExists or ErrEmailAlreadyExists.
//   - a wrapped storage error for anything else.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid registration request")
		return models.RegisterResponse{}, newValidationError(err)
	}
	if req.Password != req.Repassword {
		return models.RegisterResponse{}, ErrPasswordsMismatch
	}

	phone, err := validators.NormalizePhone(req.Phone, a.phoneRegion)
	if err != nil {
		return models.RegisterResponse{}, newValidationError(err)
	}

	_, err = a.userRepository.FindUserByPhone(ctx, phone)
	switch {
	case err == nil:
		log.Info().Str("phone", phone).Msg("registration with an existing phone number")
		return models.RegisterResponse{}, ErrPhoneAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("phone", phone).Msg("user search by phone failed")
		return models.RegisterResponse{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	code, err := utils.GenerateNumericCode(ActivationCodeLength)
	if err != nil {
		return models.RegisterResponse{}, err
	}
	codeHash, err := utils.HashSecret(code)
	if err != nil {
		return models.RegisterResponse{}, err
	}
	passwordHash, err := utils.HashSecret(req.Password)
	if err != nil {
		return models.RegisterResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, newUser(req, phone, passwordHash, codeHash))
	if err != nil {
		log.Err(err).Str("phone", phone).Msg("user creation ended with error")
		return models.RegisterResponse{}, mapUserStoreError(err, "user creation ended with error")
	}

	a.afterRegistration(ctx, user, code)

	return models.RegisterResponse{
		Message: app.MsgAccountCreated,
		User:    user,
		ID:      user.UserID,
	}, nil
}

func newUser(req models.RegisterRequest, phone, passwordHash, codeHash string) models.User {
	user := models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        phone,
		Country:      strings.TrimSpace(req.Country),
		City:         strings.TrimSpace(req.City),
		Address:      strings.TrimSpace(req.Address),
		PasswordHash: passwordHash,
		CodeHash:     codeHash,
		Visible:      true,
	}
	if user.Country == "" {
		user.Country = models.DefaultCountry
	}
	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			user.Email = &email
		}
	}
	return user
}

// afterRegistration runs the best-effort side effects of a registration
// concurrently and waits for them, so a hung provider costs at most one
// sideEffectTimeout. Failures are logged and never returned.
func (a *authService) afterRegistration(ctx context.Context, user models.User, code string) {
	var wg sync.WaitGroup
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.sideEffect(ctx, name, fn)
		}()
	}

	run("send activation code", func(ctx context.Context) error {
		return a.otp.SendCode(ctx, user.Phone, code)
	})

	if user.Email != nil && a.mailer != nil {
		run("send welcome email", func(ctx context.Context) error {
			return a.mailer.SendMail(ctx, *user.Email, fmt.Sprintf(app.MsgWelcomeEmailSubject, a.appName), a.welcomeText(user))
		})
	}

	run("notify welcome", func(ctx context.Context) error {
		_, err := a.notifications.Notify(ctx, user.UserID, fmt.Sprintf(app.MsgWelcomeNotification, a.appName), a.welcomeText(user), models.NotificationList)
		return err
	})

	wg.Wait()
}

func (a *authService) welcomeText(user models.User) string {
	return fmt.Sprintf("Hello %s, your %s account has been created. Activate it with the code sent to %s.",
		user.FirstName, a.appName, user.Phone)
}

func (a *authService) sideEffect(ctx context.Context, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.sideEffectTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("side_effect", name).Msg("side effect failed")
	}
}

// Login authenticates a user by phone and password.
//
// Returns a fresh token, the profile claims and the user's active properties
// or:
//   - an ErrValidation error for a malformed request.
//   - ErrLoginAttemptsExceeded once the per-phone attempt budget is spent.
//   - ErrInvalidCredentials for an unknown phone or a wrong password.
//   - ErrAccountDisabled for an inactive or deleted account, whatever the
//     password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, newValidationError(err)
	}

	phone, err := validators.NormalizePhone(req.Phone, a.phoneRegion)
	if err != nil {
		return models.AuthResult{}, newValidationError(err)
	}

	if err = a.checkLoginAttempts(ctx, phone); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("phone", phone).Msg("user search by phone failed")
		return models.AuthResult{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	if !user.Usable() {
		log.Info().Int64("user_id", user.UserID).Msg("login attempt on a disabled account")
		return models.AuthResult{}, ErrAccountDisabled
	}

	if !utils.CompareSecret(user.PasswordHash, req.Password) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if err = a.loginAttempts.Reset(ctx, phone); err != nil {
		log.Warn().Err(err).Msg("failed to reset login attempts")
	}

	return a.authResult(ctx, user, "")
}

// checkLoginAttempts fails open when the counter is unavailable.
func (a *authService) checkLoginAttempts(ctx context.Context, phone string) error {
	if a.loginMaxAttempts <= 0 {
		return nil
	}

	count, err := a.loginAttempts.Hit(ctx, phone)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("login attempts counter unavailable")
		return nil
	}
	if count > int64(a.loginMaxAttempts) {
		logger.FromContext(ctx).Info().Int64("attempts", count).Msg("login attempts exceeded")
		return ErrLoginAttemptsExceeded
	}

	return nil
}

// Check re-issues a token for the user owning tokenString.
//
// Returns ErrInvalidToken when verification fails or the user no longer
// exists, and ErrSessionDisabled when the account is not usable anymore.
func (a *authService) Check(ctx context.Context, tokenString string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.VerifyToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.AuthResult{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResult{}, ErrInvalidToken
		}
		log.Err(err).Int64("user_id", claims.UserID).Msg("user search by id failed")
		return models.AuthResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !user.Usable() {
		return models.AuthResult{}, ErrSessionDisabled
	}

	return a.authResult(ctx, user, "")
}

// Activate verifies code with the OTP provider and activates the account.
//
// The provider is the source of truth: the stored code hash is only read by
// the local verifier. An already active account has no pending code, so any
// submission is rejected as an invalid code.
func (a *authService) Activate(ctx context.Context, userID int64, code string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return models.AuthResult{}, ErrActivationCodeRequired
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.AuthResult{}, mapUserStoreError(err, "user search by id failed")
	}
	if !user.Visible {
		return models.AuthResult{}, ErrUserNotFound
	}
	if user.Active {
		return models.AuthResult{}, ErrInvalidActivationCode
	}

	status, err := a.otp.CheckCode(ctx, user, code)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("activation code check failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if !status.Approved() {
		log.Info().Int64("user_id", userID).Str("status", string(status)).Msg("activation code rejected")
		return models.AuthResult{}, ErrInvalidActivationCode
	}

	if err = a.userRepository.SetActive(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user activation failed")
		return models.AuthResult{}, mapUserStoreError(err, "user activation failed")
	}
	user.Active = true
	user.CodeHash = ""

	return a.authResult(ctx, user, app.MsgAccountActivated)
}

// ToggleAdmin flips the admin flag of userID and returns the new value.
// Callers are expected to be gated by the admin middleware.
func (a *authService) ToggleAdmin(ctx context.Context, userID int64) (bool, error) {
	isAdmin, err := a.userRepository.ToggleAdmin(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("admin toggle failed")
		return false, mapUserStoreError(err, "admin toggle failed")
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Bool("admin", isAdmin).Msg("admin flag toggled")
	return isAdmin, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	claims, err := utils.VerifyToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenRejected
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrPermissionDenied
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", claims.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.Usable() {
		return models.User{}, ErrPermissionDenied
	}

	return user, nil
}

func (a *authService) authResult(ctx context.Context, user models.User, message string) (models.AuthResult, error) {
	token, err := a.issueToken(user)
	if err != nil {
		return models.AuthResult{}, err
	}

	properties, err := a.propertyRepository.FindActive(ctx, models.PropertyFilter{Owner: user.UserID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("active properties search failed")
		return models.AuthResult{}, fmt.Errorf("active properties search failed: %w", err)
	}

	return models.AuthResult{
		Message:    message,
		Token:      token,
		User:       models.ClaimsFromUser(user),
		Properties: properties,
	}, nil
}

func (a *authService) issueToken(user models.User) (string, error) {
	token, err := utils.IssueToken(models.ClaimsFromUser(user), a.tokenSignKey, a.tokenIssuer, a.now(), a.tokenDuration)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// mapUserStoreError translates user repository sentinels into service errors
// and wraps anything else with msg.
func mapUserStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return ErrPhoneAlreadyExists
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

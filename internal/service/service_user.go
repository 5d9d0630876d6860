package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/store"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/internal/validators"
	"github.com/quickdo/market-api/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	phoneRegion    string

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, phoneRegion string, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		phoneRegion:    phoneRegion,
		logger:         logger,
	}
}

// Create adds an active account on behalf of an administrator. No
// activation code is issued and nobody is notified.
func (s *userService) Create(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, newValidationError(err)
	}
	if req.Password != req.Repassword {
		return models.User{}, ErrPasswordsMismatch
	}

	phone, err := validators.NormalizePhone(req.Phone, s.phoneRegion)
	if err != nil {
		return models.User{}, newValidationError(err)
	}

	passwordHash, err := utils.HashSecret(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user := newUser(req, phone, passwordHash, "")
	user.Active = true

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("phone", phone).Msg("user creation ended with error")
		return models.User{}, mapUserStoreError(err, "user creation ended with error")
	}

	log.Info().Int64("user_id", created.UserID).Msg("user created by administrator")
	return created, nil
}

// Update applies a partial profile update requested by the account owner.
//
// A request touching admin, active, visible or code locks the account and
// fails with ErrAccountLocked. A password change needs the old password and
// two identical new passwords.
func (s *userService) Update(ctx context.Context, actor models.User, userID int64, req models.UpdateUserRequest) error {
	log := logger.FromContext(ctx)

	if actor.UserID != userID {
		return ErrNotOwner
	}

	if req.TouchesSecuredFields() {
		log.Warn().Int64("user_id", userID).Msg("secured fields update attempt, locking account")
		if err := s.userRepository.LockUser(ctx, userID); err != nil {
			log.Err(err).Int64("user_id", userID).Msg("account lock failed")
			return mapUserStoreError(err, "account lock failed")
		}
		return ErrAccountLocked
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}

	update := models.UserUpdate{
		FirstName: trimmed(req.FirstName),
		LastName:  trimmed(req.LastName),
		Email:     trimmed(req.Email),
		Country:   trimmed(req.Country),
		City:      trimmed(req.City),
		Address:   trimmed(req.Address),
		Photo:     trimmed(req.Photo),
	}
	// a blank email removes it, the column is unique when not null
	if update.Email != nil && *update.Email == "" {
		update.Email = nil
		update.ClearEmail = true
	}

	passwordHash, err := s.newPasswordHash(actor, req)
	if err != nil {
		return err
	}
	update.PasswordHash = passwordHash

	if update.Empty() {
		return nil
	}

	if err = s.userRepository.UpdateUser(ctx, userID, update); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		return mapUserStoreError(err, "user update failed")
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// newPasswordHash returns nil when req does not change the password.
func (s *userService) newPasswordHash(actor models.User, req models.UpdateUserRequest) (*string, error) {
	if req.OldPassword == "" && req.NewPassword == "" && req.RenewPassword == "" {
		return nil, nil
	}
	if !req.ChangesPassword() {
		return nil, ErrNewPasswordIncomplete
	}
	if req.NewPassword != req.RenewPassword {
		return nil, ErrNewPasswordsMismatch
	}
	if !utils.CompareSecret(actor.PasswordHash, req.OldPassword) {
		return nil, ErrInvalidOldPassword
	}

	hash, err := utils.HashSecret(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing new password: %w", err)
	}
	return &hash, nil
}

// SoftDelete hides and deactivates an account. Owners and administrators
// only.
func (s *userService) SoftDelete(ctx context.Context, actor models.User, userID int64) error {
	if actor.UserID != userID && !actor.Admin {
		return ErrNotOwner
	}

	if err := s.userRepository.SoftDeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user soft delete failed")
		return mapUserStoreError(err, "user soft delete failed")
	}

	return nil
}

// Destroy removes an account with its notifications and properties.
func (s *userService) Destroy(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user delete failed")
		return mapUserStoreError(err, "user delete failed")
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the flag updates of the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var email sql.NullString

	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&email,
		&user.Country,
		&user.City,
		&user.Address,
		&user.Photo,
		&user.PasswordHash,
		&user.CodeHash,
		&user.Admin,
		&user.Active,
		&user.Visible,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	if email.Valid {
		user.Email = &email.String
	}

	return user, nil
}

// uniqueViolation maps a unique_violation on the users table to the
// matching sentinel.
func uniqueViolation(err error) error {
	if strings.Contains(constraintName(err), "email") {
		return ErrEmailAlreadyExists
	}
	return ErrPhoneAlreadyExists
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPhoneAlreadyExists] or
//     [ErrEmailAlreadyExists] depending on the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Email,
		user.Country,
		user.City,
		user.Address,
		user.PasswordHash,
		user.CodeHash,
		user.Admin,
		user.Active,
		user.Visible,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("classification", r.db.classify(err)).
			Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolation(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByID returns the user identified by userID or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByPhone returns the user owning phone or [ErrNoUserWasFound].
func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByPhone", findUserByPhone, phone)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("classification", r.db.classify(err)).
			Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUser applies the non-nil columns of update to the user.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to update user")
		if isUniqueViolation(err) {
			return uniqueViolation(err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(result, ErrNoUserWasFound)
}

// SetActive marks the user active and clears the stored activation code.
func (r *userRepository) SetActive(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.SetActive", setUserActive, userID)
}

// ToggleAdmin flips the admin flag in a single statement and returns its new
// value.
func (r *userRepository) ToggleAdmin(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var admin bool
	err := r.db.QueryRowContext(ctx, toggleUserAdmin, userID).Scan(&admin)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ToggleAdmin").
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to toggle admin flag")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return admin, nil
}

// LockUser deactivates the account.
func (r *userRepository) LockUser(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.LockUser", lockUser, userID)
}

// SoftDeleteUser hides and deactivates the account.
func (r *userRepository) SoftDeleteUser(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.SoftDeleteUser", softDeleteUser, userID)
}

// DeleteUser removes the account; notifications and properties cascade.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.DeleteUser", deleteUser, userID)
}

func (r *userRepository) exec(ctx context.Context, fn, query string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Str("classification", r.db.classify(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(result, ErrNoUserWasFound)
}

// expectOneRow returns notFound when result affected no row.
func expectOneRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

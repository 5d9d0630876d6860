package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/quickdo/market-api/models"
)

const userColumns = `user_id, first_name, last_name, phone, email, country, city, address, photo,
	password_hash, code_hash, admin, active, visible, created_at, updated_at`

const propertyColumns = `property_id, owner_id, name, description, country, city, street, zipcode, type,
	bedrooms, bathrooms, kitchen, size, price, latitude, longitude, reasons, amenities, images,
	active, verified, published, created_at, updated_at`

const notificationColumns = `notification_id, recipient_id, title, body, type, seen, created_at, updated_at`

const (
	createUser = `INSERT INTO users (first_name, last_name, phone, email, country, city, address,
		password_hash, code_hash, admin, active, visible)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	findUserByPhone = `SELECT ` + userColumns + `
	FROM users
	WHERE phone = $1;`

	setUserActive = `UPDATE users
	SET active = TRUE, code_hash = '', updated_at = NOW()
	WHERE user_id = $1;`

	toggleUserAdmin = `UPDATE users
	SET admin = NOT admin, updated_at = NOW()
	WHERE user_id = $1
	RETURNING admin;`

	lockUser = `UPDATE users
	SET active = FALSE, updated_at = NOW()
	WHERE user_id = $1;`

	softDeleteUser = `UPDATE users
	SET active = FALSE, visible = FALSE, updated_at = NOW()
	WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
	WHERE user_id = $1;`
)

const (
	createNotification = `INSERT INTO notifications (recipient_id, title, body, type)
	SELECT $1::BIGINT, $2::TEXT, $3::TEXT, $4::TEXT
	WHERE NOT EXISTS (
		SELECT 1 FROM notifications
		WHERE recipient_id = $1 AND title = $2 AND body = $3 AND type = $4 AND seen = FALSE
	)
	RETURNING notification_id;`
)

const (
	findPropertyByID = `SELECT ` + propertyColumns + `
	FROM properties
	WHERE property_id = $1 AND deleted = FALSE;`

	countPropertiesByOwner = `SELECT COUNT(*)
	FROM properties
	WHERE owner_id = $1 AND deleted = FALSE;`

	createProperty = `INSERT INTO properties (owner_id, name, description, country, city, street, zipcode, type,
		bedrooms, bathrooms, kitchen, size, price, latitude, longitude, reasons, amenities, images)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	RETURNING property_id, active, verified, published, created_at, updated_at;`

	deleteProperty = `UPDATE properties
	SET active = FALSE, deleted = TRUE, updated_at = NOW()
	WHERE property_id = $1 AND deleted = FALSE;`
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildUpdateUserQuery builds a partial UPDATE touching only the non-nil
// columns of update.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	set := make(map[string]any, 8)
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	switch {
	case update.ClearEmail:
		set["email"] = nil
	case update.Email != nil:
		set["email"] = *update.Email
	}
	if update.Country != nil {
		set["country"] = *update.Country
	}
	if update.City != nil {
		set["city"] = *update.City
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Photo != nil {
		set["photo"] = *update.Photo
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}

	query, args, err := psql().
		Update("users").
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePropertyQuery builds a partial UPDATE of a non deleted
// property. List columns are written as JSONB arrays.
func buildUpdatePropertyQuery(propertyID int64, update models.PropertyUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	set := make(map[string]any, 18)
	for column, value := range map[string]*string{
		"name":        update.Name,
		"description": update.Description,
		"country":     update.Country,
		"city":        update.City,
		"street":      update.Street,
		"zipcode":     update.Zipcode,
		"type":        update.Type,
	} {
		if value != nil {
			set[column] = *value
		}
	}
	for column, value := range map[string]*int{
		"bedrooms":  update.Bedrooms,
		"bathrooms": update.Bathrooms,
		"kitchen":   update.Kitchen,
	} {
		if value != nil {
			set[column] = *value
		}
	}
	for column, value := range map[string]*float64{
		"size":      update.Size,
		"price":     update.Price,
		"latitude":  update.Latitude,
		"longitude": update.Longitude,
	} {
		if value != nil {
			set[column] = *value
		}
	}
	for column, value := range map[string]*[]string{
		"reasons":   update.Reasons,
		"amenities": update.Amenities,
		"images":    update.Images,
	} {
		if value == nil {
			continue
		}
		encoded, err := encodeList(*value)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		set[column] = encoded
	}
	if update.ResetStatus {
		set["active"] = false
		set["verified"] = false
	}

	// SetMap sorts the columns, so the statement text is stable.
	query, args, err := psql().
		Update("properties").
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"property_id": propertyID, "deleted": false}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindPropertiesQuery selects non deleted properties matching filter.
// activeOnly restricts the result to listed properties.
func buildFindPropertiesQuery(filter models.PropertyFilter, activeOnly bool) (string, []any, error) {
	where := sq.Eq{"deleted": false}
	if activeOnly {
		where["active"] = true
	}
	if filter.Owner > 0 {
		where["owner_id"] = filter.Owner
	}
	if filter.City != "" {
		where["city"] = filter.City
	}
	if filter.Country != "" {
		where["country"] = filter.Country
	}
	if filter.Type != "" {
		where["type"] = filter.Type
	}

	query, args, err := psql().
		Select(propertyColumns).
		From("properties").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListNotificationsQuery selects the unseen notifications of a user,
// optionally narrowed to one type.
func buildListNotificationsQuery(query models.NotificationQuery) (string, []any, error) {
	where := sq.Eq{"recipient_id": query.UserID, "seen": false}
	if query.Type != "" {
		where["type"] = string(query.Type)
	}

	sql, args, err := psql().
		Select(notificationColumns).
		From("notifications").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

func buildMarkSeenQuery(ids []int64) (string, []any, error) {
	query, args, err := psql().
		Update("notifications").
		Set("seen", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"notification_id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package store

import (
	"strings"
	"testing"

	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name      string
		update    models.UserUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "single column",
			update:    models.UserUpdate{FirstName: strPtr("Paul")},
			wantQuery: "UPDATE users SET first_name = $1, updated_at = NOW() WHERE user_id = $2",
			wantArgs:  []any{"Paul", int64(10)},
		},
		{
			name: "columns are sorted",
			update: models.UserUpdate{
				PasswordHash: strPtr("hash"),
				City:         strPtr("Douala"),
				Address:      strPtr("Akwa"),
			},
			wantQuery: "UPDATE users SET address = $1, city = $2, password_hash = $3, updated_at = NOW() WHERE user_id = $4",
			wantArgs:  []any{"Akwa", "Douala", "hash", int64(10)},
		},
		{
			name:      "empty string is still a value",
			update:    models.UserUpdate{Photo: strPtr("")},
			wantQuery: "UPDATE users SET photo = $1, updated_at = NOW() WHERE user_id = $2",
			wantArgs:  []any{"", int64(10)},
		},
		{
			name:      "cleared email is NULL",
			update:    models.UserUpdate{ClearEmail: true, Email: strPtr("ignored@example.com")},
			wantQuery: "UPDATE users SET email = $1, updated_at = NOW() WHERE user_id = $2",
			wantArgs:  []any{nil, int64(10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(10, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateUserQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery(10, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func Test_buildUpdatePropertyQuery(t *testing.T) {
	bedrooms := 4
	size := 210.5
	images := []string{"a.jpg", "b.jpg"}

	tests := []struct {
		name      string
		update    models.PropertyUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "columns are sorted",
			update:    models.PropertyUpdate{Size: &size, City: strPtr("Kribi"), Bedrooms: &bedrooms},
			wantQuery: "UPDATE properties SET bedrooms = $1, city = $2, size = $3, updated_at = NOW() WHERE deleted = $4 AND property_id = $5",
			wantArgs:  []any{4, "Kribi", 210.5, false, int64(12)},
		},
		{
			name:      "lists are JSON arrays",
			update:    models.PropertyUpdate{Images: &images},
			wantQuery: "UPDATE properties SET images = $1, updated_at = NOW() WHERE deleted = $2 AND property_id = $3",
			wantArgs:  []any{[]byte(`["a.jpg","b.jpg"]`), false, int64(12)},
		},
		{
			name:      "reset status",
			update:    models.PropertyUpdate{ResetStatus: true},
			wantQuery: "UPDATE properties SET active = $1, verified = $2, updated_at = NOW() WHERE deleted = $3 AND property_id = $4",
			wantArgs:  []any{false, false, false, int64(12)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdatePropertyQuery(12, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdatePropertyQuery_Empty(t *testing.T) {
	_, _, err := buildUpdatePropertyQuery(12, models.PropertyUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func Test_buildFindPropertiesQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.PropertyFilter
		activeOnly bool
		wantWhere  string
		wantArgs   []any
	}{
		{
			name:       "active only",
			activeOnly: true,
			wantWhere:  "WHERE active = $1 AND deleted = $2",
			wantArgs:   []any{true, false},
		},
		{
			name:       "all filters",
			filter:     models.PropertyFilter{Owner: 3, City: "Douala", Country: "cameroon", Type: "villa"},
			activeOnly: true,
			wantWhere:  "WHERE active = $1 AND city = $2 AND country = $3 AND deleted = $4 AND owner_id = $5 AND type = $6",
			wantArgs:   []any{true, "Douala", "cameroon", false, int64(3), "villa"},
		},
		{
			name:      "owner listing includes inactive",
			filter:    models.PropertyFilter{Owner: 3},
			wantWhere: "WHERE deleted = $1 AND owner_id = $2",
			wantArgs:  []any{false, int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindPropertiesQuery(tt.filter, tt.activeOnly)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT property_id"))
			assert.Contains(t, query, "FROM properties "+tt.wantWhere+" ORDER BY created_at DESC")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildListNotificationsQuery(t *testing.T) {
	query, args, err := buildListNotificationsQuery(models.NotificationQuery{UserID: 4})
	require.NoError(t, err)
	assert.Contains(t, query, "FROM notifications WHERE recipient_id = $1 AND seen = $2 ORDER BY created_at DESC")
	assert.Equal(t, []any{int64(4), false}, args)

	query, args, err = buildListNotificationsQuery(models.NotificationQuery{UserID: 4, Type: models.NotificationPush})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE recipient_id = $1 AND seen = $2 AND type = $3")
	assert.Equal(t, []any{int64(4), false, "push"}, args)
}

func Test_buildMarkSeenQuery(t *testing.T) {
	query, args, err := buildMarkSeenQuery([]int64{1, 2, 3})
	require.NoError(t, err)

	// squirrel generates IN ($2,$3,$4) for a slice.
	assert.Equal(t, "UPDATE notifications SET seen = $1, updated_at = NOW() WHERE notification_id IN ($2,$3,$4)", query)
	assert.Equal(t, []any{true, int64(1), int64(2), int64(3)}, args)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/quickdo/market-api/internal/service"
	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner = models.User{UserID: 7, Active: true, Visible: true}
	admin = models.User{UserID: 1, Active: true, Visible: true, Admin: true}
)

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser_Created(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, admin)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "Paul", req.FirstName)
			assert.Equal(t, "690000002", req.Phone)
			return models.User{UserID: 21, FirstName: "Paul", Active: true}, nil
		})

	rr := doRequest(router, http.MethodPost, "/users",
		`{"first_name":"Paul","phone":"690000002","password":"secret1","repassword":"secret1"}`, headers)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully.", resp["message"])
	assert.Equal(t, float64(21), resp["id"])
}

func TestCreateUser_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "passwords mismatch", err: service.ErrPasswordsMismatch, wantStatus: http.StatusBadRequest},
		{name: "phone taken", err: service.ErrPhoneAlreadyExists, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			headers := authorizedAs(m, admin)
			m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rr := doRequest(router, http.MethodPost, "/users", `{"first_name":"Paul"}`, headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.err.Error(), responseMessage(t, rr))
		})
	}
}

func TestCreateUser_NonAdminRejected(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)

	rr := doRequest(router, http.MethodPost, "/users", `{"first_name":"Paul"}`, headers)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Only administrators can do this.", responseMessage(t, rr))
}

// ─────────────────────────────────────────────
// POST /users/{user}/admin
// ─────────────────────────────────────────────

func TestToggleAdmin_OK(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, admin)
	m.auth.EXPECT().ToggleAdmin(gomock.Any(), int64(7)).Return(true, nil)

	rr := doRequest(router, http.MethodPost, "/users/7/admin", "", headers)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User status updated successfully.","isAdmin":true}`, rr.Body.String())
}

func TestToggleAdmin_UnknownUserIsBadRequest(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, admin)
	m.auth.EXPECT().ToggleAdmin(gomock.Any(), int64(99)).Return(false, service.ErrUserNotFound)

	rr := doRequest(router, http.MethodPost, "/users/99/admin", "", headers)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Unable to find user.", responseMessage(t, rr))
}

func TestToggleAdmin_NonAdminRejected(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)

	rr := doRequest(router, http.MethodPost, "/users/7/admin", "", headers)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Only administrators can do this.", responseMessage(t, rr))
}

// ─────────────────────────────────────────────
// PUT /users/{user}
// ─────────────────────────────────────────────

func TestUpdateUser_OK(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)

	m.users.EXPECT().Update(gomock.Any(), owner, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.User, _ int64, req models.UpdateUserRequest) error {
			require.NotNil(t, req.City)
			assert.Equal(t, "Yaounde", *req.City)
			assert.False(t, req.TouchesSecuredFields())
			return nil
		},
	)

	rr := doRequest(router, http.MethodPut, "/users/7", `{"city":"Yaounde"}`, headers)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User account has been updated successfully.", responseMessage(t, rr))
}

func TestUpdateUser_SecuredFieldLocksAccount(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)

	m.users.EXPECT().Update(gomock.Any(), owner, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.User, _ int64, req models.UpdateUserRequest) error {
			assert.True(t, req.TouchesSecuredFields())
			return service.ErrAccountLocked
		},
	)

	rr := doRequest(router, http.MethodPut, "/users/7", `{"admin":true}`, headers)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Update attempt cancelled. Your account has been locked.", responseMessage(t, rr))
}

func TestUpdateUser_PasswordRules(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)
	m.users.EXPECT().Update(gomock.Any(), owner, int64(7), gomock.Any()).Return(service.ErrInvalidOldPassword)

	rr := doRequest(router, http.MethodPut, "/users/7", `{"old_password":"x","new_password":"newsecret","renew_password":"newsecret"}`, headers)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, service.ErrInvalidOldPassword.Error(), responseMessage(t, rr))
}

// ─────────────────────────────────────────────
// DELETE /users/{user} and /users/{user}/destroy
// ─────────────────────────────────────────────

func TestSoftDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "not owner", err: service.ErrNotOwner, wantStatus: http.StatusForbidden},
		{name: "unknown user", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			headers := authorizedAs(m, owner)
			m.users.EXPECT().SoftDelete(gomock.Any(), owner, int64(7)).Return(tt.err)

			rr := doRequest(router, http.MethodDelete, "/users/7", "", headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.Equal(t, "User account has been deleted successfully.", responseMessage(t, rr))
			}
		})
	}
}

func TestDestroyUser(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantMessage: "User deleted successfully."},
		{name: "unknown user", err: service.ErrUserNotFound, wantStatus: http.StatusBadRequest, wantMessage: "Unable to find user."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			headers := authorizedAs(m, admin)
			m.users.EXPECT().Destroy(gomock.Any(), int64(7)).Return(tt.err)

			rr := doRequest(router, http.MethodDelete, "/users/7/destroy", "", headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, responseMessage(t, rr))
		})
	}
}

func TestDestroyUser_NonAdminRejected(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)

	rr := doRequest(router, http.MethodDelete, "/users/7/destroy", "", headers)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// GET /users/{user}/notifications
// ─────────────────────────────────────────────

func TestUserNotifications_Query(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.NotificationQuery
	}{
		{name: "plain", query: "", want: models.NotificationQuery{UserID: 7}},
		{name: "typed", query: "?type=push", want: models.NotificationQuery{UserID: 7, Type: models.NotificationPush}},
		{name: "mark=1", query: "?mark=1", want: models.NotificationQuery{UserID: 7, MarkSeen: true}},
		{name: "mark=true", query: "?mark=true&type=list", want: models.NotificationQuery{UserID: 7, Type: models.NotificationList, MarkSeen: true}},
		{name: "mark=0", query: "?mark=0", want: models.NotificationQuery{UserID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			headers := authorizedAs(m, owner)
			m.notifications.EXPECT().List(gomock.Any(), owner, tt.want).
				Return([]models.Notification{{NotificationID: 3, To: 7, Title: "Welcome"}}, nil)

			rr := doRequest(router, http.MethodGet, "/users/7/notifications"+tt.query, "", headers)

			require.Equal(t, http.StatusOK, rr.Code)
			var got []models.Notification
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.Len(t, got, 1)
			assert.Equal(t, int64(3), got[0].NotificationID)
		})
	}
}

func TestUserNotifications_EmptyIsArray(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)
	m.notifications.EXPECT().List(gomock.Any(), owner, gomock.Any()).Return(nil, nil)

	rr := doRequest(router, http.MethodGet, "/users/7/notifications", "", headers)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUserNotifications_OtherUser(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)
	m.notifications.EXPECT().List(gomock.Any(), owner, gomock.Any()).Return(nil, service.ErrNotificationsForbidden)

	rr := doRequest(router, http.MethodGet, "/users/8/notifications", "", headers)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "You can only view your notifications.", responseMessage(t, rr))
}

// ─────────────────────────────────────────────
// GET /users/{user}/properties
// ─────────────────────────────────────────────

func TestUserProperties(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)
	m.properties.EXPECT().ListByOwner(gomock.Any(), owner, int64(7)).
		Return([]models.Property{{PropertyID: 12, Owner: 7}}, nil)

	rr := doRequest(router, http.MethodGet, "/users/7/properties", "", headers)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Property
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(12), got[0].PropertyID)
}

func TestUserProperties_Forbidden(t *testing.T) {
	router, m := newTestRouter(t)
	headers := authorizedAs(m, owner)
	m.properties.EXPECT().ListByOwner(gomock.Any(), owner, int64(8)).Return(nil, service.ErrPropertiesForbidden)

	rr := doRequest(router, http.MethodGet, "/users/8/properties", "", headers)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

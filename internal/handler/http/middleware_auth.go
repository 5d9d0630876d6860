package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/service"
	"github.com/quickdo/market-api/internal/utils"
)

const appKeyHeader = "application-key"

// withAppKey rejects requests whose application-key header does not match
// the configured key.
func (h *Handler) withAppKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(appKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.appKey)) != 1 {
			logger.FromRequest(r).Info().Msg("request with an invalid application key")
			utils.WriteMessage(w, app.MsgInvalidApplicationKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// auth is an HTTP middleware that enforces token authentication.
//
// The bearer token of the "Authorization" header is verified and its user is
// loaded from the store on every request, so a deactivated, deleted or
// demoted account loses access immediately. On success the user is stored in
// the request context (see [utils.UserFromContext]).
//
// Requests are rejected with 401 when the header is missing or malformed,
// when the token does not verify and when the user is not usable anymore.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("missing or malformed authorization header")
			writeError(w, r, service.ErrTokenRejected)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = logger.FromContext(ctx).WithUserID(user.UserID).WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// admin lets only administrators through. It must run after auth.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.UserFromContext(r.Context())
		if !ok || !user.Admin {
			writeError(w, r, service.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

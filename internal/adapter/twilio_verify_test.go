package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestTwilio(t *testing.T, handler http.HandlerFunc) OTPProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	otp, err := NewTwilioVerify(config.Twilio{
		BaseURL:    srv.URL,
		AccountSID: "AC123",
		AuthToken:  "secret",
		ServiceSID: "VA456",
	}, time.Second, logger.Nop())
	require.NoError(t, err)

	return otp
}

// ── NewTwilioVerify ──────────────────────────────────────────────────────────

func TestNewTwilioVerify_NotConfigured(t *testing.T) {
	otp, err := NewTwilioVerify(config.Twilio{AccountSID: "AC123"}, time.Second, logger.Nop())

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, otp)
}

func TestNewTwilioVerify_DefaultBaseURL(t *testing.T) {
	otp, err := NewTwilioVerify(config.Twilio{
		AccountSID: "AC123",
		AuthToken:  "secret",
		ServiceSID: "VA456",
	}, time.Second, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, config.DefaultTwilioBaseURL, otp.(*twilioVerify).client.BaseURL)
}

// ── SendCode ─────────────────────────────────────────────────────────────────

func TestTwilioVerify_SendCode(t *testing.T) {
	otp := newTestTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/Services/VA456/Verifications", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+237600000001", r.PostForm.Get("To"))
		assert.Equal(t, "sms", r.PostForm.Get("Channel"))
		assert.Empty(t, r.PostForm.Get("Code"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"VE1","status":"pending"}`))
	})

	err := otp.SendCode(context.Background(), "+237600000001", "123456")

	assert.NoError(t, err)
}

func TestTwilioVerify_SendCode_ProviderError(t *testing.T) {
	otp := newTestTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003}`))
	})

	err := otp.SendCode(context.Background(), "+237600000001", "")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTwilioVerify_SendCode_Timeout(t *testing.T) {
	otp := newTestTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := otp.SendCode(ctx, "+237600000001", "")

	assert.Error(t, err)
}

// ── CheckCode ────────────────────────────────────────────────────────────────

func TestTwilioVerify_CheckCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       models.VerificationStatus
		wantErr    error
	}{
		{name: "approved", statusCode: http.StatusOK, body: `{"status":"approved"}`, want: models.VerificationApproved},
		{name: "pending", statusCode: http.StatusOK, body: `{"status":"pending"}`, want: models.VerificationPending},
		{name: "canceled", statusCode: http.StatusOK, body: `{"status":"canceled"}`, want: models.VerificationCanceled},
		{name: "expired verification", statusCode: http.StatusNotFound, body: `{"code":20404}`, want: models.VerificationPending},
		{name: "unknown status", statusCode: http.StatusOK, body: `{"status":"weird"}`, wantErr: ErrUnexpectedStatus},
		{name: "provider down", statusCode: http.StatusInternalServerError, body: `oops`, wantErr: ErrInternalServerError},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, body: `slow down`, wantErr: ErrTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otp := newTestTwilio(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/Services/VA456/VerificationCheck", r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "+237600000001", r.PostForm.Get("To"))
				assert.Equal(t, "654321", r.PostForm.Get("Code"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			status, err := otp.CheckCode(context.Background(), models.User{Phone: "+237600000001"}, "654321")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

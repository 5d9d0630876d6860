package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSGateway_SendSMS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bulksms", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "quickdo", q.Get("username"))
		assert.Equal(t, "pwd", q.Get("password"))
		assert.Equal(t, "QUICKDO", q.Get("sender"))
		assert.Equal(t, "Your Quickdo activation code is 123456", q.Get("message"))
		assert.Equal(t, "237600000001", q.Get("destination"))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sms, err := NewSMSGateway(config.SMS{
		BaseURL:  srv.URL,
		User:     "quickdo",
		Password: "pwd",
		Sender:   "QUICKDO",
	}, time.Second, logger.Nop())
	require.NoError(t, err)

	err = sms.SendSMS(context.Background(), "+237600000001", "Your Quickdo activation code is 123456")

	assert.NoError(t, err)
}

func TestSMSGateway_SendSMS_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	sms, err := NewSMSGateway(config.SMS{BaseURL: srv.URL}, time.Second, logger.Nop())
	require.NoError(t, err)

	err = sms.SendSMS(context.Background(), "600000001", "hello")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestNewSMSGateway_NotConfigured(t *testing.T) {
	sms, err := NewSMSGateway(config.SMS{}, time.Second, logger.Nop())

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, sms)
}

func TestGatewayDestination(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+237600000001", "237600000001"},
		{"237600000001", "237600000001"},
		{"600000001", "237600000001"},
		{" +237600000001 ", "237600000001"},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, gatewayDestination(tt.phone))
		})
	}
}

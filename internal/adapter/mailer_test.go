package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_SendMail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		var msg mailMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, mailMessage{
			From:    "noreply@quickdo.test",
			To:      "jean@example.com",
			Subject: "Hello",
			Text:    "Body",
		}, msg)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	mailer, err := NewMailer(config.Mail{
		BaseURL: srv.URL,
		APIKey:  "key-1",
		From:    "noreply@quickdo.test",
	}, time.Second, logger.Nop())
	require.NoError(t, err)

	err = mailer.SendMail(context.Background(), "jean@example.com", "Hello", "Body")

	assert.NoError(t, err)
}

func TestMailer_SendMail_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid recipient"))
	}))
	defer srv.Close()

	mailer, err := NewMailer(config.Mail{BaseURL: srv.URL}, time.Second, logger.Nop())
	require.NoError(t, err)

	err = mailer.SendMail(context.Background(), "nobody", "Hello", "Body")

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestNewMailer_InvalidAddress(t *testing.T) {
	mailer, err := NewMailer(config.Mail{BaseURL: "http://"}, time.Second, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, mailer)
}

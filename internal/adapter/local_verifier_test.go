package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSMS struct {
	destination string
	message     string
	err         error
}

func (r *recordingSMS) SendSMS(_ context.Context, destination, message string) error {
	r.destination = destination
	r.message = message
	return r.err
}

func TestLocalVerifier_SendCode(t *testing.T) {
	sms := &recordingSMS{}
	otp := NewLocalVerifier(sms)

	err := otp.SendCode(context.Background(), "+237600000001", "123456")

	require.NoError(t, err)
	assert.Equal(t, "+237600000001", sms.destination)
	assert.Equal(t, "Your Quickdo activation code is 123456", sms.message)
}

func TestLocalVerifier_SendCode_SMSError(t *testing.T) {
	boom := errors.New("gateway down")
	otp := NewLocalVerifier(&recordingSMS{err: boom})

	err := otp.SendCode(context.Background(), "+237600000001", "123456")

	assert.ErrorIs(t, err, boom)
}

func TestLocalVerifier_SendCode_NoSMS(t *testing.T) {
	otp := NewLocalVerifier(nil)

	err := otp.SendCode(context.Background(), "+237600000001", "123456")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLocalVerifier_CheckCode(t *testing.T) {
	hash, err := utils.HashSecret("123456")
	require.NoError(t, err)

	otp := NewLocalVerifier(nil)

	tests := []struct {
		name string
		user models.User
		code string
		want models.VerificationStatus
	}{
		{"matching code", models.User{CodeHash: hash}, "123456", models.VerificationApproved},
		{"wrong code", models.User{CodeHash: hash}, "654321", models.VerificationPending},
		{"cleared hash", models.User{}, "123456", models.VerificationPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := otp.CheckCode(context.Background(), tt.user, tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

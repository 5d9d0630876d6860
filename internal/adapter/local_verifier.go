package adapter

import (
	"context"
	"fmt"

	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

// CodeMessageFormat is the SMS sent by the local verifier.
const CodeMessageFormat = "Your Quickdo activation code is %s"

type localVerifier struct {
	sms SMSSender
}

// NewLocalVerifier returns an OTPProvider that delivers the locally
// generated code by SMS and checks submissions against the stored code hash.
// sms may be nil, in which case SendCode fails with ErrNotConfigured.
func NewLocalVerifier(sms SMSSender) OTPProvider {
	return &localVerifier{sms: sms}
}

func (v *localVerifier) SendCode(ctx context.Context, phone, code string) error {
	if v.sms == nil {
		return fmt.Errorf("local verifier: %w", ErrNotConfigured)
	}
	return v.sms.SendSMS(ctx, phone, fmt.Sprintf(CodeMessageFormat, code))
}

func (v *localVerifier) CheckCode(_ context.Context, user models.User, code string) (models.VerificationStatus, error) {
	if utils.CompareSecret(user.CodeHash, code) {
		return models.VerificationApproved, nil
	}
	return models.VerificationPending, nil
}

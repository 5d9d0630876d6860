package models

// VerificationStatus is the outcome of an activation code check.
type VerificationStatus string

const (
	VerificationApproved VerificationStatus = "approved"
	VerificationPending  VerificationStatus = "pending"
	VerificationCanceled VerificationStatus = "canceled"
)

// Approved reports whether the submitted code was accepted.
func (s VerificationStatus) Approved() bool {
	return s == VerificationApproved
}

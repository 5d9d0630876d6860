package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MaxSecretLength is the longest secret bcrypt accepts.
const MaxSecretLength = 72

// HashSecret returns the salted bcrypt hash of secret.
// It is used for both account passwords and activation codes.
func HashSecret(secret string) (string, error) {
	if len(secret) > MaxSecretLength {
		return "", bcrypt.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(hash), nil
}

// CompareSecret reports whether secret matches hash.
// An empty hash never matches.
func CompareSecret(hash, secret string) bool {
	if hash == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// GenerateNumericCode returns a random code of length decimal digits drawn
// from crypto/rand.
func GenerateNumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	ten := big.NewInt(10)
	var code strings.Builder
	code.Grow(length)

	for i := 0; i < length; i++ {
		digit, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("error generating code: %w", err)
		}
		code.WriteByte(byte('0' + digit.Int64()))
	}

	return code.String(), nil
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quickdo/market-api/models"
)

// ErrInvalidToken is the only error returned by [VerifyToken]. Malformed
// tokens, signature mismatches, foreign algorithms and expired tokens are not
// told apart.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs claims with HMAC-SHA256.
//
// The registered claims are overwritten: iat is set to issuedAt, exp to
// issuedAt+tokenDuration and iss to issuer when issuer is non-empty.
// An empty signKey or a non-positive tokenDuration is rejected.
//
// Example usage:
//
//	token, err := utils.IssueToken(models.ClaimsFromUser(user), "secret", "quickdo", time.Now(), 48*time.Hour)
func IssueToken(claims models.Claims, signKey, issuer string, issuedAt time.Time, tokenDuration time.Duration) (string, error) {
	if signKey == "" || tokenDuration <= 0 {
		return "", errors.New("invalid params for generating JWT Token")
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken checks the signature, algorithm, expiry and (when issuer is
// non-empty) the issuer of tokenString and returns its claims.
//
// Any failure yields [ErrInvalidToken].
func VerifyToken(tokenString, signKey, issuer string) (models.Claims, error) {
	if tokenString == "" || signKey == "" {
		return models.Claims{}, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := new(models.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil || !token.Valid || claims.UserID <= 0 {
		return models.Claims{}, ErrInvalidToken
	}

	return *claims, nil
}

// ParseBearerToken returns the token carried by an Authorization header
// value. Both "Bearer <token>" and a bare token are accepted.
func ParseBearerToken(authorizationHeader string) (string, error) {
	value := strings.TrimSpace(authorizationHeader)
	if value == "" {
		return "", ErrInvalidToken
	}

	if scheme, token, found := strings.Cut(value, " "); found {
		if !strings.EqualFold(scheme, "Bearer") {
			return "", ErrInvalidToken
		}
		value = strings.TrimSpace(token)
	}

	if value == "" || strings.Contains(value, " ") || strings.EqualFold(value, "Bearer") {
		return "", ErrInvalidToken
	}

	return value, nil
}

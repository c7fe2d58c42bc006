// Package auth issues and verifies the mock password-reset tokens.
// Tokens are real HS256 JWTs so the surrounding plumbing behaves like a
// production flow, but nothing downstream ever changes a password.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/common"
)

// Claims carries the standard claims plus the email the reset was
// requested for.
type Claims struct {
	jwt.RegisteredClaims
	Email string
}

// GenerateResetToken signs a reset token for email, valid for validityDuration.
func GenerateResetToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// EmailFromResetToken parses and verifies a reset token and returns the
// email it was issued for. Expired or tampered tokens yield
// common.ErrInvalidToken.
func EmailFromResetToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}

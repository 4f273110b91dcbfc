package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"funlet/internal/domain"
)

type serviceTokenIssuer struct {
	secret []byte
}

// NewServiceTokenIssuer returns a TokenIssuer that signs HS256 JWTs with the
// given secret. Tokens authenticate internal calls between backend services.
func NewServiceTokenIssuer(secret string) domain.TokenIssuer {
	return &serviceTokenIssuer{secret: []byte(secret)}
}

func (i *serviceTokenIssuer) Issue(subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

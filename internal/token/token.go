package token

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
	"github.com/goaltrack-dev/goaltrack/internal/logger"
)

// Service issues and resolves bearer credentials. The credential is a
// signed, expiring statement of identity; it carries no authorization
// data. Whether the identity still maps to an account, and what that
// account may do, is decided per request against the store.
type Service interface {
	NewToken(email domain.Email) (string, error)
	DecodeEmail(tokenStr string) (domain.Email, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(email domain.Email) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

// DecodeEmail resolves a credential back to the identity it encodes.
// Every failure mode (garbage input, wrong signature, expired token,
// missing subject) comes back as a 401-status error so callers can
// treat all invalid credentials uniformly as "no identity".
func (j *Jwt) DecodeEmail(tokenStr string) (domain.Email, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	email, err := token.Claims.GetSubject()
	if err != nil || email == "" {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return email, nil
}

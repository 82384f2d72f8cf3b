package token

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
)

func TestRoundTrip(t *testing.T) {
	j := New("test_secret", time.Hour)

	emails := []string{
		"alice@example.com",
		"UPPER@Example.COM",
		"weird+tag@sub.domain.io",
	}
	for _, email := range emails {
		tokenStr, err := j.NewToken(email)
		require.NoError(t, err)
		require.NotEmpty(t, tokenStr)

		decoded, err := j.DecodeEmail(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, email, decoded)
	}
}

func TestDecodeFailures(t *testing.T) {
	j := New("test_secret", time.Hour)
	valid, err := j.NewToken("alice@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"tampered payload", valid[:len(valid)-5] + "AAAAA"},
		{"wrong secret", mustToken(t, New("other_secret", time.Hour), "alice@example.com")},
		{"truncated", strings.Split(valid, ".")[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.DecodeEmail(tt.token)
			require.Error(t, err)
			assert.True(t, internal_errors.HasStatus(err, http.StatusUnauthorized), "decode failures must resolve to 401")
		})
	}
}

func TestExpiredToken(t *testing.T) {
	j := New("test_secret", -time.Minute)
	tokenStr, err := j.NewToken("alice@example.com")
	require.NoError(t, err)

	_, err = j.DecodeEmail(tokenStr)
	require.Error(t, err)
	assert.True(t, internal_errors.HasStatus(err, http.StatusUnauthorized))
}

func mustToken(t *testing.T, j *Jwt, email string) string {
	t.Helper()
	tokenStr, err := j.NewToken(email)
	require.NoError(t, err)
	return tokenStr
}

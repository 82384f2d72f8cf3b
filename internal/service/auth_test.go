package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
)

// --- Mocks ---

type MockUserStorage struct {
	SaveUserFunc    func(user domain.User) (domain.User, error)
	UserByEmailFunc func(email domain.Email) (domain.User, error)
}

func (m *MockUserStorage) SaveUser(user domain.User) (domain.User, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(user)
	}
	user.Id = 1
	user.Role = domain.RoleMember
	return user, nil
}

func (m *MockUserStorage) UserByEmail(email domain.Email) (domain.User, error) {
	if m.UserByEmailFunc != nil {
		return m.UserByEmailFunc(email)
	}
	// Default success case for login tests
	passHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	return domain.User{Id: 1, Email: email, PassHash: string(passHash), Role: domain.RoleMember}, nil
}

type MockTokens struct {
	NewTokenFunc    func(email domain.Email) (string, error)
	DecodeEmailFunc func(tokenStr string) (domain.Email, error)
}

func (m *MockTokens) NewToken(email domain.Email) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(email)
	}
	return "test_token", nil
}

func (m *MockTokens) DecodeEmail(tokenStr string) (domain.Email, error) {
	if m.DecodeEmailFunc != nil {
		return m.DecodeEmailFunc(tokenStr)
	}
	return "test@example.com", nil
}

// --- Tests ---

func TestSignup(t *testing.T) {
	storage := &MockUserStorage{}
	tokens := &MockTokens{}
	service := NewAuth(storage, tokens)

	creds := domain.Credentials{Email: "test@example.com", Password: "password"}

	t.Run("successful signup", func(t *testing.T) {
		saveCalled := false
		storage.SaveUserFunc = func(user domain.User) (domain.User, error) {
			saveCalled = true
			assert.Equal(t, creds.Email, user.Email)
			// password must be stored hashed, never plaintext
			assert.NotEqual(t, creds.Password, user.PassHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)))
			user.Id = 1
			user.Role = domain.RoleOwner
			return user, nil
		}
		defer func() { storage.SaveUserFunc = nil }()

		token, user, err := service.Signup(creds)

		require.NoError(t, err)
		assert.True(t, saveCalled, "SaveUser should be called")
		assert.Equal(t, "test_token", token)
		assert.Equal(t, domain.RoleOwner, user.Role)
	})

	t.Run("duplicate email propagates conflict", func(t *testing.T) {
		storage.SaveUserFunc = func(user domain.User) (domain.User, error) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: http.StatusBadRequest}
		}
		defer func() { storage.SaveUserFunc = nil }()

		_, _, err := service.Signup(creds)

		require.Error(t, err)
		assert.True(t, internal_errors.HasStatus(err, http.StatusBadRequest))
	})

	t.Run("token failure propagates", func(t *testing.T) {
		mockErr := errors.New("mock token error")
		tokens.NewTokenFunc = func(email domain.Email) (string, error) { return "", mockErr }
		defer func() { tokens.NewTokenFunc = nil }()

		_, _, err := service.Signup(creds)

		require.Error(t, err)
		assert.True(t, errors.Is(err, mockErr))
	})
}

func TestLogin(t *testing.T) {
	storage := &MockUserStorage{}
	tokens := &MockTokens{}
	service := NewAuth(storage, tokens)

	creds := domain.Credentials{Email: "test@example.com", Password: "password"}

	t.Run("successful login", func(t *testing.T) {
		token, user, err := service.Login(creds)

		require.NoError(t, err)
		assert.Equal(t, "test_token", token)
		assert.Equal(t, creds.Email, user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(domain.Credentials{Email: creds.Email, Password: "wrong"})

		require.Error(t, err)
		assert.True(t, internal_errors.HasStatus(err, http.StatusUnauthorized))
		assert.Equal(t, "Invalid email or password", err.Error())
	})

	t.Run("unknown email reported identically to wrong password", func(t *testing.T) {
		storage.UserByEmailFunc = func(email domain.Email) (domain.User, error) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		defer func() { storage.UserByEmailFunc = nil }()

		_, _, err := service.Login(creds)

		require.Error(t, err)
		assert.True(t, internal_errors.HasStatus(err, http.StatusUnauthorized))
		assert.Equal(t, "Invalid email or password", err.Error())
	})

	t.Run("storage error propagates", func(t *testing.T) {
		mockErr := errors.New("mock storage error")
		storage.UserByEmailFunc = func(email domain.Email) (domain.User, error) {
			return domain.User{}, mockErr
		}
		defer func() { storage.UserByEmailFunc = nil }()

		_, _, err := service.Login(creds)

		require.Error(t, err)
		assert.True(t, errors.Is(err, mockErr))
	})
}

func TestMe(t *testing.T) {
	storage := &MockUserStorage{}
	service := NewAuth(storage, &MockTokens{})

	t.Run("existing account", func(t *testing.T) {
		user, err := service.Me("test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("stale identity yields not found", func(t *testing.T) {
		storage.UserByEmailFunc = func(email domain.Email) (domain.User, error) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		defer func() { storage.UserByEmailFunc = nil }()

		_, err := service.Me("gone@example.com")
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

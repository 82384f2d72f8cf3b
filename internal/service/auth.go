package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	"github.com/goaltrack-dev/goaltrack/internal/errors"
	"github.com/goaltrack-dev/goaltrack/internal/logger"
	"github.com/goaltrack-dev/goaltrack/internal/token"
)

type AuthService interface {
	Signup(creds domain.Credentials) (string, domain.User, error)
	Login(creds domain.Credentials) (string, domain.User, error)
	Me(email domain.Email) (domain.User, error)
}

type UserStorage interface {
	// SaveUser persists a new account and returns it with the
	// store-assigned id, role and creation time. The first account
	// saved into an empty store becomes the owner; the decision must
	// be atomic with the insert. Duplicate emails fail with a
	// 400-status error.
	SaveUser(user domain.User) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
}

type Auth struct {
	storage UserStorage
	tokens  token.Service
}

func NewAuth(storage UserStorage, tokens token.Service) *Auth {
	return &Auth{storage: storage, tokens: tokens}
}

// Signup creates an account and logs it in. Emails are matched
// case-sensitively and exactly as given.
func (a *Auth) Signup(creds domain.Credentials) (string, domain.User, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{Email: creds.Email, PassHash: string(passHash)})
	if err != nil {
		return "", domain.User{}, err
	}

	tokenStr, err := a.tokens.NewToken(user.Email)
	if err != nil {
		return "", domain.User{}, err
	}
	return tokenStr, user, nil
}

// Login checks if a user with the given credentials exists and returns
// an access token. Unknown email and wrong password are reported
// identically, to not leak which emails are registered.
func (a *Auth) Login(creds domain.Credentials) (string, domain.User, error) {
	user, err := a.storage.UserByEmail(creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
		}
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "error", err)
		return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	}

	tokenStr, err := a.tokens.NewToken(user.Email)
	if err != nil {
		logger.Log.Error("failed to create token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return tokenStr, user, nil
}

// Me resolves a credential-derived identity back to its account. A
// well-formed token whose account no longer exists yields 404.
func (a *Auth) Me(email domain.Email) (domain.User, error) {
	return a.storage.UserByEmail(email)
}

package service

import (
	"net/http"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	"github.com/goaltrack-dev/goaltrack/internal/errors"
	"github.com/goaltrack-dev/goaltrack/internal/logger"
)

type AdminService interface {
	Users(caller domain.Email) ([]domain.User, error)
	DeleteUser(caller domain.Email, target domain.UserId) error
	Promote(caller domain.Email, targetEmail domain.Email) (domain.User, error)
}

type AdminStorage interface {
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	// Users returns all accounts, newest first.
	Users() ([]domain.User, error)
	// DeleteUser removes the account and every goal it owns as one
	// atomic operation.
	DeleteUser(id domain.UserId) error
	// PromoteUser flips a member to admin as a single conditional
	// update and returns the resulting account. Promoting an account
	// that is already admin (or the owner) is a no-op success.
	PromoteUser(email domain.Email) (domain.User, error)
}

// Admin enforces the account-management policy. Authorization is always
// evaluated against the caller's account as currently stored, not
// against anything carried in the credential: a token that outlived its
// account carries no privileges.
type Admin struct {
	storage AdminStorage
}

func NewAdmin(storage AdminStorage) *Admin {
	return &Admin{storage: storage}
}

// requireAdmin resolves the caller's account and checks the admin gate.
// A caller whose account is gone is indistinguishable from a non-admin.
func (a *Admin) requireAdmin(caller domain.Email) (domain.User, error) {
	user, err := a.storage.UserByEmail(caller)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, &errors.ErrorWithStatusCode{Message: "Forbidden: Admin access required", StatusCode: http.StatusForbidden}
		}
		return domain.User{}, err
	}
	if !user.Role.Admin() {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Forbidden: Admin access required", StatusCode: http.StatusForbidden}
	}
	return user, nil
}

func (a *Admin) Users(caller domain.Email) ([]domain.User, error) {
	if _, err := a.requireAdmin(caller); err != nil {
		return nil, err
	}
	return a.storage.Users()
}

// DeleteUser removes a non-admin account along with its goals. Admin
// and owner accounts are never deletable through this path, no matter
// who asks.
func (a *Admin) DeleteUser(caller domain.Email, target domain.UserId) error {
	admin, err := a.requireAdmin(caller)
	if err != nil {
		return err
	}

	targetUser, err := a.storage.UserById(target)
	if err != nil {
		return err
	}
	if targetUser.Role.Admin() {
		return &errors.ErrorWithStatusCode{Message: "Cannot delete admin accounts", StatusCode: http.StatusForbidden}
	}

	if err := a.storage.DeleteUser(targetUser.Id); err != nil {
		return err
	}
	logger.Log.Info("user deleted", "target", targetUser.Email, "deleted_by", admin.Email)
	return nil
}

// Promote grants admin rights to the target account. Only the owner,
// the first account ever registered, may promote.
func (a *Admin) Promote(caller domain.Email, targetEmail domain.Email) (domain.User, error) {
	user, err := a.storage.UserByEmail(caller)
	if err != nil && !errors.IsNotFound(err) {
		return domain.User{}, err
	}
	if err != nil || user.Role != domain.RoleOwner {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "Forbidden: Only the first user can promote admins", StatusCode: http.StatusForbidden}
	}

	promoted, err := a.storage.PromoteUser(targetEmail)
	if err != nil {
		return domain.User{}, err
	}
	logger.Log.Info("user promoted", "target", promoted.Email, "promoted_by", user.Email)
	return promoted, nil
}

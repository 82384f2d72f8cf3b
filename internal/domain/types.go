package domain

type (
	Email  = string
	UserId = int64
	GoalId = string
)

// Role is assigned at account creation and only ever widens:
// the first account registered in an empty store becomes the owner,
// everyone after that starts as a member, and promotion turns a
// member into an admin. There is no demotion.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Admin reports whether the role passes the admin gate.
// The owner always does.
func (r Role) Admin() bool {
	return r == RoleOwner || r == RoleAdmin
}

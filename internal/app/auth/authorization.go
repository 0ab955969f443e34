package auth

import "github.com/yigit/collegeportal/internal/app/models"

// LoginPath is where unauthorized requests are sent
const LoginPath = "/"

// Identity is what the session knows about the logged-in user
type Identity struct {
	UserID   int64
	UserType models.RoleType
	Username string
}

// Authenticated reports whether a user is logged in
func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Authorize allows the request only when the identity is logged in and its
// role equals required. Roles are disjoint: an admin is not a student.
func Authorize(identity Identity, required models.RoleType) Decision {
	if identity.Authenticated() && identity.UserType == required {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: LoginPath}
}

// LandingPath is the dashboard a logged-in user starts on
func LandingPath(role models.RoleType) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/student"
}

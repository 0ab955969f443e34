package models

// User defines the login account based on the 'users' table
type User struct {
	ID       int64    `json:"id" db:"id"`
	Username string   `json:"username" db:"username"`
	Password string   `json:"-" db:"password"` // bcrypt hash
	UserType RoleType `json:"userType" db:"user_type"`
}

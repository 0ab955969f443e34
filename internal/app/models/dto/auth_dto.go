package dto

// LoginForm is the login page post
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

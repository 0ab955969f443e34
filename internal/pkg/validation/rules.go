package validation

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// UsernamePattern allows letters, digits and underscores only
	UsernamePattern = `^[a-zA-Z0-9_]+$`

	// EmailPattern is a deliberately loose shape check: something@something.something
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// PasswordMinLength applies when a password is being set
	PasswordMinLength = 6

	// PasswordMaxBytes is the longest input bcrypt hashes
	PasswordMaxBytes = 72
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Username *regexp.Regexp
	Email    *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
	Email:    regexp.MustCompile(EmailPattern),
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom rules registered:
//
//	username     letters, digits and underscores
//	loose_email  the EmailPattern shape
//	bcrypt_max   at most PasswordMaxBytes bytes
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return CompiledPatterns.Username.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
			return CompiledPatterns.Email.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("bcrypt_max", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= PasswordMaxBytes
		})
		validate = v
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

// Failures indexes the failed rules of a validation error by struct field name.
// Errors that are not field failures yield an empty map.
func Failures(err error) map[string]string {
	failures := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failures[fe.StructField()] = fe.Tag()
		}
	}
	return failures
}

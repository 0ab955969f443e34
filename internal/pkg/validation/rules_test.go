package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,loose_email"`
	Password string `validate:"omitempty,min=6,bcrypt_max"`
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"letters", "alice", true},
		{"underscore and digits", "bob_2024", true},
		{"space", "bob smith", false},
		{"hyphen", "bob-smith", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CompiledPatterns.Username.MatchString(tt.username))
		})
	}

	assert.True(t, CompiledPatterns.Email.MatchString("a@b.co"))
	assert.False(t, CompiledPatterns.Email.MatchString("a@b"))
	assert.False(t, CompiledPatterns.Email.MatchString("a b@c.d"))
}

func TestStructReportsFailuresByField(t *testing.T) {
	err := Struct(sampleForm{Username: "bad name", Email: "nope", Password: "123"})
	failures := Failures(err)

	assert.Equal(t, "username", failures["Username"])
	assert.Equal(t, "loose_email", failures["Email"])
	assert.Equal(t, "min", failures["Password"])
}

func TestStructAcceptsOmittedPassword(t *testing.T) {
	err := Struct(sampleForm{Username: "alice", Email: "alice@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, Failures(err))
}

func TestPasswordLengthCountsBytes(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"at the limit", strings.Repeat("a", 72), true},
		{"one byte over", strings.Repeat("a", 73), false},
		// 25 characters but 75 bytes
		{"multibyte", strings.Repeat("€", 25), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(sampleForm{Username: "alice", Email: "alice@example.com", Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "bcrypt_max", Failures(err)["Password"])
		})
	}
}

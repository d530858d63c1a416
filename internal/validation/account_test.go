package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "test_user123", false},
		{"Valid With Period", "test.user", false},
		{"Too Short", "tu", true},
		{"Too Long", strings.Repeat("a", 26), true},
		{"Exactly Max Length", strings.Repeat("a", 25), false},
		{"Leading Period", ".user", true},
		{"Trailing Period", "user.", true},
		{"Spaces", "some user", true},
		{"Hyphen", "some-user", true},
		{"Underscore Edges", "_user_", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("User Name <user@example.com>"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "sufficient1", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Too Short", "abc1", true},
		{"Too Long", strings.Repeat("a", 128) + "1", true},
		{"No Digit", "abcdefghij", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"Valid", "go-modules", false},
		{"Valid Short", "go", false},
		{"Too Short", "g", true},
		{"Too Long", strings.Repeat("a", 36), true},
		{"Uppercase", "Go", true},
		{"Leading Hyphen", "-go", true},
		{"Trailing Hyphen", "go-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package validation

import (
	"fmt"
	"regexp"
)

const (
	MinTagLength = 2
	MaxTagLength = 35
)

var tagRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// ValidateTag validates a tag name. Tags are lowercase slugs; they must start
// and end with a letter or number but can contain hyphens.
func ValidateTag(tag string) error {
	if len(tag) < MinTagLength {
		return fmt.Errorf("tag must have at least %d characters", MinTagLength)
	}
	if len(tag) > MaxTagLength {
		return fmt.Errorf("tag must not have more than %d characters", MaxTagLength)
	}
	if !tagRegex.MatchString(tag) {
		return fmt.Errorf("tag must start and end with lowercase letters or numbers, but can contain hyphens")
	}
	return nil
}

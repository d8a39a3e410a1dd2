package validators

import (
	"errors"
	"regexp"
)

const maxToolNameLen = 64

var (
	ErrEmptyToolName   = errors.New("tool name must be specified")
	ErrInvalidToolName = errors.New("tool name must be lowercase letters, digits and underscores")
)

var toolNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func ValidateToolName(name string) error {
	if name == "" {
		return ErrEmptyToolName
	}
	if len(name) > maxToolNameLen || !toolNameRe.MatchString(name) {
		return ErrInvalidToolName
	}
	return nil
}

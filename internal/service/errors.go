package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalid        = errors.New("invalid")
	ErrUpstreamFailed = errors.New("translation upstream failed")
	ErrGeneration     = errors.New("catalog generation failed")
)

// MissingFieldsError is returned when a translate request lacks required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrInvalid
}

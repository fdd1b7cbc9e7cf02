package models

import "errors"

// Sentinel errors shared by the settings store and the provider client.
// Wrap with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	ErrParse        = errors.New("parse error")
	ErrIO           = errors.New("io error")
	ErrNetwork      = errors.New("network error")
	ErrMissingField = errors.New("missing field")
)

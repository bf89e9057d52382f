package validator

import "errors"

// ErrValidationFailed is the category every ValidationErrors value matches with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

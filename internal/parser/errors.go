package parser

import "fmt"

// DocumentError reports that the raw input is not a valid JSON document.
// It is the only document-level failure tier; malformed individual
// operations pass through as partially-empty endpoints instead.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid specification: %v", e.Err)
	}
	return "invalid specification"
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Package profile loads pre-ingested candidate profiles.
package profile

import "fmt"

// NotFoundError reports a profile name with no stored artifact. It is
// fatal for the run and surfaces immediately, with no retry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Name)
}

// InvalidProfileError reports a stored profile artifact that failed schema
// validation or could not be parsed.
type InvalidProfileError struct {
	Name    string
	Message string
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile %s: %s", e.Name, e.Message)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

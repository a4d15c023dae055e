package rendering

import (
	"errors"
	"fmt"
)

// RenderError represents a renderer failure (missing binary, compilation
// error, no output produced). The guardrail treats it as a failed attempt,
// not a fatal run error.
type RenderError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents a renderer invocation that exceeded its deadline.
type TimeoutError struct {
	Message string
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render timeout: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render timeout: %s", e.Message)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err is a renderer timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

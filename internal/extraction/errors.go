package extraction

import "fmt"

// ServiceError represents a failure of the remote extraction service. It is
// always recovered by the fallback decorator and never reaches a caller of
// the pipeline.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

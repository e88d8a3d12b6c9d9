package errors

import (
	"fmt"
)

// SourceFetchError is returned when the order batch could not be retrieved.
// It is the only error that aborts a whole run.
type SourceFetchError struct {
	Cause error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("failed to fetch orders from source: %s", e.Cause.Error())
}

func (e *SourceFetchError) Unwrap() error {
	return e.Cause
}

// NewSourceFetchError creates a new SourceFetchError
func NewSourceFetchError(cause error) *SourceFetchError {
	return &SourceFetchError{Cause: cause}
}

// CRMWriteError is returned when a CRM create call answered with a
// non-success status. It is contained per order and never aborts the batch.
type CRMWriteError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *CRMWriteError) Error() string {
	return fmt.Sprintf("CRM %s create failed with status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// NewCRMWriteError creates a new CRMWriteError
func NewCRMWriteError(resource string, statusCode int, body string) *CRMWriteError {
	return &CRMWriteError{
		Resource:   resource,
		StatusCode: statusCode,
		Body:       body,
	}
}

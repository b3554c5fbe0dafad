package model

import "fmt"

// RequestRejectedError is returned when the analysis service answered with a
// non-success status. The body is kept for diagnostics only.
type RequestRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RequestRejectedError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ServiceError is an error message the service reported inside a success
// response instead of a result list.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "analysis service error: " + e.Message
}

// TransportError is a failed call to the analysis service. Its message is the
// cause as the network layer reported it; request context goes to the logs.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

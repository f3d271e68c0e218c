package darksky

import "fmt"

// TransportError reports a failure to complete the HTTP exchange: the
// request could not be sent, the response could not be read, or the API
// answered with a non-success status. The request is never retried.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("darksky: request failed: %v", e.Err)
	}
	return fmt.Sprintf("darksky: request failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON or lacks a
// field the schema treats as mandatory. Field is set when the offending
// field is known.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("darksky: response missing required field %q", e.Field)
	}
	return fmt.Sprintf("darksky: decoding response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

package domain

import "fmt"

// AuthenticationError reports a rejected or failed login. Session state
// is guaranteed untouched when this error is returned.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// RequestError reports a transport failure or a non-2xx upstream status
// on any authenticated call. Status and Body are zero/nil when the
// request never reached the server.
type RequestError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("request rejected with status %d: %s", e.Status, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a response body that does not match the expected
// shape for its endpoint. Field names the missing or mismatched field,
// using dotted paths for nested objects (e.g. "market.epic").
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode failed: %s", e.Reason)
	}
	return fmt.Sprintf("decode failed at %q: %s", e.Field, e.Reason)
}

// InvalidArgumentError reports a caller-supplied parameter that cannot
// be used to build a valid request.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

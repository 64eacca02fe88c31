package source

import "fmt"

// UpstreamError reports a failed call to a content API: a transport failure,
// a non-success HTTP status, or an error payload from the API itself.
type UpstreamError struct {
	// Op names the failed call, e.g. "videos/by_category".
	Op string
	// Status is the HTTP status, zero for transport failures.
	Status int
	// Code and Message come from the API error payload, if any.
	Code    int
	Message string
	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("%s: api error %d: %s", e.Op, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

package tan

import "fmt"

// ValidationError reports a malformed or out-of-range query input. It is
// returned before any network call is issued and must not be retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NetworkError reports a connection failure, DNS failure or timeout.
// Timeout distinguishes deadline expiry from refused connections for
// observability; callers see a single transient error kind either way and
// may retry with backoff.
type NetworkError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("timeout fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network failure fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError reports a non-success HTTP status from the TAN service.
// BodyExcerpt carries the beginning of the response body for diagnosis.
// The client does not retry; retry policy belongs to the caller.
type UpstreamError struct {
	Status      int
	BodyExcerpt string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP %d from upstream: %s", e.Status, e.BodyExcerpt)
}

// DecodeError reports a response body that could not be parsed as JSON.
// Deterministic: the upstream contract changed or the response was
// truncated. Must not be retried.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed upstream payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CancelledError reports caller-initiated cancellation of an in-flight
// request. Distinct from a timeout, which surfaces as a NetworkError.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("request cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }

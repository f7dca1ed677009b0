package fetch

import "fmt"

// Kind classifies a fetch failure. Callers use the kind to decide how to
// report the failure without parsing error strings.
//
// Design decision: We use a small enum rather than one sentinel error per
// failure mode because the HTTP status kind needs to carry the status code,
// and mixing sentinels with wrapped dynamic errors makes errors.Is checks
// inconsistent. A typed *Error with a Kind gives one uniform shape.
type Kind int

const (
	// KindNetwork indicates a transport-level failure: DNS resolution,
	// connection refused, connection reset, or a malformed URL.
	KindNetwork Kind = iota

	// KindTimeout indicates the request exceeded its deadline.
	KindTimeout

	// KindHTTPStatus indicates the server responded with a non-2xx status.
	KindHTTPStatus

	// KindSizeExceeded indicates the response body exceeded the configured
	// size ceiling.
	KindSizeExceeded
)

// String returns a human-readable name for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindTimeout:
		return "timeout"
	case KindHTTPStatus:
		return "http status error"
	case KindSizeExceeded:
		return "size exceeded"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by the fetcher.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status code. Only set for KindHTTPStatus.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case KindSizeExceeded:
		return fmt.Sprintf("fetch %s: response body exceeds size limit", e.URL)
	case KindTimeout:
		return fmt.Sprintf("fetch %s: request timed out", e.URL)
	default:
		if e.Err != nil {
			return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("fetch %s: network error", e.URL)
	}
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

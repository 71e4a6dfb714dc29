package api

import "fmt"

// UpstreamFetchError wraps any failure to fetch or decode data from the upstream API.
type UpstreamFetchError struct {
	Endpoint string
	Err      error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("upstream fetch %s failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

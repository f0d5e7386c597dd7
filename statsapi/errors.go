package statsapi

import "fmt"

// StatusError reports a non-200 response from the upstream API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("statsapi: unexpected status %d from %s", e.StatusCode, e.URL)
}

// ShapeError reports a response body missing a key the endpoint contract
// requires.
type ShapeError struct {
	URL string
	Key string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("statsapi: response from %s missing %q", e.URL, e.Key)
}

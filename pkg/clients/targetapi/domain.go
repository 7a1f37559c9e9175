package targetapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when the albumlist doesn't answer within the configured bound
	ErrTimeout = errors.New("albumlist request timed out")
)

// StatusError carries an unexpected status code and the start of the response body
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("albumlist responded with status code %v: %v", e.StatusCode, e.Body)
}

// Response is a successful answer of an albumlist, kept byte for byte
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON returns true when the body is a json document that can be handed back to Slack unchanged
func (r *Response) IsJSON() bool {
	if r == nil {
		return false
	}
	body := bytes.TrimSpace(r.Body)
	return len(body) > 0 && json.Valid(body)
}

package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// DefaultErrorMessage is used when upstream rejects a call without a message.
const DefaultErrorMessage = "YouTube API request failed"

// APIError is a non-success response from a required upstream call. Status and
// Message are the upstream's own and are propagated to the caller unchanged.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: %d %s", e.Endpoint, e.Status, e.Message)
}

// wrapError converts library errors into *APIError when upstream answered with
// an HTTP status. Transport failures are wrapped as-is.
func wrapError(endpoint string, err error) error {
	if err == nil {
		return nil
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		msg := gErr.Message
		if msg == "" {
			msg = DefaultErrorMessage
		}
		return &APIError{Endpoint: endpoint, Status: gErr.Code, Message: msg}
	}
	return fmt.Errorf("youtube %s: %w", endpoint, err)
}

package reminders

import "errors"

var (
	// ErrAcknowledge is returned when the API rejects an acknowledgement.
	ErrAcknowledge = errors.New("reminders: acknowledge failed")

	// ErrRequestFailed indicates a request never produced an HTTP response.
	ErrRequestFailed = errors.New("reminders: request failed")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("reminders: invalid response")

	// ErrInvalidDeadline is returned for deadline strings in an unknown format.
	ErrInvalidDeadline = errors.New("reminders: invalid deadline")

	// ErrTaskNotFound is returned by the HTTP handler for unknown task ids.
	ErrTaskNotFound = errors.New("reminders: task not found")
)

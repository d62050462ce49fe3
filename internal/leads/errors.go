package leads

import "errors"

// User-facing messages for the whole form.
const (
	MessageInvalidFields  = "Please double-check the highlighted fields."
	MessageDispatchFailed = "We couldn't send your request right now. Please try again in a moment or call us directly."
)

var (
	// ErrMalformedBody is returned when a request body cannot be read as form fields
	ErrMalformedBody = errors.New("leads: malformed submission body")

	// ErrUnsupportedContentType is returned for bodies that are neither JSON nor form data
	ErrUnsupportedContentType = errors.New("leads: unsupported content type")
)

// FieldErrors maps a form field name to the message shown next to it.
// A nil FieldErrors means the submission is valid.
type FieldErrors map[string]string

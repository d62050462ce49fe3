package leads

import "log/slog"

// Form field names shared by the contact form, the validator and the error map.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldService  = "service"
	FieldTimeline = "timeline"
	FieldMessage  = "message"
)

// RawSubmission is the contact form exactly as the browser sent it.
type RawSubmission map[string]string

// Lead is a contact form submission that passed validation. Only Validate
// produces a Lead that reports Valid; the zero value does not.
type Lead struct {
	name      string
	email     string
	phone     string
	service   string
	timeline  string
	message   string
	validated bool
}

func (l Lead) Name() string     { return l.name }
func (l Lead) Email() string    { return l.email }
func (l Lead) Phone() string    { return l.phone }
func (l Lead) Service() string  { return l.service }
func (l Lead) Timeline() string { return l.timeline }
func (l Lead) Message() string  { return l.message }

// Valid reports whether the lead came out of Validate.
func (l Lead) Valid() bool { return l.validated }

// LogValue implements slog.LogValuer.
func (l Lead) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(FieldName, l.name),
		slog.String(FieldEmail, l.email),
		slog.String(FieldPhone, l.phone),
		slog.String(FieldService, l.service),
		slog.String(FieldTimeline, l.timeline),
		slog.String(FieldMessage, l.message),
	)
}

// Receipt identifies one accepted delivery.
type Receipt struct {
	ID      string `json:"id"`
	DevMode bool   `json:"dev_mode"`
}

// Status is the state of a contact form submission as seen by the page.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SubmissionResult is returned to the page after every submission attempt.
type SubmissionResult struct {
	Status  Status            `json:"status"`
	Errors  map[string]string `json:"errors"`
	Message string            `json:"message"`
}

// IdleResult is the state the form renders before anything was submitted.
func IdleResult() SubmissionResult {
	return SubmissionResult{Status: StatusIdle, Errors: map[string]string{}}
}

// Option is one choice offered by a select on the contact form.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ServiceOptions are the service tags offered by the contact form.
var ServiceOptions = []Option{
	{"kitchen-bath", "Kitchen & Bath"},
	{"electrical", "Electrical & Lighting"},
	{"carpentry", "Carpentry & Finish Work"},
	{"exterior", "Exterior & Seasonal"},
	{"painting", "Painting & Surfaces"},
	{"smart-home", "Smart Home & Comfort"},
	{"maintenance", "Recurring maintenance plan"},
}

// TimelineOptions are the timeline tags offered by the contact form.
var TimelineOptions = []Option{
	{"asap", "Urgent (same day / next day)"},
	{"two-weeks", "Within 2 weeks"},
	{"thirty-days", "Within 30 days"},
	{"flexible", "Flexible timeline"},
}

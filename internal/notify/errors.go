package notify

import "errors"

var (
	// ErrMalformedPayload is returned when Dispatch receives a lead that did not come out of validation
	ErrMalformedPayload = errors.New("notify: malformed lead payload")

	// ErrProviderRejected wraps any failure reported by the email provider
	ErrProviderRejected = errors.New("notify: email provider rejected the lead")

	// ErrConfigurationGap is returned when live delivery is forced without an inbox or sender
	ErrConfigurationGap = errors.New("notify: email delivery not configured")

	// ErrSenderNotConfigured is returned by a sender built without a provider client
	ErrSenderNotConfigured = errors.New("notify: sender not configured")
)

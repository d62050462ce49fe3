package leads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

const maxBodyBytes = 64 << 10

// Submitter runs one contact form submission.
type Submitter interface {
	Submit(ctx context.Context, raw RawSubmission) SubmissionResult
}

// Handler handles HTTP requests for the contact form
type Handler struct {
	submitter Submitter
	logger    *logging.Logger
}

// NewHandler creates a new contact form handler
func NewHandler(submitter Submitter, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		submitter: submitter,
		logger:    logger,
	}
}

// Submit handles POST /contact requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("failed to read contact form body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	raw, err := ParseRawSubmission(r.Header.Get("Content-Type"), body)
	if err != nil {
		h.logger.Warn("failed to decode contact form", "error", err)
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnsupportedContentType) {
			status = http.StatusUnsupportedMediaType
		}
		http.Error(w, "Invalid request body", status)
		return
	}

	result := h.submitter.Submit(r.Context(), raw)
	writeJSON(w, StatusCode(result), result)
}

// OptionsResponse lists the select choices for the contact form.
type OptionsResponse struct {
	Services  []Option `json:"services"`
	Timelines []Option `json:"timelines"`
}

// Options handles GET /contact/options requests
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		Services:  ServiceOptions,
		Timelines: TimelineOptions,
	})
}

// StatusCode maps a submission result onto an HTTP status.
func StatusCode(result SubmissionResult) int {
	switch {
	case result.Status == StatusSuccess:
		return http.StatusOK
	case len(result.Errors) > 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusServiceUnavailable
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

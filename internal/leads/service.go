package leads

import (
	"context"
	"fmt"
	"sort"

	"github.com/wolfman30/ondo-handyman/internal/observability/metrics"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

// Dispatcher delivers a validated lead to the office inbox.
type Dispatcher interface {
	Dispatch(ctx context.Context, lead Lead) (Receipt, error)
}

// Service runs one contact form submission end to end.
type Service struct {
	dispatcher Dispatcher
	metrics    *metrics.LeadMetrics
	logger     *logging.Logger
}

// NewService creates a submission service. metrics may be nil.
func NewService(dispatcher Dispatcher, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

// Submit validates raw and, if it is valid, dispatches it exactly once.
// Provider details are logged but never returned to the caller.
func (s *Service) Submit(ctx context.Context, raw RawSubmission) SubmissionResult {
	lead, fieldErrs := Validate(raw)
	if fieldErrs != nil {
		s.logger.Debug("contact form rejected", "fields", fieldKeys(fieldErrs))
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return SubmissionResult{
			Status:  StatusError,
			Errors:  fieldErrs,
			Message: MessageInvalidFields,
		}
	}

	receipt, err := s.dispatch(context.WithoutCancel(ctx), lead)
	if err != nil {
		s.logger.Error("contact form submission failed", "error", err)
		s.metrics.ObserveSubmission(metrics.OutcomeFailed)
		return SubmissionResult{
			Status:  StatusError,
			Errors:  map[string]string{},
			Message: MessageDispatchFailed,
		}
	}

	s.logger.Info("contact form submitted", "receipt_id", receipt.ID, "dev_mode", receipt.DevMode)
	s.metrics.ObserveSubmission(metrics.OutcomeDelivered)
	return SubmissionResult{
		Status: StatusSuccess,
		Errors: map[string]string{},
	}
}

// dispatch reports a dispatcher panic as an error.
func (s *Service) dispatch(ctx context.Context, lead Lead) (receipt Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("leads: dispatcher panicked: %v", r)
		}
	}()
	return s.dispatcher.Dispatch(ctx, lead)
}

func fieldKeys(errs FieldErrors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

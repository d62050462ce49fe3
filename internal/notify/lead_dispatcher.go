package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/ondo-handyman/internal/leads"
	"github.com/wolfman30/ondo-handyman/internal/observability/metrics"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

var dispatchTracer = otel.Tracer("ondo.internal.notify.lead_dispatcher")

// DeliveryMode selects between real email delivery and the development no-op.
type DeliveryMode string

const (
	// DeliveryAuto sends live only when both the credential and the inbox are set.
	DeliveryAuto DeliveryMode = "auto"
	// DeliveryLive always sends and refuses to start without an inbox and sender.
	DeliveryLive DeliveryMode = "live"
	// DeliveryDevelopment never sends; leads are logged instead.
	DeliveryDevelopment DeliveryMode = "development"
)

// ParseDeliveryMode parses an EMAIL_DELIVERY_MODE value. Empty means auto.
func ParseDeliveryMode(value string) (DeliveryMode, error) {
	switch mode := DeliveryMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return DeliveryAuto, nil
	case DeliveryAuto, DeliveryLive, DeliveryDevelopment:
		return mode, nil
	case "dev":
		return DeliveryDevelopment, nil
	default:
		return "", fmt.Errorf("notify: unknown delivery mode %q", value)
	}
}

// DispatchConfig is the delivery configuration handed to NewLeadDispatcher.
type DispatchConfig struct {
	Mode DeliveryMode
	// Provider names the email provider in logs and spans.
	Provider string
	// Credential is the provider credential. Only its presence matters here.
	Credential string
	// InboxEmail receives every lead.
	InboxEmail string
	// Brand is used in the HTML heading.
	Brand string
}

// missing lists the settings auto mode needs but does not have.
func (c DispatchConfig) missing() []string {
	var out []string
	if strings.TrimSpace(c.Credential) == "" {
		out = append(out, "credential")
	}
	if strings.TrimSpace(c.InboxEmail) == "" {
		out = append(out, "inbox")
	}
	return out
}

// LeadDispatcher renders a validated lead and hands it to an EmailSender.
// It holds no mutable state and is safe for concurrent use.
type LeadDispatcher struct {
	sender   EmailSender
	path     string
	provider string
	inbox    string
	brand    string
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewLeadDispatcher resolves cfg.Mode and picks the sender for it. live may
// be nil when no provider client could be built. Missing configuration in
// auto mode falls back to development delivery; in live mode it is an error.
func NewLeadDispatcher(cfg DispatchConfig, live EmailSender, m *metrics.LeadMetrics, logger *logging.Logger) (*LeadDispatcher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Mode == "" {
		cfg.Mode = DeliveryAuto
	}
	if cfg.Provider == "" {
		cfg.Provider = "unknown"
	}
	if cfg.Brand == "" {
		cfg.Brand = DefaultFromName
	}

	d := &LeadDispatcher{
		provider: cfg.Provider,
		inbox:    strings.TrimSpace(cfg.InboxEmail),
		brand:    cfg.Brand,
		metrics:  m,
		logger:   logger,
	}

	switch cfg.Mode {
	case DeliveryLive:
		if d.inbox == "" || live == nil {
			return nil, fmt.Errorf("%w: live delivery needs an inbox and a %s sender", ErrConfigurationGap, cfg.Provider)
		}
		d.useLive(live)
	case DeliveryDevelopment:
		d.useDevelopment()
	case DeliveryAuto:
		missing := cfg.missing()
		switch {
		case len(missing) > 0:
			logger.Warn("email delivery not configured; leads will be logged, not sent",
				"provider", cfg.Provider,
				"missing", missing,
			)
			d.useDevelopment()
		case live == nil:
			logger.Warn("email delivery configured but no sender available; leads will be logged, not sent",
				"provider", cfg.Provider,
			)
			d.useDevelopment()
		default:
			d.useLive(live)
		}
	default:
		return nil, fmt.Errorf("notify: unknown delivery mode %q", cfg.Mode)
	}

	logger.Info("lead dispatcher ready", "path", d.path, "provider", d.provider)
	return d, nil
}

func (d *LeadDispatcher) useLive(sender EmailSender) {
	d.sender = sender
	d.path = metrics.PathLive
}

func (d *LeadDispatcher) useDevelopment() {
	d.sender = NewStubEmailSender(d.logger)
	d.path = metrics.PathDevelopment
}

// Live reports whether dispatches reach a real email provider.
func (d *LeadDispatcher) Live() bool {
	return d.path == metrics.PathLive
}

// Dispatch sends exactly one notification for lead. It never retries;
// calling it twice sends twice.
func (d *LeadDispatcher) Dispatch(ctx context.Context, lead leads.Lead) (leads.Receipt, error) {
	if !lead.Valid() {
		d.logger.Error("refusing to dispatch unvalidated lead")
		return leads.Receipt{}, ErrMalformedPayload
	}

	ctx, span := dispatchTracer.Start(ctx, "notify.lead.dispatch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ondo.delivery_path", d.path),
			attribute.String("ondo.email_provider", d.provider),
			attribute.Bool("ondo.lead.has_phone", lead.Phone() != ""),
			attribute.String("ondo.lead.service", lead.Service()),
		),
	)
	defer span.End()

	if !d.Live() {
		d.logger.Warn("lead captured without email delivery", "lead", lead)
	}

	start := time.Now()
	messageID, err := d.sender.Send(ctx, LeadEmail(d.brand, d.inbox, lead))
	d.metrics.ObserveDispatchLatency(d.path, time.Since(start).Seconds())
	d.metrics.ObserveDispatch(d.path, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "email provider rejected lead")
		d.logger.Error("lead email rejected", "provider", d.provider, "error", err)
		return leads.Receipt{}, fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	span.SetAttributes(attribute.String("ondo.message_id", messageID))
	return leads.Receipt{ID: messageID, DevMode: !d.Live()}, nil
}

var _ leads.Dispatcher = (*LeadDispatcher)(nil)

package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/wolfman30/ondo-handyman/internal/config"
	"github.com/wolfman30/ondo-handyman/internal/leads"
	"github.com/wolfman30/ondo-handyman/internal/notify"
	"github.com/wolfman30/ondo-handyman/internal/observability/metrics"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

// AWSConfigLoader loads the AWS SDK configuration for SES.
type AWSConfigLoader func(ctx context.Context, cfg *appconfig.Config) (aws.Config, error)

// LeadPipeline is the wired contact form pipeline.
type LeadPipeline struct {
	Service    *leads.Service
	Dispatcher *notify.LeadDispatcher
}

// EmailDelivery names the active delivery path for health reporting.
func (p *LeadPipeline) EmailDelivery() string {
	if p.Dispatcher.Live() {
		return metrics.PathLive
	}
	return metrics.PathDevelopment
}

// BuildEmailSender returns the configured provider's sender, or nil when
// the provider cannot be built from cfg (for example no SendGrid key).
func BuildEmailSender(ctx context.Context, cfg *appconfig.Config, loadAWS AWSConfigLoader, logger *logging.Logger) (notify.EmailSender, error) {
	switch cfg.EmailProvider {
	case appconfig.ProviderSendGrid, "":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.LeadFromEmail,
			FromName:  cfg.LeadFromName,
			Host:      cfg.SendGridHost,
		}, logger)
		if sender == nil {
			return nil, nil
		}
		return sender, nil
	case appconfig.ProviderSES:
		if loadAWS == nil {
			return nil, fmt.Errorf("bootstrap: SES selected without an AWS config loader")
		}
		awsCfg, err := loadAWS(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
		}
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.LeadFromEmail,
			FromName:  cfg.LeadFromName,
		}, logger), nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}

// BuildLeadPipeline wires validation, dispatch and metrics from cfg.
func BuildLeadPipeline(ctx context.Context, cfg *appconfig.Config, loadAWS AWSConfigLoader, m *metrics.LeadMetrics, logger *logging.Logger) (*LeadPipeline, error) {
	if logger == nil {
		logger = logging.Default()
	}

	mode, err := notify.ParseDeliveryMode(cfg.EmailDeliveryMode)
	if err != nil {
		return nil, err
	}

	var sender notify.EmailSender
	if mode != notify.DeliveryDevelopment {
		sender, err = BuildEmailSender(ctx, cfg, loadAWS, logger)
		if err != nil {
			return nil, err
		}
	}

	dispatcher, err := notify.NewLeadDispatcher(notify.DispatchConfig{
		Mode:       mode,
		Provider:   cfg.EmailProvider,
		Credential: cfg.EmailCredential(),
		InboxEmail: cfg.LeadInboxEmail,
		Brand:      cfg.LeadFromName,
	}, sender, m, logger)
	if err != nil {
		return nil, err
	}

	return &LeadPipeline{
		Service:    leads.NewService(dispatcher, m, logger),
		Dispatcher: dispatcher,
	}, nil
}

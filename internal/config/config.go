package config

import (
	"os"
	"strconv"
	"strings"
)

// Email providers.
const (
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	MetricsEnabled     bool
	CORSAllowedOrigins []string

	// Lead delivery
	EmailProvider     string
	EmailDeliveryMode string
	LeadInboxEmail    string
	LeadFromEmail     string
	LeadFromName      string

	// SendGrid Email Configuration
	SendGridAPIKey string
	SendGridHost   string

	// AWS (SES) Configuration
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ProviderSendGrid))),
		EmailDeliveryMode: getEnv("EMAIL_DELIVERY_MODE", "auto"),
		LeadInboxEmail:    strings.TrimSpace(getEnv("LEAD_INBOX_EMAIL", "")),
		LeadFromEmail:     getEnv("LEAD_FROM_EMAIL", "hello@ondo-handyman.com"),
		LeadFromName:      getEnv("LEAD_FROM_NAME", "Ondo Handyman"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SendGridHost:   getEnv("SENDGRID_HOST", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// EmailCredential returns the credential whose presence enables live
// delivery for the configured provider. SES counts only static keys; the
// ambient AWS chain needs EMAIL_DELIVERY_MODE=live.
func (c *Config) EmailCredential() string {
	switch c.EmailProvider {
	case ProviderSES:
		if c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != "" {
			return c.AWSAccessKeyID
		}
		return ""
	default:
		return c.SendGridAPIKey
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

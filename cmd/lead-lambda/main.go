package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/wolfman30/ondo-handyman/cmd/mainconfig"
	"github.com/wolfman30/ondo-handyman/internal/app/bootstrap"
	appconfig "github.com/wolfman30/ondo-handyman/internal/config"
	"github.com/wolfman30/ondo-handyman/internal/leads"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

const maxBodyBytes = 64 << 10

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	pipeline, err := bootstrap.BuildLeadPipeline(context.Background(), cfg, mainconfig.LoadAWSConfig, nil, logger)
	if err != nil {
		panic(err)
	}
	logger.Info("lead lambda ready", "email_delivery", pipeline.EmailDelivery())

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, pipeline.Service, logger, evt)
	})
}

func handle(ctx context.Context, submitter leads.Submitter, logger *logging.Logger, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	path := strings.TrimRight(strings.TrimSpace(evt.RawPath), "/")
	if path == "" {
		path = strings.TrimRight(strings.TrimSpace(evt.RequestContext.HTTP.Path), "/")
	}

	switch path {
	case "/health":
		return jsonResponse(http.StatusOK, map[string]string{"status": "ok"}), nil
	case "/contact/options":
		if method != http.MethodGet {
			return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusMethodNotAllowed}, nil
		}
		return jsonResponse(http.StatusOK, leads.OptionsResponse{
			Services:  leads.ServiceOptions,
			Timelines: leads.TimelineOptions,
		}), nil
	case "/contact":
	default:
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusNotFound}, nil
	}

	if method != http.MethodPost {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusMethodNotAllowed}, nil
	}

	body, err := decodeBody(evt)
	if err != nil || len(body) > maxBodyBytes {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusBadRequest, Body: "invalid body"}, nil
	}

	raw, err := leads.ParseRawSubmission(headerValue(evt.Headers, "content-type"), body)
	if err != nil {
		logger.Warn("failed to decode contact form", "error", err)
		status := http.StatusBadRequest
		if errors.Is(err, leads.ErrUnsupportedContentType) {
			status = http.StatusUnsupportedMediaType
		}
		return events.APIGatewayV2HTTPResponse{StatusCode: status, Body: "invalid body"}, nil
	}

	result := submitter.Submit(ctx, raw)
	return jsonResponse(leads.StatusCode(result), result), nil
}

func jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError}
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"content-type": "application/json"},
	}
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	return base64.StdEncoding.DecodeString(evt.Body)
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

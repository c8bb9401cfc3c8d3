package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// webhookResponse is the body the notification endpoint answers with.
type webhookResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WebhookNotifier posts guest events to the admin notification endpoint.
// Calls are made once; a failure is reported to the caller and not retried.
type WebhookNotifier struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

func NewWebhookNotifier(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &WebhookNotifier{
		httpClient: client,
		url:        url,
		logger:     logger,
	}
}

func (n *WebhookNotifier) NotifyGuestRegistered(ctx context.Context, ev GuestEvent) error {
	var result webhookResponse
	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetBody(ev).
		SetResult(&result).
		SetError(&result).
		Post(n.url)
	if err != nil {
		n.logger.Error("Admin notification call failed",
			zap.String("reg_number", ev.RegNumber),
			zap.Error(err),
		)
		return fmt.Errorf("failed to call notification webhook: %w", err)
	}

	if resp.IsError() {
		n.logger.Error("Admin notification returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", result.Error),
		)
		return fmt.Errorf("notification webhook error: %s (status: %d)", result.Error, resp.StatusCode())
	}

	n.logger.Debug("Admin notification sent",
		zap.String("reg_number", ev.RegNumber),
		zap.String("message", result.Message),
	)
	return nil
}

package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SMSGatewaySender delivers messages through an HTTP SMS gateway.
type SMSGatewaySender struct {
	url    string
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewSMSGatewaySender returns a sender for the given gateway endpoint.
func NewSMSGatewaySender(url, apiKey string, timeout time.Duration, logger *zap.Logger) *SMSGatewaySender {
	return &SMSGatewaySender{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// Send posts the message to the gateway and treats any non-2xx reply as a
// delivery failure.
func (s *SMSGatewaySender) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(smsPayload{To: phone, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %s: %s", resp.Status, detail)
	}

	s.logger.Debug("sms dispatched", zap.String("phone", phone))
	return nil
}

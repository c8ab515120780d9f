// Package nlu is the boundary to the external natural-language engine: raw
// user text goes in, the engine's structured reply comes back unchanged.
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts user utterances to the NLU engine's text endpoint.
type Client struct {
	baseURL string
	botName string
	client  *http.Client
}

// NewClient returns a client for the engine at baseURL.
func NewClient(baseURL, botName string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		botName: botName,
		client:  &http.Client{Timeout: timeout},
	}
}

// TextRequest is the engine's inbound contract.
type TextRequest struct {
	BotName           string            `json:"botName"`
	UserID            string            `json:"userId"`
	InputText         string            `json:"inputText"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

// TextResponse is the engine's reply, passed through unchanged.
type TextResponse struct {
	Message           string            `json:"message"`
	DialogState       string            `json:"dialogState"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
}

// PostText forwards one utterance together with the user's session
// attributes and returns the engine's reply.
func (c *Client) PostText(ctx context.Context, userID, text string, attrs map[string]string) (*TextResponse, error) {
	body, err := json.Marshal(TextRequest{
		BotName:           c.botName,
		UserID:            userID,
		InputText:         text,
		SessionAttributes: attrs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal text request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build text request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nlu engine request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nlu engine returned %s: %s", resp.Status, detail)
	}

	var out TextResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode nlu engine reply: %w", err)
	}
	return &out, nil
}

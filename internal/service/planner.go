package service

// This file implements the Mistral-backed PlanGenerator. The call is a
// single attempt with no retry or backoff; transport and parse failures are
// returned with their underlying message so the workflow can surface them.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const mistralEndpoint = "https://api.mistral.ai/v1/chat/completions"

// MistralPlanner calls the Mistral chat-completions API to produce plan
// content.
type MistralPlanner struct {
	APIKey string
	Model  string
	Client *http.Client

	endpoint string // overridden in tests
}

// NewMistralPlanner builds a planner with a bounded-timeout HTTP client.
func NewMistralPlanner(apiKey, model string) *MistralPlanner {
	return &MistralPlanner{
		APIKey: apiKey,
		Model:  model,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate builds the deterministic prompt from the medication name and the
// comma-joined focus areas and returns the model's reply.
func (p *MistralPlanner) Generate(ctx context.Context, medicationName string, focusAreas []string) (string, error) {
	if p.APIKey == "" {
		return "", errors.New("MISTRAL_API_KEY not set")
	}

	prompt := fmt.Sprintf(
		"Generate a comprehensive medication review plan for someone taking %s. \n\n"+
			"Focus on these areas: %s. \n\n"+
			"Include daily tracking questions, potential side effects to watch for, "+
			"and any specific considerations related to the focus areas. \n\n"+
			"Provide a structured plan that can be used for daily reviews.",
		medicationName, strings.Join(focusAreas, ", "))

	body, err := json.Marshal(chatRequest{
		Model:       p.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	url := p.endpoint
	if url == "" {
		url = mistralEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Mistral API: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to parse Mistral API response: %v", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "Failed to generate plan", nil
	}
	return out.Choices[0].Message.Content, nil
}

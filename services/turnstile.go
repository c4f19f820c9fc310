package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TurnstileVerifyURL is Cloudflare's siteverify endpoint
const TurnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// Turnstile verifies Cloudflare Turnstile tokens posted with the intake forms
type Turnstile struct {
	SecretKey  string
	VerifyURL  string
	HTTPClient *http.Client
}

// NewTurnstile returns a verifier, or nil when no secret is configured
func NewTurnstile(secretKey string) *Turnstile {
	if secretKey == "" {
		return nil
	}
	return &Turnstile{
		SecretKey:  secretKey,
		VerifyURL:  TurnstileVerifyURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify checks the token with Cloudflare
func (t *Turnstile) Verify(ctx context.Context, token, ip string) error {
	if token == "" || t.SecretKey == "" {
		return fmt.Errorf("missing token or secret key")
	}

	form := url.Values{
		"secret":   {t.SecretKey},
		"response": {token},
	}
	if ip != "" {
		form.Set("remoteip", ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build turnstile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode turnstile response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("turnstile verification failed, error codes: %v", result.ErrorCodes)
	}

	return nil
}

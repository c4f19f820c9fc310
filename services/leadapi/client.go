package leadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nextkey_landing_go/models"

	"go.uber.org/zap"
)

// Path is the lead intake endpoint, relative to the API base URL
const Path = "/api/landing-page-leads/"

// maxBodyBytes bounds how much of an API response is read
const maxBodyBytes = 1 << 20

// Result is a successful API answer
type Result struct {
	StatusCode int
	Body       map[string]interface{}
}

// Client posts lead submissions to the lead intake API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("leadapi"),
	}
}

// Endpoint returns the full URL leads are posted to
func (c *Client) Endpoint() string {
	return c.baseURL + Path
}

// Submit sends one lead. It makes exactly one attempt.
// A non-success status yields *RejectedError; a transport failure wraps ErrUnreachable.
func (c *Client) Submit(ctx context.Context, lead models.LeadSubmission) (*Result, error) {
	payload, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("lead api request failed",
			zap.String("lead_source", string(lead.LeadSource)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Warn("failed to read lead api response", zap.Int("status", resp.StatusCode), zap.Error(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// An error body that is not JSON is treated like a failed connection
		if !json.Valid(raw) {
			c.logger.Warn("lead api error body is not JSON",
				zap.String("lead_source", string(lead.LeadSource)),
				zap.Int("status", resp.StatusCode))
			return nil, fmt.Errorf("%w: status %d with unreadable error body", ErrUnreachable, resp.StatusCode)
		}
		var body ErrorBody
		if err := json.Unmarshal(raw, &body); err != nil {
			c.logger.Debug("lead api error body is not an object", zap.Int("status", resp.StatusCode))
		}
		c.logger.Info("lead rejected",
			zap.String("lead_source", string(lead.LeadSource)),
			zap.Int("status", resp.StatusCode),
			zap.String("message", body.Message()))
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: body}
	}

	result := &Result{StatusCode: resp.StatusCode}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result.Body); err != nil {
			// Success is decided by the status alone
			c.logger.Debug("lead api success body is not a JSON object", zap.Error(err))
		}
	}

	c.logger.Info("lead submitted",
		zap.String("lead_source", string(lead.LeadSource)),
		zap.String("original_domain", lead.OriginDomain),
		zap.Int("status", resp.StatusCode))
	return result, nil
}

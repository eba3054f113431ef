package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Soumo04/TalentNest/pkg/models"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 2 << 20

// Client talks to the career-portal API. It attaches no credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListJobs fetches the active job postings in service order
func (c *Client) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.do(ctx, "list jobs", http.MethodGet, "/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}
	return jobs, nil
}

// SubmitApplication posts an application and returns the service-issued ID
func (c *Client) SubmitApplication(ctx context.Context, in models.ApplicationInput) (string, error) {
	var receipt models.SubmissionReceipt
	if err := c.do(ctx, "submit application", http.MethodPost, "/applications", in, &receipt); err != nil {
		return "", err
	}
	return receipt.Identifier(), nil
}

// GetApplication fetches a single application record
func (c *Client) GetApplication(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	var record models.ApplicationRecord
	path := "/applications/" + url.PathEscape(id)
	if err := c.do(ctx, "get application", http.MethodGet, path, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStatus changes an application's status and returns the service's ack message
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (string, error) {
	var ack models.Ack
	path := "/applications/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, "update status", http.MethodPatch, path, models.StatusUpdate{Status: status}, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("%s %s: %v", method, path, err)
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Printf("%s %s: read body: %v", method, path, err)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ack models.Ack
		_ = json.Unmarshal(data, &ack)
		c.logger.Printf("%s %s: HTTP %d %s", method, path, resp.StatusCode, ack.Message)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: ack.Message}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Printf("%s %s: decode: %v", method, path, err)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

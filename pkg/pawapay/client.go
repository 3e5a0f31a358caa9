/**
 * @description
 * This package provides a client for the pawaPay deposits API. It
 * encapsulates the logic for making authenticated HTTP requests to the
 * gateway, constructing the deposit payload with the exact field names the
 * provider expects, and parsing the loosely shaped responses into typed
 * records.
 *
 * @dependencies
 * - bytes, context, encoding/json, fmt, net/http, time: Standard Go libraries.
 * - internal/domain: The canonical deposit request.
 */

package pawapay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dave-evans-pawapay/deposit-service/internal/domain"
)

// Client is a client for the pawaPay API. The underlying http.Client is
// shared and safe for concurrent use by independent reconciliation runs.
type Client struct {
	BaseURL    string
	APIToken   string
	HTTPClient *http.Client
}

// NewClient creates a new pawaPay API client.
func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIToken: apiToken,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// depositRequest is the wire payload for POST /deposits. Field names must be
// preserved exactly for provider compatibility. The currency is omitted when
// the country could not be resolved, mirroring an absent field rather than
// sending an empty one.
type depositRequest struct {
	DepositID            string       `json:"depositId"`
	Amount               string       `json:"amount"`
	Currency             string       `json:"currency,omitempty"`
	Correspondent        string       `json:"correspondent"`
	Payer                domain.Payer `json:"payer"`
	CustomerTimestamp    string       `json:"customerTimestamp"`
	StatementDescription string       `json:"statementDescription"`
}

// RejectionReason explains a REJECTED submission.
type RejectionReason struct {
	RejectionCode string `json:"rejectionCode"`
}

// SubmitResult is the gateway's answer to a deposit submission. Status is
// one of ACCEPTED, REJECTED, DUPLICATE_IGNORED, or an unrecognized value the
// caller must still classify.
type SubmitResult struct {
	Status          string           `json:"status"`
	RejectionReason *RejectionReason `json:"rejectionReason,omitempty"`
}

// FailureReason explains a FAILED deposit.
type FailureReason struct {
	FailureMessage string `json:"failureMessage"`
}

// StatusRecord is one element of the array returned by the status endpoint.
// Status is one of COMPLETED, SUBMITTED, FAILED, ENQUEUED, or an
// unrecognized value.
type StatusRecord struct {
	Status        string         `json:"status"`
	FailureReason *FailureReason `json:"failureReason,omitempty"`
}

// APIError represents a non-2xx response from the pawaPay API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pawapay api error: %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// SubmitDeposit sends the deposit to POST /deposits. It must be called
// exactly once per logical payment; any retry has to reuse the same deposit
// so the gateway can recognize duplicates instead of creating a parallel
// payment.
func (c *Client) SubmitDeposit(ctx context.Context, deposit *domain.Deposit) (*SubmitResult, error) {
	payload := depositRequest{
		DepositID:            deposit.DepositID,
		Amount:               deposit.Amount,
		Currency:             deposit.Currency,
		Correspondent:        deposit.Correspondent,
		Payer:                deposit.Payer,
		CustomerTimestamp:    deposit.CustomerTimestamp,
		StatementDescription: deposit.StatementDescription,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deposit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/deposits", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute deposit request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read deposit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Op: "submit deposit", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
	}

	var result SubmitResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to decode deposit response: %w", err)
	}
	return &result, nil
}

// FetchDepositStatus reads the current status of a deposit from
// GET /deposits/{depositId}. The read is idempotent and safe to repeat; the
// endpoint answers with an array whose first element carries the status.
func (c *Client) FetchDepositStatus(ctx context.Context, depositID string) (*StatusRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/deposits/"+depositID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute status request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Op: "fetch deposit status", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
	}

	var records []StatusRecord
	if err := json.Unmarshal(bodyBytes, &records); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("status response for deposit %s contained no records", depositID)
	}
	return &records[0], nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIToken)
}

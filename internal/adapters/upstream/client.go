// Package upstream is the HTTP client for the settlement/payment back
// office. All real validation, computation, and persistence happens on
// that side; this client only moves envelopes and streams.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/ports"
)

// Config captures what the client needs to reach the back office.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	// TokenFunc supplies the bearer token for a request, typically from
	// the session in ctx. Requests go out unauthenticated when it is nil
	// or returns empty; the back office rejects those itself.
	TokenFunc func(ctx context.Context) string
}

// Client talks to the settlement back office.
type Client struct {
	baseURL   string
	client    *http.Client
	tokenFunc func(ctx context.Context) string
}

// NewClient builds a back-office client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("upstream base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: hc, tokenFunc: cfg.TokenFunc}, nil
}

// Error is a back-office failure surfaced from the response envelope.
// The message is shown to the user verbatim and the request is never
// retried automatically.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// envelope is the back office's uniform JSON response shape.
type envelope struct {
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

// envelopeError turns a failed envelope into an *Error, stringifying the
// data field best-effort.
func envelopeError(env envelope) error {
	msg := ""
	var s string
	if err := json.Unmarshal(env.Data, &s); err == nil {
		msg = s
	} else if len(env.Data) > 0 {
		msg = string(env.Data)
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", env.Status)
	}
	return &Error{Status: env.Status, Message: msg}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	if c.tokenFunc != nil {
		if token := c.tokenFunc(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON performs a request whose response is a JSON envelope and
// decodes the data field into out (when out is non-nil).
func (c *Client) doJSON(req *http.Request, out any) error {
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call back office: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Success {
		return envelopeError(env)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode envelope data: %w", err)
		}
	}
	return nil
}

// postJSON sends a JSON body and decodes the envelope data into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

// Authenticate exchanges user credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, in ports.LoginRequest) (ports.LoginResult, error) {
	var out ports.LoginResult
	if err := c.postJSON(ctx, "/api/auth/login", in, &out); err != nil {
		return ports.LoginResult{}, err
	}
	return out, nil
}

// UploadBatch sends a spreadsheet as multipart form data and returns the
// back office's validation summary.
func (c *Client) UploadBatch(ctx context.Context, fileName string, file io.Reader) (model.ImportSummary, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return model.ImportSummary{}, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.ImportSummary{}, fmt.Errorf("copy upload payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.ImportSummary{}, fmt.Errorf("finish upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/ImportExcel/upload", &buf)
	if err != nil {
		return model.ImportSummary{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out model.ImportSummary
	if err := c.doJSON(req, &out); err != nil {
		return model.ImportSummary{}, err
	}
	return out, nil
}

// BatchDetails fetches the full row-by-row review of a batch.
func (c *Client) BatchDetails(ctx context.Context, batchID string) (model.ImportDetails, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ImportExcel/"+batchID+"/details", nil)
	if err != nil {
		return model.ImportDetails{}, err
	}
	var out model.ImportDetails
	if err := c.doJSON(req, &out); err != nil {
		return model.ImportDetails{}, err
	}
	return out, nil
}

// ApproveBatch approves a validated batch.
func (c *Client) ApproveBatch(ctx context.Context, batchID string) (model.ApproveResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/ImportExcel/approve/"+batchID, nil)
	if err != nil {
		return model.ApproveResult{}, err
	}
	var out model.ApproveResult
	if err := c.doJSON(req, &out); err != nil {
		return model.ApproveResult{}, err
	}
	return out, nil
}

// SearchSettlements runs a settlement statement search.
func (c *Client) SearchSettlements(ctx context.Context, q model.SettlementQuery) ([]model.SettlementRow, error) {
	var out []model.SettlementRow
	if err := c.postJSON(ctx, "/api/SettlementStatement/settlement-statement-search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeamRepresentatives lists representative settlement lines with
// payment state.
func (c *Client) ListTeamRepresentatives(ctx context.Context, q model.TeamRepresentativesQuery) ([]model.TeamRepresentativeRow, error) {
	var out []model.TeamRepresentativeRow
	if err := c.postJSON(ctx, "/api/SettlementStatement/list-teamRepresentatives", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordPayment marks a representative's settlement line as paid.
func (c *Client) RecordPayment(ctx context.Context, ref model.PaymentRef) (model.PaymentResult, error) {
	var out model.PaymentResult
	if err := c.postJSON(ctx, "/api/SettlementStatement/payment", ref, &out); err != nil {
		return model.PaymentResult{}, err
	}
	return out, nil
}

// ReversePayment reverses a previously recorded payment.
func (c *Client) ReversePayment(ctx context.Context, ref model.PaymentRef) (model.ReversalResult, error) {
	var out model.ReversalResult
	if err := c.postJSON(ctx, "/api/SettlementStatement/unpaid", ref, &out); err != nil {
		return model.ReversalResult{}, err
	}
	return out, nil
}

var _ ports.SettlementAPI = (*Client)(nil)

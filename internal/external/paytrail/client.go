package paytrail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/pkg/logger"
)

// ErrReferenceMutated signals that a before-send hook changed the request
// reference. The reference is the correlation key back to the order and is
// immutable after construction; mutating it is a programming error, not a
// recoverable condition.
var ErrReferenceMutated = errors.New("hook mutated request reference")

// ClientConfig configures the provider API client.
type ClientConfig struct {
	BaseURL     string
	Credentials Credentials
	Algorithm   Algorithm
	Platform    string
	Timeout     time.Duration
}

// Client talks to the provider's payment API. Every outbound request carries
// the header set from NewHeader plus an HMAC signature; every response body
// is signature-verified before any field is trusted.
type Client struct {
	baseURL   string
	creds     Credentials
	algorithm Algorithm
	platform  string
	signer    Signer
	hooks     *Hooks
	http      *http.Client
	logger    *logger.Logger
}

func NewClient(l *logger.Logger, cfg ClientConfig, hooks *Hooks) *Client {
	if hooks == nil {
		hooks = NewHooks()
	}
	platform := cfg.Platform
	if platform == "" {
		platform = DefaultPlatform
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		creds:     cfg.Credentials,
		algorithm: cfg.Algorithm,
		platform:  platform,
		signer:    NewHmacSigner(cfg.Credentials.Secret),
		hooks:     hooks,
		http:      &http.Client{Timeout: timeout},
		logger:    l,
	}
}

// Hooks exposes the extension points for collaborators to register on.
func (c *Client) Hooks() *Hooks {
	return c.hooks
}

// CreatePayment runs the before-send hooks, asserts reference immutability,
// then signs and posts the create-payment request.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (CreatePaymentResponse, error) {
	reference := req.Reference
	if err := c.hooks.runBeforeSend(ctx, &req); err != nil {
		return CreatePaymentResponse{}, fmt.Errorf("before-send hook: %w", err)
	}
	if req.Reference != reference {
		return CreatePaymentResponse{}, fmt.Errorf("%w: %q became %q", ErrReferenceMutated, reference, req.Reference)
	}

	header := NewHeader(http.MethodPost, c.creds, c.algorithm, WithPlatform(c.platform))

	var out CreatePaymentResponse
	if err := c.do(ctx, header, "/payments", req, &out); err != nil {
		return CreatePaymentResponse{}, err
	}

	if err := c.hooks.runAfterCreate(ctx, req, &out); err != nil {
		return CreatePaymentResponse{}, fmt.Errorf("after-create hook: %w", err)
	}

	return out, nil
}

// GetPayment polls the provider for the current status of a transaction.
func (c *Client) GetPayment(ctx context.Context, transactionID string) (PaymentStatus, error) {
	header := NewHeader(http.MethodGet, c.creds, c.algorithm,
		WithPlatform(c.platform), WithTransactionID(transactionID))

	var out PaymentStatus
	if err := c.do(ctx, header, "/payments/"+transactionID, nil, &out); err != nil {
		return PaymentStatus{}, err
	}
	return out, nil
}

// Refund refunds part or all of a settled transaction.
func (c *Client) Refund(ctx context.Context, transactionID string, req RefundRequest) (RefundResponse, error) {
	header := NewHeader(http.MethodPost, c.creds, c.algorithm,
		WithPlatform(c.platform), WithTransactionID(transactionID))

	var out RefundResponse
	if err := c.do(ctx, header, "/payments/"+transactionID+"/refund", req, &out); err != nil {
		return RefundResponse{}, err
	}
	return out, nil
}

// GetToken resolves a tokenization id (from the add-card flow) to a
// reusable card token.
func (c *Client) GetToken(ctx context.Context, tokenizationID string) (TokenizationResponse, error) {
	header := NewHeader(http.MethodPost, c.creds, c.algorithm,
		WithPlatform(c.platform), WithTokenizationID(tokenizationID))

	var out TokenizationResponse
	if err := c.do(ctx, header, "/tokenization/"+tokenizationID, nil, &out); err != nil {
		return TokenizationResponse{}, err
	}
	return out, nil
}

// TokenCharge performs a merchant-initiated charge (authorize + capture in
// one step) against a stored card token.
func (c *Client) TokenCharge(ctx context.Context, req CreatePaymentRequest) (TokenPaymentResponse, error) {
	return c.tokenPayment(ctx, "/payments/token/charge", req)
}

// TokenAuthorize places an authorization hold against a stored card token.
// The hold is settled later with TokenCommit or released with TokenRevert.
func (c *Client) TokenAuthorize(ctx context.Context, req CreatePaymentRequest) (TokenPaymentResponse, error) {
	return c.tokenPayment(ctx, "/payments/token/authorization-hold", req)
}

func (c *Client) tokenPayment(ctx context.Context, path string, req CreatePaymentRequest) (TokenPaymentResponse, error) {
	reference := req.Reference
	if err := c.hooks.runBeforeSend(ctx, &req); err != nil {
		return TokenPaymentResponse{}, fmt.Errorf("before-send hook: %w", err)
	}
	if req.Reference != reference {
		return TokenPaymentResponse{}, fmt.Errorf("%w: %q became %q", ErrReferenceMutated, reference, req.Reference)
	}

	header := NewHeader(http.MethodPost, c.creds, c.algorithm, WithPlatform(c.platform))

	var out TokenPaymentResponse
	if err := c.do(ctx, header, path, req, &out); err != nil {
		return TokenPaymentResponse{}, err
	}
	return out, nil
}

// TokenCommit settles a previously placed authorization hold.
func (c *Client) TokenCommit(ctx context.Context, transactionID string, req CreatePaymentRequest) (TokenPaymentResponse, error) {
	header := NewHeader(http.MethodPost, c.creds, c.algorithm,
		WithPlatform(c.platform), WithTransactionID(transactionID))

	var out TokenPaymentResponse
	if err := c.do(ctx, header, "/payments/"+transactionID+"/token/commit", req, &out); err != nil {
		return TokenPaymentResponse{}, err
	}
	return out, nil
}

// TokenRevert releases a previously placed authorization hold.
func (c *Client) TokenRevert(ctx context.Context, transactionID string) (TokenPaymentResponse, error) {
	header := NewHeader(http.MethodPost, c.creds, c.algorithm,
		WithPlatform(c.platform), WithTransactionID(transactionID))

	var out TokenPaymentResponse
	if err := c.do(ctx, header, "/payments/"+transactionID+"/token/revert", nil, &out); err != nil {
		return TokenPaymentResponse{}, err
	}
	return out, nil
}

// do signs and executes one API call. Any transport failure or non-2xx
// status surfaces as a gateway-unavailable error for the caller to translate
// at its boundary; it is never swallowed.
func (c *Client) do(ctx context.Context, header Header, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	fields := header.Fields()
	signature, err := c.signer.Sign(fields, body)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, header.Method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, v := range fields {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(SignatureField, signature)
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrGatewayUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", apperror.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: provider %s: %s", apperror.ErrGatewayUnavailable, resp.Status, string(raw))
	}

	if err := c.verifyResponse(resp, raw); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", apperror.ErrGatewayUnavailable, err)
		}
	}
	return nil
}

// verifyResponse authenticates the response before any of its fields are
// trusted.
func (c *Client) verifyResponse(resp *http.Response, raw []byte) error {
	fields := Flatten(resp.Header)
	if err := c.signer.Verify(fields, raw, fields[SignatureField]); err != nil {
		return fmt.Errorf("response authentication: %w", err)
	}
	return nil
}

package paytrail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/pkg/logger"
)

// providerStub verifies inbound request signatures and signs its responses
// the way the real API does.
func providerStub(t *testing.T, handler func(r *http.Request, body []byte) (int, any)) *httptest.Server {
	t.Helper()
	signer := NewHmacSigner(testSecret)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		fields := Flatten(r.Header)
		require.NoError(t, signer.Verify(fields, body, fields[SignatureField]),
			"inbound request must be signed")

		status, payload := handler(r, body)
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		respFields := map[string]string{
			"checkout-account":   fields["checkout-account"],
			"checkout-algorithm": fields["checkout-algorithm"],
		}
		signature, err := signer.Sign(respFields, raw)
		require.NoError(t, err)

		for k, v := range respFields {
			w.Header().Set(k, v)
		}
		w.Header().Set(SignatureField, signature)
		w.WriteHeader(status)
		_, _ = w.Write(raw)
	}))
}

func testClient(baseURL string, hooks *Hooks) *Client {
	return NewClient(logger.New("error"), ClientConfig{
		BaseURL:     baseURL,
		Credentials: Credentials{Account: "375917", Secret: testSecret},
		Algorithm:   AlgorithmSHA256,
	}, hooks)
}

func TestClient_CreatePayment(t *testing.T) {
	t.Run("should sign the request and trust a signed response", func(t *testing.T) {
		// given
		server := providerStub(t, func(r *http.Request, body []byte) (int, any) {
			assert.Equal(t, "/payments", r.URL.Path)

			var req CreatePaymentRequest
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "42", req.Reference)

			return http.StatusCreated, CreatePaymentResponse{
				TransactionID: "tx-1",
				Href:          "https://pay.example.com/tx-1",
				Reference:     req.Reference,
			}
		})
		defer server.Close()
		client := testClient(server.URL, nil)

		// when
		resp, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
			Stamp: "stamp-1", Reference: "42", Amount: 2200, Currency: "EUR",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "tx-1", resp.TransactionID)
		assert.Equal(t, "https://pay.example.com/tx-1", resp.Href)
	})

	t.Run("should reject a response with a bad signature", func(t *testing.T) {
		// given a server that signs nothing
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(CreatePaymentResponse{TransactionID: "tx-1"})
		}))
		defer server.Close()
		client := testClient(server.URL, nil)

		// when
		_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{Reference: "42"})

		// then
		assert.ErrorIs(t, err, apperror.ErrSignatureMismatch)
	})

	t.Run("should surface a non-2xx as gateway unavailable", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()
		client := testClient(server.URL, nil)

		// when
		_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{Reference: "42"})

		// then
		assert.ErrorIs(t, err, apperror.ErrGatewayUnavailable)
	})

	t.Run("should let before-send hooks enrich the request", func(t *testing.T) {
		// given
		hooks := NewHooks()
		hooks.OnBeforeSend(func(_ context.Context, req *CreatePaymentRequest) error {
			req.Language = "FI"
			return nil
		})

		var sawLanguage string
		server := providerStub(t, func(_ *http.Request, body []byte) (int, any) {
			var req CreatePaymentRequest
			require.NoError(t, json.Unmarshal(body, &req))
			sawLanguage = req.Language
			return http.StatusCreated, CreatePaymentResponse{TransactionID: "tx-1", Reference: req.Reference}
		})
		defer server.Close()
		client := testClient(server.URL, hooks)

		// when
		_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{Reference: "42"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "FI", sawLanguage)
	})

	t.Run("should refuse a hook that mutates the reference", func(t *testing.T) {
		// given
		hooks := NewHooks()
		hooks.OnBeforeSend(func(_ context.Context, req *CreatePaymentRequest) error {
			req.Reference = "something-else"
			return nil
		})
		client := testClient("http://unreachable.invalid", hooks)

		// when
		_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{Reference: "42"})

		// then
		assert.ErrorIs(t, err, ErrReferenceMutated)
	})

	t.Run("should run after-create hooks with the provider response", func(t *testing.T) {
		// given
		var sawTransaction string
		hooks := NewHooks()
		hooks.OnAfterCreate(func(_ context.Context, _ CreatePaymentRequest, resp *CreatePaymentResponse) error {
			sawTransaction = resp.TransactionID
			return nil
		})
		server := providerStub(t, func(_ *http.Request, _ []byte) (int, any) {
			return http.StatusCreated, CreatePaymentResponse{TransactionID: "tx-7"}
		})
		defer server.Close()
		client := testClient(server.URL, hooks)

		// when
		_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{Reference: "42"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "tx-7", sawTransaction)
	})
}

func TestClient_GetPayment(t *testing.T) {
	t.Run("should address the transaction and send its id header", func(t *testing.T) {
		// given
		server := providerStub(t, func(r *http.Request, _ []byte) (int, any) {
			assert.Equal(t, "/payments/tx-9", r.URL.Path)
			assert.Equal(t, "tx-9", r.Header.Get("checkout-transaction-id"))
			return http.StatusOK, PaymentStatus{TransactionID: "tx-9", Status: "ok", Amount: 2200, Currency: "EUR"}
		})
		defer server.Close()
		client := testClient(server.URL, nil)

		// when
		status, err := client.GetPayment(context.Background(), "tx-9")

		// then
		require.NoError(t, err)
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, int64(2200), status.Amount)
	})
}

package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalz06/btf-website/internal/model"
)

const testSecret = "whsec_test"

type serviceStub struct {
	gotEvent *model.PaymentEvent
	err      error
}

func (s *serviceStub) ProcessPaymentEvent(_ context.Context, event model.PaymentEvent) error {
	s.gotEvent = &event
	return s.err
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

const capturedBody = `{
	"event": "payment.captured",
	"payload": {
		"payment": {
			"entity": {
				"id": "pay_abc",
				"order_id": "order_xyz",
				"notes": {
					"name": "Alice",
					"teamNumber": "12",
					"email": "alice@example.com",
					"participantType": "team"
				}
			}
		}
	}
}`

func TestHandlePaymentWebhook(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		body      string
		signature func(body []byte) string
		svcErr    error
		assert    func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub)
	}

	tests := []testCase{
		{
			name: "valid signature dispatches parsed event",
			body: capturedBody,
			signature: func(body []byte) string {
				return sign(testSecret, body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

				require.NotNil(t, svc.gotEvent)
				assert.Equal(t, model.EventPaymentCaptured, svc.gotEvent.Event)
				assert.Equal(t, "pay_abc", svc.gotEvent.PaymentID)
				assert.Equal(t, "order_xyz", svc.gotEvent.OrderID)
				assert.Equal(t, "Alice", svc.gotEvent.Details.Name)
				assert.Equal(t, int64(12), svc.gotEvent.Details.TeamNumber)
				assert.Equal(t, "alice@example.com", svc.gotEvent.Details.Email)
			},
		},
		{
			name: "tampered body is acked without dispatch",
			body: capturedBody,
			signature: func(body []byte) string {
				tampered := bytes.Replace(body, []byte("Alice"), []byte("Mallory"), 1)
				return sign(testSecret, tampered)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name: "missing signature header is acked without dispatch",
			body: capturedBody,
			signature: func([]byte) string {
				return ""
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name: "wrong secret is acked without dispatch",
			body: capturedBody,
			signature: func(body []byte) string {
				return sign("whsec_other", body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name: "non-captured event is acked without dispatch",
			body: `{"event":"payment.authorized","payload":{"payment":{"entity":{"id":"pay_1"}}}}`,
			signature: func(body []byte) string {
				return sign(testSecret, body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name: "malformed json fails with 500",
			body: `{"event": "payment.captured"`,
			signature: func(body []byte) string {
				return sign(testSecret, body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), "Webhook processing error.")
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name: "non-integer teamNumber fails with 500",
			body: `{
				"event": "payment.captured",
				"payload": {"payment": {"entity": {
					"id": "pay_abc",
					"order_id": "order_xyz",
					"notes": {"name": "Alice", "teamNumber": "twelve", "email": "alice@example.com"}
				}}}
			}`,
			signature: func(body []byte) string {
				return sign(testSecret, body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Nil(t, svc.gotEvent)
			},
		},
		{
			name:   "service failure surfaces as 500 so the provider retries",
			body:   capturedBody,
			svcErr: errors.New("mongo down"),
			signature: func(body []byte) string {
				return sign(testSecret, body)
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, svc *serviceStub) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), "Webhook processing error.")
				require.NotNil(t, svc.gotEvent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &serviceStub{err: tt.svcErr}
			h := NewWebhookHandler(svc, testSecret)

			body := []byte(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook", bytes.NewReader(body))
			if sig := tt.signature(body); sig != "" {
				req.Header.Set(signatureHeader, sig)
			}
			rec := httptest.NewRecorder()

			h.HandlePaymentWebhook(rec, req)
			tt.assert(t, rec, svc)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	body := []byte(`{"event":"payment.captured"}`)

	assert.True(t, VerifySignature(testSecret, body, sign(testSecret, body)))
	assert.False(t, VerifySignature(testSecret, body, ""))
	assert.False(t, VerifySignature(testSecret, body, sign("other", body)))
	assert.False(t, VerifySignature(testSecret, append(body, '!'), sign(testSecret, body)))

	// A single flipped hex digit must not verify.
	sig := []byte(sign(testSecret, body))
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}
	assert.False(t, VerifySignature(testSecret, body, string(sig)))
}

package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ConfirmPayment(ctx context.Context, eventID, email, planName string, amountMinorUnits int64) error {
	args := m.Called(ctx, eventID, email, planName, amountMinorUnits)
	return args.Error(0)
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

const chargeSuccessPayload = `{
	"event": "charge.success",
	"data": {
		"id": 302212345,
		"reference": "ref-abc",
		"amount": 500000,
		"customer": {"email": "acme@x.com"},
		"plan": {"name": "Gold"}
	}
}`

func TestWebhookHandler_ChargeSuccess(t *testing.T) {
	paymentSvc := new(MockPaymentService)
	handler := NewWebhookHandler("whsec", paymentSvc)

	paymentSvc.On("ConfirmPayment", mock.Anything, "302212345", "acme@x.com", "Gold", int64(500000)).
		Return(nil).Once()

	body := []byte(chargeSuccessPayload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set("X-Paystack-Signature", signBody("whsec", body))
	rec := httptest.NewRecorder()

	handler.HandlePaystackWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"processed"}`, rec.Body.String())
	paymentSvc.AssertExpectations(t)
}

func TestWebhookHandler_BadSignatureAcknowledgedAndDropped(t *testing.T) {
	paymentSvc := new(MockPaymentService)
	handler := NewWebhookHandler("whsec", paymentSvc)

	body := []byte(chargeSuccessPayload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set("X-Paystack-Signature", "deadbeef")
	rec := httptest.NewRecorder()

	handler.HandlePaystackWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	paymentSvc.AssertNotCalled(t, "ConfirmPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhookHandler_MissingSignature(t *testing.T) {
	paymentSvc := new(MockPaymentService)
	handler := NewWebhookHandler("whsec", paymentSvc)

	body := []byte(chargeSuccessPayload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/paystack", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandlePaystackWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	paymentSvc.AssertNotCalled(t, "ConfirmPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhookHandler_OtherEventIgnored(t *testing.T) {
	paymentSvc := new(MockPaymentService)
	handler := NewWebhookHandler("whsec", paymentSvc)

	body := []byte(`{"event": "subscription.create", "data": {"id": 1}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set("X-Paystack-Signature", signBody("whsec", body))
	rec := httptest.NewRecorder()

	handler.HandlePaystackWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
	paymentSvc.AssertNotCalled(t, "ConfirmPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhookHandler_ServiceFailure(t *testing.T) {
	paymentSvc := new(MockPaymentService)
	handler := NewWebhookHandler("whsec", paymentSvc)

	paymentSvc.On("ConfirmPayment", mock.Anything, "302212345", "acme@x.com", "Gold", int64(500000)).
		Return(assert.AnError).Once()

	body := []byte(chargeSuccessPayload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/paystack", bytes.NewReader(body))
	req.Header.Set("X-Paystack-Signature", signBody("whsec", body))
	rec := httptest.NewRecorder()

	handler.HandlePaystackWebhook(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package http

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"assochub-backend/internal/logger"
	"assochub-backend/internal/service"
)

// WebhookHandler ingests signed payment events from the processor.
type WebhookHandler struct {
	secret     string
	paymentSvc service.PaymentService
}

func NewWebhookHandler(secret string, paymentSvc service.PaymentService) *WebhookHandler {
	return &WebhookHandler{secret: secret, paymentSvc: paymentSvc}
}

type paystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		ID        int64  `json:"id"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
		Plan struct {
			Name string `json:"name"`
		} `json:"plan"`
	} `json:"data"`
}

// HandlePaystackWebhook verifies the signature and dispatches the event.
// Events with a bad signature are acknowledged and dropped; the processor is
// never asked to retry them.
func (h *WebhookHandler) HandlePaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if !h.verifySignature(r.Header.Get("X-Paystack-Signature"), body) {
		logger.Warn("Payment webhook signature mismatch, event ignored")
		w.WriteHeader(http.StatusOK)
		return
	}

	var event paystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid webhook payload")
		return
	}

	switch event.Event {
	case "charge.success":
		eventID := strconv.FormatInt(event.Data.ID, 10)
		err := h.paymentSvc.ConfirmPayment(r.Context(), eventID,
			event.Data.Customer.Email, event.Data.Plan.Name, event.Data.Amount)
		if err != nil {
			logger.ErrorContext(r.Context(), "Failed to process payment event",
				"event_id", eventID, "reference", event.Data.Reference, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to process event")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "processed"})
	default:
		logger.Debug("Unhandled payment event type", "event", event.Event)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
	}
}

// verifySignature checks the HMAC-SHA512 hex digest of the raw body against
// the signature header.
func (h *WebhookHandler) verifySignature(signature string, body []byte) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

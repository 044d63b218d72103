package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"assochub-backend/internal/logger"
	"assochub-backend/internal/service"
)

// RegistrationHandler exposes the membership approval pipeline transitions.
type RegistrationHandler struct {
	regSvc service.RegistrationService
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

type refereeDecisionRequest struct {
	RefereeID int32 `json:"referee_id"`
}

type staffDecisionRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// HandleRefereeConfirm records a referee's confirmation for an applicant.
func (h *RegistrationHandler) HandleRefereeConfirm(w http.ResponseWriter, r *http.Request) {
	h.refereeDecision(w, r, true)
}

// HandleRefereeReject records a referee's rejection for an applicant.
func (h *RegistrationHandler) HandleRefereeReject(w http.ResponseWriter, r *http.Request) {
	h.refereeDecision(w, r, false)
}

func (h *RegistrationHandler) refereeDecision(w http.ResponseWriter, r *http.Request, confirm bool) {
	applicantID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	var req refereeDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefereeID <= 0 {
		writeError(w, http.StatusBadRequest, "referee_id is required")
		return
	}

	if err := h.regSvc.RefereeDecide(r.Context(), applicantID, req.RefereeID, confirm); err != nil {
		h.writeTransitionError(w, r, "referee", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// HandleVerifierDecision records a staff verification decision.
func (h *RegistrationHandler) HandleVerifierDecision(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	var req staffDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var verify bool
	switch req.Decision {
	case "verify":
		verify = true
	case "reject":
		verify = false
	default:
		writeError(w, http.StatusBadRequest, "decision must be 'verify' or 'reject'")
		return
	}

	if err := h.regSvc.VerifierDecide(r.Context(), applicantID, verify, req.Reason); err != nil {
		h.writeTransitionError(w, r, "verification", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// HandleApproverDecision records the final approval decision.
func (h *RegistrationHandler) HandleApproverDecision(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	var req staffDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var approve bool
	switch req.Decision {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		writeError(w, http.StatusBadRequest, "decision must be 'approve' or 'reject'")
		return
	}

	if err := h.regSvc.ApproverDecide(r.Context(), applicantID, approve, req.Reason); err != nil {
		h.writeTransitionError(w, r, "approval", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *RegistrationHandler) writeTransitionError(w http.ResponseWriter, r *http.Request, stage string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrUnknownReferee):
		writeError(w, http.StatusUnprocessableEntity, "referee is not nominated by this applicant")
	case errors.Is(err, service.ErrMissingReason):
		writeError(w, http.StatusBadRequest, "rejection reason is required")
	case errors.Is(err, service.ErrRefereesPending):
		writeError(w, http.StatusConflict, "both referees must confirm first")
	default:
		logger.ErrorContext(r.Context(), "Registration transition failed", "stage", stage, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

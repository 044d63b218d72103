package http

import (
	"errors"
	"net/http"
	"strconv"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/service"
)

// MemberHandler exposes the staff-facing queues and member queries.
type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

type memberListResponse struct {
	Members []domain.Member `json:"members"`
	Total   int32           `json:"total"`
}

// HandleGetMember returns a single member record.
func (h *MemberHandler) HandleGetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	member, err := h.memberSvc.GetMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// HandlePendingVerification lists applicants waiting on a verifier.
func (h *MemberHandler) HandlePendingVerification(w http.ResponseWriter, r *http.Request) {
	h.listByStage(w, r, domain.StageAwaitingVerification)
}

// HandlePendingApproval lists applicants waiting on an approver.
func (h *MemberHandler) HandlePendingApproval(w http.ResponseWriter, r *http.Request) {
	h.listByStage(w, r, domain.StageAwaitingApproval)
}

func (h *MemberHandler) listByStage(w http.ResponseWriter, r *http.Request, stage int32) {
	page, pageSize := pagination(r)
	members, total, err := h.memberSvc.ListByStage(r.Context(), stage, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, memberListResponse{Members: members, Total: total})
}

type ledgerListResponse struct {
	Entries []domain.LedgerEntry `json:"entries"`
	Total   int32                `json:"total"`
}

// HandleMemberLedger returns a member's payment history.
func (h *MemberHandler) HandleMemberLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	page, pageSize := pagination(r)
	entries, total, err := h.memberSvc.ListLedger(r.Context(), id, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, ledgerListResponse{Entries: entries, Total: total})
}

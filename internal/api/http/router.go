package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/security"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Registration *RegistrationHandler
	Members      *MemberHandler
	Webhook      *WebhookHandler
	TokenManager security.TokenManager
	DB           *sql.DB
}

// NewRouter wires all routes. The webhook endpoint authenticates by
// signature, everything else staff-facing requires a bearer token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.PingContext(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.HandleFunc("/api/v1/webhooks/paystack", deps.Webhook.HandlePaystackWebhook).Methods("POST")

	// Referee decisions arrive from members, not staff; the service layer
	// validates the acting referee against the applicant's nominations.
	router.HandleFunc("/api/v1/applicants/{id}/referee-confirmation", deps.Registration.HandleRefereeConfirm).Methods("POST")
	router.HandleFunc("/api/v1/applicants/{id}/referee-rejection", deps.Registration.HandleRefereeReject).Methods("POST")

	staff := router.PathPrefix("/api/v1").Subrouter()
	staff.Use(AuthMiddleware(deps.TokenManager))
	staff.HandleFunc("/applicants/{id}/verification",
		RequireRole(domain.StaffRoleVerifier, deps.Registration.HandleVerifierDecision)).Methods("POST")
	staff.HandleFunc("/applicants/{id}/approval",
		RequireRole(domain.StaffRoleApprover, deps.Registration.HandleApproverDecision)).Methods("POST")
	staff.HandleFunc("/applicants/pending-verification",
		RequireRole(domain.StaffRoleVerifier, deps.Members.HandlePendingVerification)).Methods("GET")
	staff.HandleFunc("/applicants/pending-approval",
		RequireRole(domain.StaffRoleApprover, deps.Members.HandlePendingApproval)).Methods("GET")
	staff.HandleFunc("/members/{id}", deps.Members.HandleGetMember).Methods("GET")
	staff.HandleFunc("/members/{id}/ledger", deps.Members.HandleMemberLedger).Methods("GET")

	return router
}

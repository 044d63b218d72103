package domain

const (
	AuditCategoryRegistration = "REGISTRATION"
	AuditCategoryVerification = "VERIFICATION"
	AuditCategoryApproval     = "APPROVAL"
)

// AuditEntry records a forward transition of the registration pipeline.
// Rejections are deliberately not audited.
type AuditEntry struct {
	ID            int32  `json:"id"`
	Category      string `json:"category"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
	CreatedOn     string `json:"created_on"`
}

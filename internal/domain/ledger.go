package domain

type PaymentPurpose string

const (
	PaymentPurposeMembership   PaymentPurpose = "MEMBERSHIP"
	PaymentPurposeDonation     PaymentPurpose = "DONATION"
	PaymentPurposeEvent        PaymentPurpose = "EVENT"
	PaymentPurposeTraining     PaymentPurpose = "TRAINING"
	PaymentPurposeRegistration PaymentPurpose = "REGISTRATION"
)

type LedgerEntry struct {
	ID       int32          `json:"id"`
	MemberID int32          `json:"member_id"`
	Amount   int64          `json:"amount"` // processor amount with two trailing digits stripped
	Purpose  PaymentPurpose `json:"purpose"`
	Plan     string         `json:"plan,omitempty"`

	// Reference is our own correlation id; EventID is the processor's
	// event id and doubles as the webhook idempotency key.
	Reference string  `json:"reference"`
	EventID   *string `json:"event_id,omitempty"`

	Description string `json:"description"`
	CreatedOn   string `json:"created_on"`
}

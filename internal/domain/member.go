package domain

// RefereeDecision tracks what a nominated referee has done for an applicant.
// PENDING means the referee has not acted yet.
type RefereeDecision string

const (
	RefereeDecisionPending   RefereeDecision = "PENDING"
	RefereeDecisionConfirmed RefereeDecision = "CONFIRMED"
	RefereeDecisionRejected  RefereeDecision = "REJECTED"
)

type MembershipStatus string

const (
	MembershipStatusInactive MembershipStatus = "INACTIVE"
	MembershipStatusActive   MembershipStatus = "ACTIVE"
)

type FeeStatus string

const (
	FeeStatusUnpaid FeeStatus = "UNPAID"
	FeeStatusPaid   FeeStatus = "PAID"
)

// Registration stage checkpoints. The stage only ever moves forward;
// rejections record a reason and leave the stage where it is.
const (
	StageNew                  int32 = 0
	StageAwaitingReferees     int32 = 2
	StageAwaitingVerification int32 = 4
	StageAwaitingApproval     int32 = 5
	StageApproved             int32 = 6
)

type Member struct {
	ID          int32  `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`

	// Referee emails are nominated at creation and immutable afterwards.
	Referee1Email    string          `json:"referee1_email"`
	Referee2Email    string          `json:"referee2_email"`
	Referee1Decision RefereeDecision `json:"referee1_decision"`
	Referee2Decision RefereeDecision `json:"referee2_decision"`

	Verified                bool   `json:"verified"`
	VerifiedRejectionReason string `json:"verified_rejection_reason,omitempty"`
	Approved                bool   `json:"approved"`
	ApprovedRejectionReason string `json:"approved_rejection_reason,omitempty"`

	RegistrationStage int32            `json:"registration_stage"`
	MembershipID      *string          `json:"membership_id,omitempty"` // set iff Approved
	MembershipStatus  MembershipStatus `json:"membership_status"`
	MembershipPlan    string           `json:"membership_plan,omitempty"`
	FeeStatus         FeeStatus        `json:"fee_status"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// BothRefereesConfirmed reports whether the applicant has cleared the
// referee gate and may be handed to a verifier.
func (m *Member) BothRefereesConfirmed() bool {
	return m.Referee1Decision == RefereeDecisionConfirmed && m.Referee2Decision == RefereeDecisionConfirmed
}

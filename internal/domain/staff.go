package domain

type StaffRole string

const (
	StaffRoleVerifier StaffRole = "VERIFIER"
	StaffRoleApprover StaffRole = "APPROVER"
	StaffRoleAdmin    StaffRole = "ADMIN"
)

type StaffAccount struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      StaffRole `json:"role"`
	CreatedOn string    `json:"created_on"`
}

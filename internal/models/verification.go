package models

type VerificationStatus string

const (
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
	VerificationStatusPending  VerificationStatus = "pending"
)

// VerificationRecord is an identity-verification submission and its
// adjudication. Image fields hold opaque references (base64 data or URIs);
// the backend never decodes them.
//
// Date fields are date-only strings ("2006-01-02") because the client
// displays them verbatim.
type VerificationRecord struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	UserEmail      string             `json:"userEmail"`
	UserName       string             `json:"userName"`
	DocumentType   string             `json:"documentType"`
	DocumentNumber string             `json:"documentNumber"`
	Country        string             `json:"country"`
	FrontImage     string             `json:"frontImage"`
	BackImage      string             `json:"backImage"`
	SelfieImage    string             `json:"selfieImage"`
	Status         VerificationStatus `json:"status"`
	SubmittedDate  string             `json:"submittedDate"`
	ApprovedDate   string             `json:"approvedDate,omitempty"`
	RejectedDate   string             `json:"rejectedDate,omitempty"`
	AdminNotes     string             `json:"adminNotes,omitempty"`
}

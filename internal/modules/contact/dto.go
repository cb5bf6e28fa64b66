package contact

import (
	"time"

	"marketingsite/internal/domain"
)

type SubmitForm struct {
	CompanyName    string `form:"company_name" json:"company_name"`
	NumEmployees   string `form:"num_employees" json:"num_employees"`
	FirstName      string `form:"first_name" json:"first_name" binding:"required"`
	LastName       string `form:"last_name" json:"last_name" binding:"required"`
	BusinessEmail  string `form:"business_email" json:"business_email" binding:"required,email"`
	PhoneNumber    string `form:"phone_number" json:"phone_number"`
	ReferralSource string `form:"referral_source" json:"referral_source"`
	Message        string `form:"message" json:"message" binding:"required"`
	ServicesNeeded string `form:"services_needed" json:"services_needed" binding:"required"`
}

type SubmissionResponse struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"company_name"`
	NumEmployees   string    `json:"num_employees"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BusinessEmail  string    `json:"business_email"`
	PhoneNumber    string    `json:"phone_number"`
	ReferralSource string    `json:"referral_source"`
	Message        string    `json:"message"`
	ServicesNeeded string    `json:"services_needed"`
	SubmissionDate time.Time `json:"submission_date"`
}

func NewSubmissionResponse(s *domain.ContactSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:             s.ID,
		CompanyName:    s.CompanyName,
		NumEmployees:   s.NumEmployees,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		BusinessEmail:  s.BusinessEmail,
		PhoneNumber:    s.PhoneNumber,
		ReferralSource: s.ReferralSource,
		Message:        s.Message,
		ServicesNeeded: s.ServicesNeeded,
		SubmissionDate: s.SubmissionDate,
	}
}

// LeadEvent is pushed to websocket subscribers when a new submission lands.
type LeadEvent struct {
	Type       string             `json:"type"`
	Submission SubmissionResponse `json:"submission"`
}

func NewLeadEvent(s *domain.ContactSubmission) LeadEvent {
	return LeadEvent{Type: "new_submission", Submission: NewSubmissionResponse(s)}
}

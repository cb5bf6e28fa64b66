package domain

import "time"

// ContactSubmission is a lead from the public contact form. It has no owner;
// anyone can submit, reading requires authentication.
type ContactSubmission struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	CompanyName    string    `json:"company_name" gorm:"size:100"`
	NumEmployees   string    `json:"num_employees" gorm:"size:50"`
	FirstName      string    `json:"first_name" gorm:"size:50;not null"`
	LastName       string    `json:"last_name" gorm:"size:50;not null"`
	BusinessEmail  string    `json:"business_email" gorm:"size:100;not null"`
	PhoneNumber    string    `json:"phone_number" gorm:"size:20"`
	ReferralSource string    `json:"referral_source" gorm:"size:100"`
	Message        string    `json:"message" gorm:"type:text;not null"`
	ServicesNeeded string    `json:"services_needed" gorm:"size:200;not null"`
	SubmissionDate time.Time `json:"submission_date" gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

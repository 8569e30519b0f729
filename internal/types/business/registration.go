package business

import (
	"time"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/google/uuid"
)

// Registration associates a registrant with a course and a chosen subset of
// its sessions. The final fee is computed once at creation or update and
// stored, never recomputed lazily.
type Registration struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	SelectedSessionIDs []uuid.UUID             `json:"selected_session_ids"`
	PaymentMethod      constants.PaymentMethod `json:"payment_method"`
	Discount           bool                    `json:"discount"`
	DanMember          bool                    `json:"dan_member"`

	Exam      bool             `json:"exam"`
	ExamGrade *constants.Grade `json:"exam_grade,omitempty"`

	AccommodationOption *AccommodationOption `json:"accommodation_option,omitempty"`

	FinalFeeCents int64  `json:"final_fee_cents"`
	PaymentStatus string `json:"payment_status"`

	Attended    bool       `json:"attended"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCancelled reports whether the registration has been cancelled
func (r *Registration) IsCancelled() bool {
	return r.CancelledAt != nil
}

// RegistrationConfirmation is the payload handed to the notification
// collaborator after a registration is stored. Delivery mechanics live
// outside this module.
type RegistrationConfirmation struct {
	RegistrationID uuid.UUID               `json:"registration_id"`
	Email          string                  `json:"email"`
	CourseName     string                  `json:"course_name"`
	FinalFee       string                  `json:"final_fee"`
	PaymentMethod  constants.PaymentMethod `json:"payment_method"`
	BankAccount    string                  `json:"bank_account,omitempty"`
	SiteURL        string                  `json:"site_url"`
}

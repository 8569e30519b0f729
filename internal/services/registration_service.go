package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aikidobw/seminar-api/internal/config"
	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/helpers"
	"github.com/aikidobw/seminar-api/internal/interfaces"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RegistrationService is the in-process workflow around the fee engine:
// it validates the session selection, computes and stores the final fee,
// applies exam advancement and hands the confirmation to the notification
// collaborator.
type RegistrationService struct {
	store      interfaces.RegistrationStore
	notifier   interfaces.NotificationSender
	calculator *FeeCalculatorService
	feeTable   *FeeTableService
	exams      *ExamService
	settings   config.Settings
	logger     *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	store interfaces.RegistrationStore,
	notifier interfaces.NotificationSender,
	feeTable *FeeTableService,
	settings config.Settings,
) *RegistrationService {
	return &RegistrationService{
		store:      store,
		notifier:   notifier,
		calculator: NewFeeCalculatorService(feeTable),
		feeTable:   feeTable,
		exams:      NewExamService(),
		settings:   settings,
		logger:     logger.Log,
	}
}

// CreateRegistrationParams contains parameters for creating a registration
type CreateRegistrationParams struct {
	Course                *business.Course
	FirstName             string
	LastName              string
	Email                 string
	SelectedSessionIDs    []uuid.UUID
	PaymentMethod         constants.PaymentMethod
	Discount              bool
	DanMember             bool
	Exam                  bool
	CurrentGrade          constants.Grade
	AccommodationOptionID *uuid.UUID
}

// CreateRegistration creates a registration for a course: the fee is
// computed once here and persisted on the registration. A missing price
// point rejects the registration; the course cannot accept registrations
// until the fee entry exists.
func (s *RegistrationService) CreateRegistration(ctx context.Context, params CreateRegistrationParams) (*business.Registration, error) {
	course := params.Course

	selected, ok := course.SessionsByID(params.SelectedSessionIDs)
	if !ok || len(selected) == 0 {
		return nil, errors.Wrap(ErrInvalidSessionSelection, "selected sessions must be a non-empty subset of the course")
	}

	registration := &business.Registration{
		ID:                 uuid.New(),
		CourseID:           course.ID,
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		Email:              params.Email,
		SelectedSessionIDs: params.SelectedSessionIDs,
		PaymentMethod:      params.PaymentMethod,
		Discount:           params.Discount,
		DanMember:          params.DanMember,
		Exam:               params.Exam,
		PaymentStatus:      constants.PaymentStatusOpen,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if params.AccommodationOptionID != nil {
		option := course.AccommodationOptionByID(*params.AccommodationOptionID)
		if option == nil {
			return nil, errors.Errorf("accommodation option %s does not belong to course %s",
				params.AccommodationOptionID, course.ID)
		}
		registration.AccommodationOption = option
	}

	fee, err := s.calculator.CalculateFee(course, registration, selected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate registration fee")
	}
	registration.FinalFeeCents = fee

	s.exams.ApplyExam(registration, params.CurrentGrade)

	if err := s.store.CreateRegistration(ctx, registration); err != nil {
		return nil, errors.Wrap(err, "failed to store registration")
	}

	s.logger.Info("Created registration",
		zap.String("registration_id", registration.ID.String()),
		zap.String("course_id", course.ID.String()),
		zap.Int64("final_fee_cents", registration.FinalFeeCents))

	// Confirmation delivery is best effort; the registration stands even
	// if the notifier fails
	if err := s.notifier.SendRegistrationConfirmation(ctx, s.buildConfirmation(course, registration)); err != nil {
		s.logger.Warn("Failed to send registration confirmation",
			zap.String("registration_id", registration.ID.String()),
			zap.Error(err))
	}

	return registration, nil
}

// UpdateRegistration recomputes the fee and exam advancement for a changed
// registration and persists it. This is the only path besides creation that
// recomputes the fee.
func (s *RegistrationService) UpdateRegistration(ctx context.Context, course *business.Course, registration *business.Registration, currentGrade constants.Grade) error {
	selected, ok := course.SessionsByID(registration.SelectedSessionIDs)
	if !ok || len(selected) == 0 {
		return errors.Wrap(ErrInvalidSessionSelection, "selected sessions must be a non-empty subset of the course")
	}

	fee, err := s.calculator.CalculateFee(course, registration, selected)
	if err != nil {
		return errors.Wrap(err, "failed to recalculate registration fee")
	}
	registration.FinalFeeCents = fee
	registration.UpdatedAt = time.Now()

	s.exams.ApplyExam(registration, currentGrade)

	if err := s.store.UpdateRegistration(ctx, registration); err != nil {
		return errors.Wrap(err, "failed to store registration update")
	}
	return nil
}

// CancelRegistration marks a registration as cancelled. The stored fee is
// left as computed; cancellation never re-triggers fee calculation.
func (s *RegistrationService) CancelRegistration(ctx context.Context, id uuid.UUID) error {
	registration, err := s.store.GetRegistration(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to load registration")
	}
	if registration.IsCancelled() {
		return nil
	}

	now := time.Now()
	registration.CancelledAt = &now
	registration.UpdatedAt = now

	if err := s.store.UpdateRegistration(ctx, registration); err != nil {
		return errors.Wrap(err, "failed to store cancellation")
	}

	s.logger.Info("Cancelled registration", zap.String("registration_id", id.String()))
	return nil
}

// MarkAttended records attendance on a registration. Attendance marking
// never re-triggers fee calculation.
func (s *RegistrationService) MarkAttended(ctx context.Context, id uuid.UUID) error {
	registration, err := s.store.GetRegistration(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to load registration")
	}

	registration.Attended = true
	registration.UpdatedAt = time.Now()

	if err := s.store.UpdateRegistration(ctx, registration); err != nil {
		return errors.Wrap(err, "failed to store attendance")
	}
	return nil
}

// FeeQuote is one display-mode price line for a course
type FeeQuote struct {
	FeeType     constants.FeeType `json:"fee_type"`
	Label       string            `json:"label"`
	AmountCents int64             `json:"amount_cents"`
	Amount      string            `json:"amount"`
}

// QuoteFees lists the potential fees of a course per fee type for display,
// composed for the given payment method and membership. Fee types without a
// price point are quoted at zero rather than failing; only the committing
// path treats a missing entry as an error.
func (s *RegistrationService) QuoteFees(course *business.Course, method constants.PaymentMethod, isDanMember bool) []FeeQuote {
	feeTypes := constants.FeeTypesForCategory(course.FeeCategory)
	quotes := make([]FeeQuote, 0, len(feeTypes))
	for _, feeType := range feeTypes {
		cents := s.feeTable.GetFee(course.CourseType, course.FeeCategory, feeType, method, isDanMember, 0)
		quotes = append(quotes, FeeQuote{
			FeeType:     feeType,
			Label:       feeType.Label(),
			AmountCents: cents,
			Amount:      helpers.FormatAmount(cents),
		})
	}
	return quotes
}

// buildConfirmation assembles the confirmation payload from the injected
// settings
func (s *RegistrationService) buildConfirmation(course *business.Course, registration *business.Registration) business.RegistrationConfirmation {
	confirmation := business.RegistrationConfirmation{
		RegistrationID: registration.ID,
		Email:          registration.Email,
		CourseName:     course.Name,
		FinalFee:       fmt.Sprintf("%s EUR", helpers.FormatAmount(registration.FinalFeeCents)),
		PaymentMethod:  registration.PaymentMethod,
		SiteURL:        s.settings.SiteURL,
	}
	if registration.PaymentMethod == constants.PaymentMethodBank {
		confirmation.BankAccount = s.settings.BankAccount
	}
	return confirmation
}

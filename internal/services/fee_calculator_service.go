package services

import (
	"errors"
	"fmt"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/helpers"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"go.uber.org/zap"
)

// ErrInvalidSessionSelection is returned when the selection is empty or
// spans sessions that do not belong to the course. The workflow validates
// this before calling the calculator; the calculator re-checks defensively.
var ErrInvalidSessionSelection = errors.New("invalid session selection")

// FeeCalculatorService computes the final fee a registrant owes for a
// course: session-coverage classification, price table lookup, cash and
// non-member surcharges, percentage discount and accommodation add-on.
type FeeCalculatorService struct {
	feeTable   *FeeTableService
	classifier *SessionClassifier
	logger     *zap.Logger
}

// NewFeeCalculatorService creates a new fee calculator service
func NewFeeCalculatorService(feeTable *FeeTableService) *FeeCalculatorService {
	return &FeeCalculatorService{
		feeTable:   feeTable,
		classifier: NewSessionClassifier(),
		logger:     logger.Log,
	}
}

// CalculateFee computes the final fee in cents for a registration.
//
// The discount applies to the course fee and surcharges together; the
// accommodation fee is added after discounting and is never discounted.
// A missing price point is a hard error, never a silent zero.
func (s *FeeCalculatorService) CalculateFee(course *business.Course, registration *business.Registration, selected []business.Session) (int64, error) {
	if err := s.validateSelection(course, selected); err != nil {
		return 0, err
	}

	feeType, err := s.classifier.Classify(course, course.Sessions, selected)
	if err != nil {
		if errors.Is(err, ErrUnpriceableSelection) {
			// No pricing rule covers the selection, so no price point can
			// exist for it either
			return 0, fmt.Errorf("%w: %v", ErrFeeNotFound, err)
		}
		return 0, fmt.Errorf("failed to classify session selection: %w", err)
	}

	entry, err := s.feeTable.Lookup(course.CourseType, course.FeeCategory, feeType)
	if err != nil {
		return 0, err
	}

	var surcharge int64
	if registration.PaymentMethod == constants.PaymentMethodCash {
		surcharge += entry.ExtraFeeCashCents
	}
	if !registration.DanMember {
		surcharge += entry.ExtraFeeExternalCents
	}

	baseTotal := entry.AmountCents + surcharge

	total := baseTotal
	if registration.Discount {
		total = baseTotal - helpers.PercentageAmount(baseTotal, course.DiscountPercentage)
	}

	if registration.AccommodationOption != nil {
		total += registration.AccommodationOption.FeeCents
	}

	s.logger.Debug("Calculated registration fee",
		zap.String("course_id", course.ID.String()),
		zap.String("fee_type", string(feeType)),
		zap.Int64("base_total_cents", baseTotal),
		zap.Int64("final_fee_cents", total))

	return total, nil
}

// validateSelection re-checks the workflow's preconditions: the selection is
// non-empty and every session belongs to the course
func (s *FeeCalculatorService) validateSelection(course *business.Course, selected []business.Session) error {
	if len(selected) == 0 {
		return fmt.Errorf("%w: selection is empty", ErrInvalidSessionSelection)
	}
	for _, session := range selected {
		if course.SessionByID(session.ID) == nil {
			return fmt.Errorf("%w: session %s does not belong to course %s",
				ErrInvalidSessionSelection, session.ID, course.ID)
		}
	}
	return nil
}

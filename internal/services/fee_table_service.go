package services

import (
	"errors"
	"fmt"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"go.uber.org/zap"
)

var (
	// ErrFeeNotFound is returned when no fee entry exists for a lookup key.
	// At commit time this is a hard error; the registration must be
	// rejected, never charged a default of zero.
	ErrFeeNotFound = errors.New("no fee entry found")

	// ErrDuplicateFeeEntry is returned when the seed data carries two
	// entries for the same key
	ErrDuplicateFeeEntry = errors.New("duplicate fee entry")
)

// FeeTableService is the in-memory read side of the association's price
// matrix, keyed by (course type, fee category, fee type). The matrix is
// seeded once by an external batch process; the service never writes it.
type FeeTableService struct {
	entries map[business.FeeKey]business.FeeEntry
	logger  *zap.Logger
}

// NewFeeTableService builds a fee table from seed entries. Uniqueness of the
// (course type, fee category, fee type) key is enforced here, at load time;
// lookups do not re-validate it.
func NewFeeTableService(entries []business.FeeEntry) (*FeeTableService, error) {
	table := make(map[business.FeeKey]business.FeeEntry, len(entries))
	for _, entry := range entries {
		key := entry.Key()
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeeEntry, key)
		}
		if entry.AmountCents < 0 || entry.ExtraFeeCashCents < 0 || entry.ExtraFeeExternalCents < 0 {
			return nil, fmt.Errorf("fee entry %s has a negative amount", key)
		}
		table[key] = entry
	}

	return &FeeTableService{
		entries: table,
		logger:  logger.Log,
	}, nil
}

// Lookup returns the fee entry for the given key, or ErrFeeNotFound
func (s *FeeTableService) Lookup(courseType constants.CourseType, feeCategory constants.FeeCategory, feeType constants.FeeType) (*business.FeeEntry, error) {
	key := business.FeeKey{CourseType: courseType, FeeCategory: feeCategory, FeeType: feeType}
	entry, exists := s.entries[key]
	if !exists {
		return nil, fmt.Errorf("%w for %s", ErrFeeNotFound, key)
	}
	return &entry, nil
}

// GetFee returns the composed fee in cents for display purposes: base amount
// plus the cash surcharge when paying cash and the external surcharge when
// the registrant is not a DAN member. When no entry matches it returns
// defaultCents rather than an error; this variant must not be used on the
// committing path.
func (s *FeeTableService) GetFee(
	courseType constants.CourseType,
	feeCategory constants.FeeCategory,
	feeType constants.FeeType,
	method constants.PaymentMethod,
	isDanMember bool,
	defaultCents int64,
) int64 {
	entry, err := s.Lookup(courseType, feeCategory, feeType)
	if err != nil {
		s.logger.Debug("No fee entry for display lookup, using default",
			zap.String("course_type", string(courseType)),
			zap.String("fee_category", string(feeCategory)),
			zap.String("fee_type", string(feeType)),
			zap.Int64("default_cents", defaultCents))
		return defaultCents
	}

	fee := entry.AmountCents
	if method == constants.PaymentMethodCash {
		fee += entry.ExtraFeeCashCents
	}
	if !isDanMember {
		fee += entry.ExtraFeeExternalCents
	}
	return fee
}

// Len returns the number of entries in the table
func (s *FeeTableService) Len() int {
	return len(s.entries)
}

package business

import (
	"fmt"

	"github.com/aikidobw/seminar-api/internal/constants"
)

// FeeKey is the unique lookup key of a fee entry. At most one entry may
// exist per key.
type FeeKey struct {
	CourseType  constants.CourseType
	FeeCategory constants.FeeCategory
	FeeType     constants.FeeType
}

// String formats the key for error messages and logs
func (k FeeKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.CourseType, k.FeeCategory, k.FeeType)
}

// FeeEntry is one row of the association's price matrix. All amounts are
// cents and non-negative.
type FeeEntry struct {
	CourseType  constants.CourseType  `json:"course_type"`
	FeeCategory constants.FeeCategory `json:"fee_category"`
	FeeType     constants.FeeType     `json:"fee_type"`

	AmountCents int64 `json:"amount_cents"`
	// ExtraFeeCashCents is added when the registrant pays cash at the door
	ExtraFeeCashCents int64 `json:"extra_fee_cash_cents"`
	// ExtraFeeExternalCents is added when the registrant is not a DAN member
	ExtraFeeExternalCents int64 `json:"extra_fee_external_cents"`
}

// Key returns the entry's lookup key
func (e FeeEntry) Key() FeeKey {
	return FeeKey{
		CourseType:  e.CourseType,
		FeeCategory: e.FeeCategory,
		FeeType:     e.FeeType,
	}
}

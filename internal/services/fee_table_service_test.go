package services_test

import (
	"testing"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/services"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeTableService_Lookup(t *testing.T) {
	table, err := services.NewFeeTableService([]business.FeeEntry{
		{
			CourseType:            constants.CourseTypeExternalTeacher,
			FeeCategory:           constants.FeeCategoryRegular,
			FeeType:               constants.FeeTypeEntireCourse,
			AmountCents:           10000,
			ExtraFeeCashCents:     500,
			ExtraFeeExternalCents: 1000,
		},
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		entry, err := table.Lookup(constants.CourseTypeExternalTeacher, constants.FeeCategoryRegular, constants.FeeTypeEntireCourse)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), entry.AmountCents)
		assert.Equal(t, int64(500), entry.ExtraFeeCashCents)
		assert.Equal(t, int64(1000), entry.ExtraFeeExternalCents)
	})

	t.Run("not found is a hard error", func(t *testing.T) {
		entry, err := table.Lookup(constants.CourseTypeExternalTeacher, constants.FeeCategoryRegular, constants.FeeTypeSingleDay)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, services.ErrFeeNotFound)
	})
}

func TestNewFeeTableService_RejectsDuplicateKeys(t *testing.T) {
	entry := business.FeeEntry{
		CourseType:  constants.CourseTypeChildren,
		FeeCategory: constants.FeeCategoryRegular,
		FeeType:     constants.FeeTypeEntireCourse,
		AmountCents: 3000,
	}

	table, err := services.NewFeeTableService([]business.FeeEntry{entry, entry})
	assert.Nil(t, table)
	assert.ErrorIs(t, err, services.ErrDuplicateFeeEntry)
}

func TestNewFeeTableService_RejectsNegativeAmounts(t *testing.T) {
	table, err := services.NewFeeTableService([]business.FeeEntry{
		{
			CourseType:  constants.CourseTypeChildren,
			FeeCategory: constants.FeeCategoryRegular,
			FeeType:     constants.FeeTypeEntireCourse,
			AmountCents: -100,
		},
	})
	assert.Nil(t, table)
	assert.Error(t, err)
}

func TestFeeTableService_GetFee(t *testing.T) {
	table, err := services.NewFeeTableService([]business.FeeEntry{
		{
			CourseType:            constants.CourseTypeExternalTeacher,
			FeeCategory:           constants.FeeCategoryRegular,
			FeeType:               constants.FeeTypeEntireCourse,
			AmountCents:           10000,
			ExtraFeeCashCents:     500,
			ExtraFeeExternalCents: 1000,
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   constants.PaymentMethod
		isMember bool
		expected int64
	}{
		{
			name:     "bank transfer as member pays the base amount",
			method:   constants.PaymentMethodBank,
			isMember: true,
			expected: 10000,
		},
		{
			name:     "cash adds the cash surcharge",
			method:   constants.PaymentMethodCash,
			isMember: true,
			expected: 10500,
		},
		{
			name:     "non-member adds the external surcharge",
			method:   constants.PaymentMethodBank,
			isMember: false,
			expected: 11000,
		},
		{
			name:     "cash non-member adds both surcharges",
			method:   constants.PaymentMethodCash,
			isMember: false,
			expected: 11500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := table.GetFee(constants.CourseTypeExternalTeacher, constants.FeeCategoryRegular,
				constants.FeeTypeEntireCourse, tt.method, tt.isMember, 0)
			assert.Equal(t, tt.expected, fee)
		})
	}

	t.Run("missing entry returns the caller default", func(t *testing.T) {
		fee := table.GetFee(constants.CourseTypeChildren, constants.FeeCategoryRegular,
			constants.FeeTypeEntireCourse, constants.PaymentMethodBank, true, 0)
		assert.Equal(t, int64(0), fee)

		fee = table.GetFee(constants.CourseTypeChildren, constants.FeeCategoryRegular,
			constants.FeeTypeEntireCourse, constants.PaymentMethodBank, true, 4200)
		assert.Equal(t, int64(4200), fee)
	})
}

// Cash payment can never be cheaper than bank transfer because the cash
// surcharge is non-negative for every entry.
func TestFeeTableService_CashNeverCheaperThanBank(t *testing.T) {
	entries := []business.FeeEntry{
		{CourseType: constants.CourseTypeExternalTeacher, FeeCategory: constants.FeeCategoryRegular, FeeType: constants.FeeTypeEntireCourse, AmountCents: 10000, ExtraFeeCashCents: 500, ExtraFeeExternalCents: 1000},
		{CourseType: constants.CourseTypeSenseiEmmerson, FeeCategory: constants.FeeCategoryDanSeminar, FeeType: constants.FeeTypeSingleDay, AmountCents: 8000, ExtraFeeCashCents: 0, ExtraFeeExternalCents: 1500},
		{CourseType: constants.CourseTypeChildren, FeeCategory: constants.FeeCategoryRegular, FeeType: constants.FeeTypeSingleSession, AmountCents: 500},
	}
	table, err := services.NewFeeTableService(entries)
	require.NoError(t, err)

	for _, entry := range entries {
		for _, isMember := range []bool{true, false} {
			cash := table.GetFee(entry.CourseType, entry.FeeCategory, entry.FeeType, constants.PaymentMethodCash, isMember, 0)
			bank := table.GetFee(entry.CourseType, entry.FeeCategory, entry.FeeType, constants.PaymentMethodBank, isMember, 0)
			assert.GreaterOrEqual(t, cash, bank, "entry %s member=%v", entry.Key(), isMember)
		}
	}
}

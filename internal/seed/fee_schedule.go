package seed

import (
	_ "embed"
	"fmt"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/helpers"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"gopkg.in/yaml.v3"
)

//go:embed fee_schedule.yaml
var defaultScheduleYAML []byte

// feeEntryYAML is one price point of the schedule file. Amounts are decimal
// strings as published in the association's price matrix.
type feeEntryYAML struct {
	Amount      string `yaml:"amount"`
	CashFee     string `yaml:"cash_fee"`
	ExternalFee string `yaml:"external_fee"`
}

// scheduleYAML nests course type -> fee category -> fee type -> price point
type scheduleYAML map[string]map[string]map[string]feeEntryYAML

// ParseFeeSchedule parses a YAML fee schedule into fee entries. Unknown
// course types, fee categories or fee types are errors; the schedule is the
// single source the fee table is seeded from and must not drift from the
// enum vocabulary.
func ParseFeeSchedule(data []byte) ([]business.FeeEntry, error) {
	var schedule scheduleYAML
	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse fee schedule: %w", err)
	}

	var entries []business.FeeEntry
	for rawCourseType, categories := range schedule {
		courseType, ok := constants.ParseCourseType(rawCourseType)
		if !ok {
			return nil, fmt.Errorf("fee schedule: unknown course type %q", rawCourseType)
		}
		for rawCategory, feeTypes := range categories {
			category, ok := constants.ParseFeeCategory(rawCategory)
			if !ok {
				return nil, fmt.Errorf("fee schedule: unknown fee category %q under %s", rawCategory, courseType)
			}
			for rawFeeType, point := range feeTypes {
				feeType, ok := constants.ParseFeeType(rawFeeType)
				if !ok {
					return nil, fmt.Errorf("fee schedule: unknown fee type %q under %s/%s", rawFeeType, courseType, category)
				}

				entry, err := buildEntry(courseType, category, feeType, point)
				if err != nil {
					return nil, err
				}
				entries = append(entries, entry)
			}
		}
	}
	return entries, nil
}

// DefaultFeeSchedule returns the entries of the embedded fee schedule
func DefaultFeeSchedule() ([]business.FeeEntry, error) {
	return ParseFeeSchedule(defaultScheduleYAML)
}

// buildEntry converts one YAML price point to a fee entry
func buildEntry(courseType constants.CourseType, category constants.FeeCategory, feeType constants.FeeType, point feeEntryYAML) (business.FeeEntry, error) {
	key := business.FeeKey{CourseType: courseType, FeeCategory: category, FeeType: feeType}

	amount, err := helpers.ParseAmount(point.Amount)
	if err != nil {
		return business.FeeEntry{}, fmt.Errorf("fee schedule %s: bad amount: %w", key, err)
	}

	cashFee := int64(0)
	if point.CashFee != "" {
		if cashFee, err = helpers.ParseAmount(point.CashFee); err != nil {
			return business.FeeEntry{}, fmt.Errorf("fee schedule %s: bad cash_fee: %w", key, err)
		}
	}

	externalFee := int64(0)
	if point.ExternalFee != "" {
		if externalFee, err = helpers.ParseAmount(point.ExternalFee); err != nil {
			return business.FeeEntry{}, fmt.Errorf("fee schedule %s: bad external_fee: %w", key, err)
		}
	}

	return business.FeeEntry{
		CourseType:            courseType,
		FeeCategory:           category,
		FeeType:               feeType,
		AmountCents:           amount,
		ExtraFeeCashCents:     cashFee,
		ExtraFeeExternalCents: externalFee,
	}, nil
}

package constants

// CourseType identifies the pricing context a course belongs to.
type CourseType string

const (
	CourseTypeSenseiEmmerson  CourseType = "sensei_emmerson"
	CourseTypeHombuDojo       CourseType = "hombu_dojo"
	CourseTypeExternalTeacher CourseType = "external_teacher"
	CourseTypeDanBWTeacher    CourseType = "dan_bw_teacher"
	CourseTypeChildren        CourseType = "children"
	CourseTypeFamilyReunion   CourseType = "family_reunion"
	CourseTypeDanBW           CourseType = "dan_bw"
)

// courseTypeLabels maps course types to their display labels
var courseTypeLabels = map[CourseType]string{
	CourseTypeSenseiEmmerson:  "Seminar with Sensei Emmerson",
	CourseTypeHombuDojo:       "Seminar with Hombu Dojo teacher",
	CourseTypeExternalTeacher: "Seminar with external teacher",
	CourseTypeDanBWTeacher:    "Seminar with DAN BW teacher",
	CourseTypeChildren:        "Children's course",
	CourseTypeFamilyReunion:   "Family reunion",
	CourseTypeDanBW:           "DAN BW event",
}

// Label returns the human-readable label for the course type
func (t CourseType) Label() string {
	if label, exists := courseTypeLabels[t]; exists {
		return label
	}
	return string(t)
}

// IsValid reports whether the course type is a known value
func (t CourseType) IsValid() bool {
	_, exists := courseTypeLabels[t]
	return exists
}

// AllowsDanPreparation reports whether sessions of this course type may carry
// the dan-preparation flag.
func (t CourseType) AllowsDanPreparation() bool {
	switch t {
	case CourseTypeSenseiEmmerson, CourseTypeHombuDojo, CourseTypeDanBWTeacher, CourseTypeFamilyReunion:
		return true
	}
	return false
}

// PricesByDay reports whether this course type offers single-day pricing.
// Only seminars with Sensei Emmerson or a Hombu Dojo teacher are priced per
// day; the other families sell either the whole course or single sessions.
func (t CourseType) PricesByDay() bool {
	return t == CourseTypeSenseiEmmerson || t == CourseTypeHombuDojo
}

// ParseCourseType parses a raw string into a CourseType
func ParseCourseType(raw string) (CourseType, bool) {
	t := CourseType(raw)
	return t, t.IsValid()
}

// FeeCategory is a pricing tier independent of the course type.
type FeeCategory string

const (
	FeeCategoryRegular       FeeCategory = "regular"
	FeeCategoryDanSeminar    FeeCategory = "dan_seminar"
	FeeCategoryFamilyReunion FeeCategory = "family_reunion"
	FeeCategoryDanMember     FeeCategory = "dan_member"
)

var feeCategoryLabels = map[FeeCategory]string{
	FeeCategoryRegular:       "Regular",
	FeeCategoryDanSeminar:    "DAN seminar",
	FeeCategoryFamilyReunion: "Family reunion",
	FeeCategoryDanMember:     "DAN member",
}

// Label returns the human-readable label for the fee category
func (c FeeCategory) Label() string {
	if label, exists := feeCategoryLabels[c]; exists {
		return label
	}
	return string(c)
}

// IsValid reports whether the fee category is a known value
func (c FeeCategory) IsValid() bool {
	_, exists := feeCategoryLabels[c]
	return exists
}

// ParseFeeCategory parses a raw string into a FeeCategory
func ParseFeeCategory(raw string) (FeeCategory, bool) {
	c := FeeCategory(raw)
	return c, c.IsValid()
}

// FeeType is the session-coverage classification used as the final pricing
// lookup key.
type FeeType string

const (
	FeeTypeEntireCourse                FeeType = "entire_course"
	FeeTypeEntireCourseDanPreparation  FeeType = "entire_course_dan_preparation"
	FeeTypeSingleDay                   FeeType = "single_day"
	FeeTypeSingleSession               FeeType = "single_session"
	FeeTypeSingleSessionDanPreparation FeeType = "single_session_dan_preparation"

	// Family reunions use their own fee type set, keyed on whether the
	// selection covers the DAN seminar day.
	FeeTypeEntireCourseWithDanSeminar FeeType = "entire_course_with_dan_seminar"
	FeeTypeSingleDayWithDanSeminar    FeeType = "single_day_with_dan_seminar"
)

var feeTypeLabels = map[FeeType]string{
	FeeTypeEntireCourse:                "Entire course",
	FeeTypeEntireCourseDanPreparation:  "Entire course incl. dan preparation",
	FeeTypeSingleDay:                   "Single day",
	FeeTypeSingleSession:               "Single session",
	FeeTypeSingleSessionDanPreparation: "Single dan preparation session",
	FeeTypeEntireCourseWithDanSeminar:  "Entire reunion incl. DAN seminar",
	FeeTypeSingleDayWithDanSeminar:     "Single day incl. DAN seminar",
}

// Label returns the human-readable label for the fee type
func (t FeeType) Label() string {
	if label, exists := feeTypeLabels[t]; exists {
		return label
	}
	return string(t)
}

// IsValid reports whether the fee type is a known value
func (t FeeType) IsValid() bool {
	_, exists := feeTypeLabels[t]
	return exists
}

// ParseFeeType parses a raw string into a FeeType
func ParseFeeType(raw string) (FeeType, bool) {
	t := FeeType(raw)
	return t, t.IsValid()
}

// FeeTypesForCategory returns the fee types that can apply to courses of the
// given fee category, in display order.
func FeeTypesForCategory(category FeeCategory) []FeeType {
	if category == FeeCategoryFamilyReunion {
		return []FeeType{
			FeeTypeEntireCourseWithDanSeminar,
			FeeTypeEntireCourse,
			FeeTypeSingleDayWithDanSeminar,
			FeeTypeSingleDay,
			FeeTypeSingleSession,
		}
	}
	return []FeeType{
		FeeTypeEntireCourse,
		FeeTypeEntireCourseDanPreparation,
		FeeTypeSingleDay,
		FeeTypeSingleSession,
		FeeTypeSingleSessionDanPreparation,
	}
}

// PaymentMethod is how a registrant settles the fee.
type PaymentMethod string

const (
	PaymentMethodBank PaymentMethod = "bank"
	PaymentMethodCash PaymentMethod = "cash"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodBank: "Bank transfer",
	PaymentMethodCash: "Cash at the door",
}

// Label returns the human-readable label for the payment method
func (m PaymentMethod) Label() string {
	if label, exists := paymentMethodLabels[m]; exists {
		return label
	}
	return string(m)
}

// IsValid reports whether the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	_, exists := paymentMethodLabels[m]
	return exists
}

// ParsePaymentMethod parses a raw string into a PaymentMethod
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(raw)
	return m, m.IsValid()
}

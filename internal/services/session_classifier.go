package services

import (
	"errors"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/google/uuid"
)

var (
	// ErrEmptySelection is returned when no sessions were selected.
	// Validation upstream should have rejected this already.
	ErrEmptySelection = errors.New("no sessions selected")

	// ErrUnpriceableSelection is returned for selections no pricing rule
	// covers, e.g. a partial multi-day subset of a course that is not
	// priced per day
	ErrUnpriceableSelection = errors.New("session selection cannot be priced")
)

// SessionClassifier maps a registrant's selected subset of course sessions
// to the fee type used as the pricing lookup key.
//
// Classification priority: entire course beats single day, single day beats
// single session. The result depends only on the membership of the selected
// set, never on its iteration order.
type SessionClassifier struct{}

// NewSessionClassifier creates a new session classifier
func NewSessionClassifier() *SessionClassifier {
	return &SessionClassifier{}
}

// Classify determines the fee type for the selected subset of the course's
// sessions. allSessions is the course's full session set.
func (c *SessionClassifier) Classify(course *business.Course, allSessions, selected []business.Session) (constants.FeeType, error) {
	if len(selected) == 0 {
		return "", ErrEmptySelection
	}

	if idSetEqual(selected, allSessions) {
		return c.classifyEntireCourse(course, allSessions), nil
	}

	if feeType, ok := c.classifySingleDay(course, selected); ok {
		return feeType, nil
	}

	if len(selected) == 1 {
		return c.classifySingleSession(course, selected[0]), nil
	}

	return "", ErrUnpriceableSelection
}

// classifyEntireCourse handles full-set selections
func (c *SessionClassifier) classifyEntireCourse(course *business.Course, allSessions []business.Session) constants.FeeType {
	if course.FeeCategory == constants.FeeCategoryFamilyReunion {
		if containsDanSeminarSession(allSessions) {
			return constants.FeeTypeEntireCourseWithDanSeminar
		}
		return constants.FeeTypeEntireCourse
	}

	// The preparation variant only applies when the course mixes
	// preparation and regular sessions; a pure preparation course is still
	// just "entire course".
	if course.HasDanPreparation && containsRegularSession(allSessions) {
		return constants.FeeTypeEntireCourseDanPreparation
	}
	return constants.FeeTypeEntireCourse
}

// classifySingleDay reports whether the selection covers exactly one full
// day of a course that prices by day, and the fee type if so. A "day" is
// the complete session set of one calendar date; the full-span case is
// handled by the entire-course rule before this one runs.
func (c *SessionClassifier) classifySingleDay(course *business.Course, selected []business.Session) (constants.FeeType, bool) {
	isReunion := course.FeeCategory == constants.FeeCategoryFamilyReunion
	if !isReunion && !course.CourseType.PricesByDay() {
		return "", false
	}

	dateKey := selected[0].DateKey()
	for _, session := range selected[1:] {
		if session.DateKey() != dateKey {
			return "", false
		}
	}

	if !idSetEqual(selected, course.SessionsOnDate(dateKey)) {
		return "", false
	}

	if isReunion {
		if containsDanSeminarSession(selected) {
			return constants.FeeTypeSingleDayWithDanSeminar, true
		}
		return constants.FeeTypeSingleDay, true
	}
	return constants.FeeTypeSingleDay, true
}

// classifySingleSession handles a selection of exactly one session
func (c *SessionClassifier) classifySingleSession(course *business.Course, session business.Session) constants.FeeType {
	if session.IsDanPreparation && course.FeeCategory != constants.FeeCategoryFamilyReunion {
		return constants.FeeTypeSingleSessionDanPreparation
	}
	return constants.FeeTypeSingleSession
}

// idSetEqual compares two session slices as ID sets
func idSetEqual(a, b []business.Session) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[uuid.UUID]bool, len(a))
	for _, session := range a {
		ids[session.ID] = true
	}
	if len(ids) != len(b) {
		return false
	}
	for _, session := range b {
		if !ids[session.ID] {
			return false
		}
	}
	return true
}

// containsDanSeminarSession reports whether any session carries the
// dan-preparation flag, which marks the DAN seminar sessions of a family
// reunion
func containsDanSeminarSession(sessions []business.Session) bool {
	for _, session := range sessions {
		if session.IsDanPreparation {
			return true
		}
	}
	return false
}

// containsRegularSession reports whether any session is not a dan
// preparation session
func containsRegularSession(sessions []business.Session) bool {
	for _, session := range sessions {
		if !session.IsDanPreparation {
			return true
		}
	}
	return false
}

package services_test

import (
	"time"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/google/uuid"
)

func init() {
	logger.InitLogger(constants.TestEnvironment)
}

// newTestCourse builds a course without sessions; add them with addSession
func newTestCourse(courseType constants.CourseType, feeCategory constants.FeeCategory, discountPercentage int32) *business.Course {
	return &business.Course{
		ID:                 uuid.New(),
		Name:               "Test course",
		CourseType:         courseType,
		FeeCategory:        feeCategory,
		DiscountPercentage: discountPercentage,
		StartDate:          time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}
}

// addSession appends a session on the given date (YYYY-MM-DD) and returns it
func addSession(course *business.Course, date string, danPreparation bool) business.Session {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("bad test date: " + date)
	}
	session := business.Session{
		ID:               uuid.New(),
		CourseID:         course.ID,
		Date:             day,
		StartTime:        day.Add(10 * time.Hour),
		EndTime:          day.Add(12 * time.Hour),
		IsDanPreparation: danPreparation,
	}
	course.Sessions = append(course.Sessions, session)
	course.RefreshDanPreparation()
	return session
}

// sessionIDs extracts the IDs of the given sessions
func sessionIDs(sessions []business.Session) []uuid.UUID {
	ids := make([]uuid.UUID, len(sessions))
	for i, session := range sessions {
		ids[i] = session.ID
	}
	return ids
}

package business

import (
	"time"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/google/uuid"
)

// Course is a priceable event authored by staff: a seminar, a children's
// course or a family reunion, together with its sessions and optional
// accommodation offers.
type Course struct {
	ID                   uuid.UUID             `json:"id"`
	Name                 string                `json:"name"`
	CourseType           constants.CourseType  `json:"course_type"`
	FeeCategory          constants.FeeCategory `json:"fee_category"`
	DiscountPercentage   int32                 `json:"discount_percentage"` // 0-100
	HasDanPreparation    bool                  `json:"has_dan_preparation"`
	StartDate            time.Time             `json:"start_date"`
	EndDate              time.Time             `json:"end_date"`
	Sessions             []Session             `json:"sessions"`
	AccommodationOptions []AccommodationOption `json:"accommodation_options,omitempty"`
}

// Session is a single training unit of a course. Sessions on the same
// calendar date form a "day" for single-day pricing.
type Session struct {
	ID               uuid.UUID `json:"id"`
	CourseID         uuid.UUID `json:"course_id"`
	Date             time.Time `json:"date"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	IsDanPreparation bool      `json:"is_dan_preparation"`
}

// DateKey returns the session's calendar date in YYYY-MM-DD form
func (s Session) DateKey() string {
	return s.Date.Format("2006-01-02")
}

// AccommodationOption is an optional flat overnight-stay fee attached to a
// course. It is added after discounting and never discounted itself.
type AccommodationOption struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	Description string    `json:"description"`
	FeeCents    int64     `json:"fee_cents"`
}

// SessionByID returns the course session with the given ID, or nil
func (c *Course) SessionByID(id uuid.UUID) *Session {
	for i := range c.Sessions {
		if c.Sessions[i].ID == id {
			return &c.Sessions[i]
		}
	}
	return nil
}

// SessionsByID resolves a set of session IDs against the course. The second
// return value is false if any ID does not belong to the course.
func (c *Course) SessionsByID(ids []uuid.UUID) ([]Session, bool) {
	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		session := c.SessionByID(id)
		if session == nil {
			return nil, false
		}
		sessions = append(sessions, *session)
	}
	return sessions, true
}

// AccommodationOptionByID returns the accommodation option with the given ID, or nil
func (c *Course) AccommodationOptionByID(id uuid.UUID) *AccommodationOption {
	for i := range c.AccommodationOptions {
		if c.AccommodationOptions[i].ID == id {
			return &c.AccommodationOptions[i]
		}
	}
	return nil
}

// SessionDates returns the distinct calendar dates of the course's sessions
// in YYYY-MM-DD form
func (c *Course) SessionDates() []string {
	seen := make(map[string]bool)
	dates := make([]string, 0, len(c.Sessions))
	for _, session := range c.Sessions {
		key := session.DateKey()
		if !seen[key] {
			seen[key] = true
			dates = append(dates, key)
		}
	}
	return dates
}

// SessionsOnDate returns all course sessions falling on the given calendar date
func (c *Course) SessionsOnDate(dateKey string) []Session {
	var sessions []Session
	for _, session := range c.Sessions {
		if session.DateKey() == dateKey {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

// RefreshDanPreparation recomputes the HasDanPreparation flag from the
// course's current session set. The workflow owning the course must call
// this after session mutations; the flag is not maintained as a side effect
// of saving sessions.
func (c *Course) RefreshDanPreparation() {
	c.HasDanPreparation = false
	if !c.CourseType.AllowsDanPreparation() {
		return
	}
	for _, session := range c.Sessions {
		if session.IsDanPreparation {
			c.HasDanPreparation = true
			return
		}
	}
}

package domain

import (
	"errors"
	"time"
)

var ErrMissingDate = errors.New("session date is required")
var ErrMissingTime = errors.New("session time is required")

type Course struct {
	ID          int     `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	DurationMin int     `db:"duration_min" json:"duration_min"`
	ImageURL    *string `db:"image_url" json:"image_url"`
}

type CourseSession struct {
	ID              int       `db:"id" json:"id"`
	CourseID        int       `db:"course_id" json:"course_id"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	MaxParticipants int       `db:"max_participants" json:"max_participants"`
	// BookedCount is a read-only aggregate owned by the booking flow;
	// this service never patches it client-side.
	BookedCount int `db:"booked_count" json:"booked_count"`
}

// Remaining returns the number of free seats.
func (s *CourseSession) Remaining() int {
	return s.MaxParticipants - s.BookedCount
}

// IsFull returns true when no seats remain. A session at exactly
// max capacity counts as full.
func (s *CourseSession) IsFull() bool {
	return s.BookedCount >= s.MaxParticipants
}

// Composite types for API responses

type CourseWithSessions struct {
	Course
	Sessions []CourseSession `json:"course_sessions"`
	// NextSession is the earliest session at or after the request time,
	// nil when none remain.
	NextSession *CourseSession `json:"next_session"`
}

// SessionWithCourse is the public catalog row: an upcoming session with
// its course joined in.
type SessionWithCourse struct {
	CourseSession
	Course    Course `json:"course"`
	Full      bool   `json:"is_full"`
	SeatsLeft int    `json:"seats_left"`
}

// CanDelete reports whether the course may be deleted. A course keeps
// existing until all of its sessions are removed.
func (c *CourseWithSessions) CanDelete() bool {
	return len(c.Sessions) == 0
}

// CanDeleteSession reports whether a session with the given number of
// bookings may be deleted.
func CanDeleteSession(bookedCount int) bool {
	return bookedCount == 0
}

// NextUpcoming returns the session with the earliest start time at or
// after now, or nil if there is none. On identical timestamps the
// earlier element of the slice wins, so callers get a stable result as
// long as the input order is stable (storage orders by start_time, id).
func NextUpcoming(sessions []CourseSession, now time.Time) *CourseSession {
	var next *CourseSession
	for i := range sessions {
		s := &sessions[i]
		if s.StartTime.Before(now) {
			continue
		}
		if next == nil || s.StartTime.Before(next.StartTime) {
			next = s
		}
	}
	return next
}

// CombineDateTime builds a session start timestamp from a date
// ("2006-01-02") and a clock ("15:04") in the given location.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if date == "" {
		return time.Time{}, ErrMissingDate
	}
	if clock == "" {
		return time.Time{}, ErrMissingTime
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" validate:"omitempty,min=1"`
	ImageURL    *string `json:"image_url"`
}

// UpdateCourseRequest is a partial update; nil fields keep their value.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DurationMin *int    `json:"duration_min"`
	ImageURL    *string `json:"image_url"`
}

type SessionRequest struct {
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Seats int    `json:"seats" validate:"required,min=1"`
}

// Package service sequences reads and writes across the stores in
// response to operator actions. It owns the deletion guards: every
// delete is preceded by a check of the blocking aggregate, and no
// partial deletion ever happens.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

type (
	CourseStore interface {
		ListCourses(ctx context.Context) ([]domain.CourseWithSessions, error)
		GetCourseByID(ctx context.Context, id int) (*domain.Course, error)
		CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error)
		UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error)
		DeleteCourse(ctx context.Context, id int) error
		CountSessionsForCourse(ctx context.Context, courseID int) (int, error)
	}

	SessionStore interface {
		ListSessionsForCourse(ctx context.Context, courseID int) ([]domain.CourseSession, error)
		ListUpcomingSessions(ctx context.Context, now time.Time) ([]domain.SessionWithCourse, error)
		CreateSession(ctx context.Context, courseID int, startTime time.Time, seats int) (*domain.CourseSession, error)
		UpdateSession(ctx context.Context, id int, startTime time.Time, seats int) (*domain.CourseSession, error)
		DeleteSession(ctx context.Context, id int) error
	}

	// BookingCounter supplies the number of confirmed bookings per
	// session. Read-only from this flow's perspective.
	BookingCounter interface {
		CountBookingsForSession(ctx context.Context, sessionID int) (int, error)
	}

	CatalogService struct {
		courses  CourseStore
		sessions SessionStore
		bookings BookingCounter
		loc      *time.Location
		now      func() time.Time
	}
)

func NewCatalogService(courses CourseStore, sessions SessionStore, bookings BookingCounter, loc *time.Location) *CatalogService {
	return &CatalogService{
		courses:  courses,
		sessions: sessions,
		bookings: bookings,
		loc:      loc,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used in tests.
func (svc *CatalogService) WithClock(now func() time.Time) *CatalogService {
	svc.now = now
	return svc
}

// ListCourses returns the full aggregate the admin surface renders,
// with the next-upcoming session resolved per course. Callers re-fetch
// through here after every successful mutation; booking counts are
// server-derived and must not be guessed.
func (svc *CatalogService) ListCourses(ctx context.Context) ([]domain.CourseWithSessions, error) {
	courses, err := svc.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	now := svc.now()
	for i := range courses {
		courses[i].NextSession = domain.NextUpcoming(courses[i].Sessions, now)
	}
	return courses, nil
}

// ListUpcomingSessions backs the public catalog: future sessions in
// ascending start order with the full flag resolved.
func (svc *CatalogService) ListUpcomingSessions(ctx context.Context) ([]domain.SessionWithCourse, error) {
	sessions, err := svc.sessions.ListUpcomingSessions(ctx, svc.now())
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Full = sessions[i].IsFull()
		sessions[i].SeatsLeft = sessions[i].Remaining()
	}
	return sessions, nil
}

func (svc *CatalogService) CreateCourse(ctx context.Context, actor domain.Actor, req *domain.CreateCourseRequest) (*domain.Course, error) {
	if !actor.CanEdit() {
		return nil, utils.ErrReadOnly
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, utils.NewValidationError("title", "course title is required")
	}
	if req.DurationMin < 0 {
		return nil, utils.NewValidationError("duration_min", "duration must be positive")
	}
	return svc.courses.CreateCourse(ctx, req)
}

// UpdateCourse applies a partial update. A missing course surfaces as
// the store's not-found error; it is not pre-checked here.
func (svc *CatalogService) UpdateCourse(ctx context.Context, actor domain.Actor, id int, req *domain.UpdateCourseRequest) (*domain.Course, error) {
	if !actor.CanEdit() {
		return nil, utils.ErrReadOnly
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, utils.NewValidationError("title", "course title is required")
		}
		req.Title = &title
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		return nil, utils.NewValidationError("duration_min", "duration must be positive")
	}
	return svc.courses.UpdateCourse(ctx, id, req)
}

// DeleteCourse removes a course only when it owns no sessions. The
// check and the delete are separate statements; a session created in
// between slips through (accepted, see DESIGN.md).
func (svc *CatalogService) DeleteCourse(ctx context.Context, actor domain.Actor, id int) error {
	if !actor.CanEdit() {
		return utils.ErrReadOnly
	}
	count, err := svc.courses.CountSessionsForCourse(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewConflictError(count, "course has %d sessions, delete its sessions first", count)
	}
	return svc.courses.DeleteCourse(ctx, id)
}

func (svc *CatalogService) ListSessions(ctx context.Context, courseID int) ([]domain.CourseSession, error) {
	return svc.sessions.ListSessionsForCourse(ctx, courseID)
}

func (svc *CatalogService) CreateSession(ctx context.Context, actor domain.Actor, courseID int, req *domain.SessionRequest) (*domain.CourseSession, error) {
	if !actor.CanEdit() {
		return nil, utils.ErrReadOnly
	}
	start, err := svc.validateSession(req)
	if err != nil {
		return nil, err
	}
	if _, err := svc.courses.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	return svc.sessions.CreateSession(ctx, courseID, start, req.Seats)
}

func (svc *CatalogService) UpdateSession(ctx context.Context, actor domain.Actor, id int, req *domain.SessionRequest) (*domain.CourseSession, error) {
	if !actor.CanEdit() {
		return nil, utils.ErrReadOnly
	}
	start, err := svc.validateSession(req)
	if err != nil {
		return nil, err
	}
	return svc.sessions.UpdateSession(ctx, id, start, req.Seats)
}

// DeleteSession removes a session only when no bookings reference it.
// The conflict message names the blocking count.
func (svc *CatalogService) DeleteSession(ctx context.Context, actor domain.Actor, id int) error {
	if !actor.CanEdit() {
		return utils.ErrReadOnly
	}
	count, err := svc.bookings.CountBookingsForSession(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteSession(count) {
		return utils.NewConflictError(count, "session has %d bookings and cannot be deleted", count)
	}
	return svc.sessions.DeleteSession(ctx, id)
}

// validateSession rejects bad input before any store call.
func (svc *CatalogService) validateSession(req *domain.SessionRequest) (time.Time, error) {
	if req.Seats <= 0 {
		return time.Time{}, utils.NewValidationError("seats", "seat count must be greater than zero")
	}
	start, err := domain.CombineDateTime(req.Date, req.Time, svc.loc)
	if err != nil {
		switch err {
		case domain.ErrMissingDate:
			return time.Time{}, utils.NewValidationError("date", "session date is required")
		case domain.ErrMissingTime:
			return time.Time{}, utils.NewValidationError("time", "session time is required")
		}
		return time.Time{}, utils.NewValidationError("date", "invalid date or time format")
	}
	return start, nil
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/service"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

// stubCatalogStore backs a real CatalogService with canned data so the
// handlers can be exercised over httptest.
type stubCatalogStore struct {
	course        *domain.Course
	sessionCount  int
	bookingCount  int
	courseDeleted bool
}

func (s *stubCatalogStore) ListCourses(ctx context.Context) ([]domain.CourseWithSessions, error) {
	if s.course == nil {
		return []domain.CourseWithSessions{}, nil
	}
	// Sessions is always a slice, never nil, matching the repository.
	return []domain.CourseWithSessions{{Course: *s.course, Sessions: []domain.CourseSession{}}}, nil
}

func (s *stubCatalogStore) GetCourseByID(ctx context.Context, id int) (*domain.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, utils.ErrNotFound
	}
	return s.course, nil
}

func (s *stubCatalogStore) CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error) {
	s.course = &domain.Course{ID: 1, Title: req.Title}
	return s.course, nil
}

func (s *stubCatalogStore) UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error) {
	if s.course == nil || s.course.ID != id {
		return nil, utils.ErrNotFound
	}
	return s.course, nil
}

func (s *stubCatalogStore) DeleteCourse(ctx context.Context, id int) error {
	s.courseDeleted = true
	return nil
}

func (s *stubCatalogStore) CountSessionsForCourse(ctx context.Context, courseID int) (int, error) {
	return s.sessionCount, nil
}

func (s *stubCatalogStore) ListSessionsForCourse(ctx context.Context, courseID int) ([]domain.CourseSession, error) {
	return nil, nil
}

func (s *stubCatalogStore) ListUpcomingSessions(ctx context.Context, now time.Time) ([]domain.SessionWithCourse, error) {
	return nil, nil
}

func (s *stubCatalogStore) CreateSession(ctx context.Context, courseID int, startTime time.Time, seats int) (*domain.CourseSession, error) {
	return &domain.CourseSession{ID: 1, CourseID: courseID, StartTime: startTime, MaxParticipants: seats}, nil
}

func (s *stubCatalogStore) UpdateSession(ctx context.Context, id int, startTime time.Time, seats int) (*domain.CourseSession, error) {
	return nil, utils.ErrNotFound
}

func (s *stubCatalogStore) DeleteSession(ctx context.Context, id int) error {
	return nil
}

func (s *stubCatalogStore) CountBookingsForSession(ctx context.Context, sessionID int) (int, error) {
	return s.bookingCount, nil
}

func newTestCatalog(store *stubCatalogStore) *service.CatalogService {
	return service.NewCatalogService(store, store, store, time.UTC)
}

func adminContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", 1)
	c.Set("role", "admin")
	return c
}

func TestListCoursesHandler(t *testing.T) {
	t.Run("course without sessions serializes an empty array", func(t *testing.T) {
		store := &stubCatalogStore{course: &domain.Course{ID: 1, Title: "Yoga"}}
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, ListCourses(newTestCatalog(store))(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"course_sessions":[]`)
		assert.Contains(t, rec.Body.String(), `"next_session":null`)
	})
}

func TestDeleteCourseHandler(t *testing.T) {
	t.Run("conflict while sessions exist", func(t *testing.T) {
		store := &stubCatalogStore{course: &domain.Course{ID: 1, Title: "Yoga"}, sessionCount: 2}
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/courses/1", nil)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, DeleteCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 sessions")
		assert.False(t, store.courseDeleted)
	})

	t.Run("deletes an empty course", func(t *testing.T) {
		store := &stubCatalogStore{course: &domain.Course{ID: 1, Title: "Yoga"}}
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/courses/1", nil)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, DeleteCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, store.courseDeleted)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		store := &stubCatalogStore{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/courses/abc", nil)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, DeleteCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateCourseHandler(t *testing.T) {
	t.Run("creates a course", func(t *testing.T) {
		store := &stubCatalogStore{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/courses", strings.NewReader(`{"title":"Pilates"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)

		require.NoError(t, CreateCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pilates")
	})

	t.Run("blank title", func(t *testing.T) {
		store := &stubCatalogStore{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/courses", strings.NewReader(`{"title":"  "}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)

		require.NoError(t, CreateCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("client role gets 403 from the service", func(t *testing.T) {
		store := &stubCatalogStore{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/courses", strings.NewReader(`{"title":"Pilates"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", 2)
		c.Set("role", "client")

		require.NoError(t, CreateCourse(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteSessionHandler(t *testing.T) {
	t.Run("conflict while bookings exist", func(t *testing.T) {
		store := &stubCatalogStore{bookingCount: 3}
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/sessions/5", nil)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, DeleteSession(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "3 bookings")
	})

	t.Run("deletes when free of bookings", func(t *testing.T) {
		store := &stubCatalogStore{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/sessions/5", nil)
		rec := httptest.NewRecorder()
		c := adminContext(e, req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, DeleteSession(newTestCatalog(store))(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

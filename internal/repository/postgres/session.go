package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

// listAllSessions returns every session with its booking count, ordered
// by course, then start time, then id so ties stay stable.
func (s *Storage) listAllSessions(ctx context.Context) ([]domain.CourseSession, error) {
	const query = `
		SELECT cs.id, cs.course_id, cs.start_time, cs.max_participants, COUNT(b.id)
		FROM course_sessions cs
		LEFT JOIN bookings b ON b.session_id = cs.id
		GROUP BY cs.id
		ORDER BY cs.course_id, cs.start_time, cs.id;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	return scanSessions(rows)
}

func (s *Storage) ListSessionsForCourse(ctx context.Context, courseID int) ([]domain.CourseSession, error) {
	const query = `
		SELECT cs.id, cs.course_id, cs.start_time, cs.max_participants, COUNT(b.id)
		FROM course_sessions cs
		LEFT JOIN bookings b ON b.session_id = cs.id
		WHERE cs.course_id = $1
		GROUP BY cs.id
		ORDER BY cs.start_time, cs.id;
	`

	rows, err := s.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	return scanSessions(rows)
}

// ListUpcomingSessions returns sessions starting at or after now, with
// course details joined in, for the public catalog.
func (s *Storage) ListUpcomingSessions(ctx context.Context, now time.Time) ([]domain.SessionWithCourse, error) {
	const query = `
		SELECT cs.id, cs.course_id, cs.start_time, cs.max_participants, COUNT(b.id),
		       c.id, c.title, c.description, c.duration_min, c.image_url
		FROM course_sessions cs
		JOIN courses c ON cs.course_id = c.id
		LEFT JOIN bookings b ON b.session_id = cs.id
		WHERE cs.start_time >= $1
		GROUP BY cs.id, c.id
		ORDER BY cs.start_time, cs.id;
	`

	rows, err := s.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var sessions []domain.SessionWithCourse
	for rows.Next() {
		var sc domain.SessionWithCourse
		err := rows.Scan(
			&sc.ID,
			&sc.CourseID,
			&sc.StartTime,
			&sc.MaxParticipants,
			&sc.BookedCount,
			&sc.Course.ID,
			&sc.Course.Title,
			&sc.Course.Description,
			&sc.Course.DurationMin,
			&sc.Course.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sc)
	}

	return sessions, rows.Err()
}

func (s *Storage) CreateSession(ctx context.Context, courseID int, startTime time.Time, seats int) (*domain.CourseSession, error) {
	const query = `
		INSERT INTO course_sessions (course_id, start_time, max_participants)
		VALUES ($1, $2, $3)
		RETURNING id, course_id, start_time, max_participants;
	`

	var sess domain.CourseSession
	err := s.pool.QueryRow(ctx, query, courseID, startTime, seats).Scan(
		&sess.ID,
		&sess.CourseID,
		&sess.StartTime,
		&sess.MaxParticipants,
	)

	return &sess, err
}

func (s *Storage) UpdateSession(ctx context.Context, id int, startTime time.Time, seats int) (*domain.CourseSession, error) {
	const query = `
		UPDATE course_sessions
		SET start_time = $2, max_participants = $3
		WHERE id = $1
		RETURNING id, course_id, start_time, max_participants;
	`

	var sess domain.CourseSession
	err := s.pool.QueryRow(ctx, query, id, startTime, seats).Scan(
		&sess.ID,
		&sess.CourseID,
		&sess.StartTime,
		&sess.MaxParticipants,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &sess, err
}

func (s *Storage) DeleteSession(ctx context.Context, id int) error {
	const query = `DELETE FROM course_sessions WHERE id = $1;`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// CountBookingsForSession is the booking counter consulted before a
// session delete. Bookings themselves are never mutated here.
func (s *Storage) CountBookingsForSession(ctx context.Context, sessionID int) (int, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE session_id = $1;`

	var count int
	err := s.pool.QueryRow(ctx, query, sessionID).Scan(&count)
	return count, err
}

func scanSessions(rows pgx.Rows) ([]domain.CourseSession, error) {
	var sessions []domain.CourseSession
	for rows.Next() {
		var sess domain.CourseSession
		err := rows.Scan(
			&sess.ID,
			&sess.CourseID,
			&sess.StartTime,
			&sess.MaxParticipants,
			&sess.BookedCount,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

// ListCourses returns all courses ordered by id, each with its sessions
// and their booking counts nested in.
func (s *Storage) ListCourses(ctx context.Context) ([]domain.CourseWithSessions, error) {
	const query = `
		SELECT id, title, description, duration_min, image_url
		FROM courses
		ORDER BY id;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var courses []domain.CourseWithSessions
	index := make(map[int]int)
	for rows.Next() {
		var c domain.CourseWithSessions
		err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.DurationMin,
			&c.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		// Keep an empty (not nil) slice so the JSON stays an array.
		c.Sessions = []domain.CourseSession{}
		index[c.ID] = len(courses)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := s.listAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if i, ok := index[sess.CourseID]; ok {
			courses[i].Sessions = append(courses[i].Sessions, sess)
		}
	}

	return courses, nil
}

func (s *Storage) GetCourseByID(ctx context.Context, id int) (*domain.Course, error) {
	const query = `
		SELECT id, title, description, duration_min, image_url
		FROM courses WHERE id = $1;
	`

	var c domain.Course
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.DurationMin,
		&c.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &c, err
}

func (s *Storage) CreateCourse(ctx context.Context, req *domain.CreateCourseRequest) (*domain.Course, error) {
	const query = `
		INSERT INTO courses (title, description, duration_min, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, duration_min, image_url;
	`

	duration := req.DurationMin
	if duration == 0 {
		duration = 60
	}

	var c domain.Course
	err := s.pool.QueryRow(ctx, query, req.Title, req.Description, duration, req.ImageURL).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.DurationMin,
		&c.ImageURL,
	)

	return &c, err
}

// UpdateCourse applies a partial update; nil fields keep their value.
func (s *Storage) UpdateCourse(ctx context.Context, id int, req *domain.UpdateCourseRequest) (*domain.Course, error) {
	const query = `
		UPDATE courses
		SET title        = COALESCE($2, title),
		    description  = COALESCE($3, description),
		    duration_min = COALESCE($4, duration_min),
		    image_url    = COALESCE($5, image_url)
		WHERE id = $1
		RETURNING id, title, description, duration_min, image_url;
	`

	var c domain.Course
	err := s.pool.QueryRow(ctx, query, id, req.Title, req.Description, req.DurationMin, req.ImageURL).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.DurationMin,
		&c.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &c, err
}

func (s *Storage) DeleteCourse(ctx context.Context, id int) error {
	const query = `DELETE FROM courses WHERE id = $1;`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *Storage) CountSessionsForCourse(ctx context.Context, courseID int) (int, error) {
	const query = `SELECT COUNT(*) FROM course_sessions WHERE course_id = $1;`

	var count int
	err := s.pool.QueryRow(ctx, query, courseID).Scan(&count)
	return count, err
}

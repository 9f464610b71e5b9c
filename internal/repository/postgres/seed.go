package postgres

import (
	"context"
	"fmt"
	"time"
)

type seedCourse struct {
	Title       string
	Description string
	DurationMin int
	ImageURL    string
	// Sessions as offsets from now, with a seat count.
	Sessions []seedSession
}

type seedSession struct {
	InDays int
	Hour   int
	Seats  int
}

var demoCourses = []seedCourse{
	{
		Title:       "Yoga für Anfänger",
		Description: "Sanfter Einstieg in die Grundlagen. Keine Vorkenntnisse nötig.",
		DurationMin: 60,
		ImageURL:    "https://images.example.com/yoga.jpg",
		Sessions: []seedSession{
			{InDays: 3, Hour: 10, Seats: 10},
			{InDays: 10, Hour: 10, Seats: 10},
		},
	},
	{
		Title:       "Rückenfit",
		Description: "Kräftigung der Rückenmuskulatur für den Alltag.",
		DurationMin: 45,
		ImageURL:    "https://images.example.com/rueckenfit.jpg",
		Sessions: []seedSession{
			{InDays: 5, Hour: 18, Seats: 12},
		},
	},
	{
		Title:       "Pilates Intensiv",
		Description: "Fortgeschrittenes Training mit Fokus auf Körpermitte.",
		DurationMin: 90,
		ImageURL:    "https://images.example.com/pilates.jpg",
	},
}

// SeedDemo populates the database with demo content for the app
// simulator. It is idempotent: a non-empty courses table skips the
// whole seed.
func (s *Storage) SeedDemo(ctx context.Context, adminPasswordHash, clientPasswordHash string) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM courses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check courses: %w", err)
	}

	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, c := range demoCourses {
		var courseID int
		err := s.pool.QueryRow(ctx,
			`INSERT INTO courses (title, description, duration_min, image_url)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			c.Title, c.Description, c.DurationMin, c.ImageURL,
		).Scan(&courseID)
		if err != nil {
			return fmt.Errorf("seed course %q: %w", c.Title, err)
		}

		for _, sess := range c.Sessions {
			start := now.AddDate(0, 0, sess.InDays)
			start = time.Date(start.Year(), start.Month(), start.Day(), sess.Hour, 0, 0, 0, start.Location())
			_, err := s.pool.Exec(ctx,
				`INSERT INTO course_sessions (course_id, start_time, max_participants)
				 VALUES ($1, $2, $3)`,
				courseID, start, sess.Seats,
			)
			if err != nil {
				return fmt.Errorf("seed session for course %d: %w", courseID, err)
			}
		}
	}

	seedUsers := []struct {
		username, hash, role, firstName string
	}{
		{"admin", adminPasswordHash, "admin", "Admin"},
		{"demo", clientPasswordHash, "client", "Demo"},
	}
	for _, u := range seedUsers {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO users (username, password_hash, role, first_name)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (username) DO NOTHING`,
			u.username, u.hash, u.role, u.firstName,
		)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.username, err)
		}
	}

	return nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

// ListProjects is the admin overview: every project with the client
// name joined in, newest first.
func (s *Storage) ListProjects(ctx context.Context) ([]domain.ProjectListItem, error) {
	const query = `
		SELECT p.id, p.title, p.status, p.created_at,
		       CASE WHEN u.last_name IS NOT NULL AND u.last_name <> ''
		            THEN u.first_name || ' ' || u.last_name
		            ELSE u.username END AS client_name
		FROM projects p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var projects []domain.ProjectListItem
	for rows.Next() {
		var p domain.ProjectListItem
		err := rows.Scan(&p.ID, &p.Title, &p.Status, &p.CreatedAt, &p.ClientName)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Storage) GetProjectByID(ctx context.Context, id int) (*domain.Project, error) {
	const query = `
		SELECT id, user_id, title, content, status, created_at
		FROM projects WHERE id = $1;
	`

	var p domain.Project
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &p, err
}

// GetProjectForUser returns the client's own project.
func (s *Storage) GetProjectForUser(ctx context.Context, userID int) (*domain.Project, error) {
	const query = `
		SELECT id, user_id, title, content, status, created_at
		FROM projects WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var p domain.Project
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &p, err
}

// ListProjectComments returns a project's comments newest first, with
// author name and role resolved.
func (s *Storage) ListProjectComments(ctx context.Context, projectID int) ([]domain.ProjectComment, error) {
	const query = `
		SELECT c.id, c.user_id, c.message, c.created_at,
		       u.role AS author_role,
		       CASE WHEN u.last_name IS NOT NULL AND u.last_name <> ''
		            THEN u.first_name || ' ' || u.last_name
		            ELSE u.username END AS author_name
		FROM project_comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.project_id = $1
		ORDER BY c.created_at DESC;
	`

	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var comments []domain.ProjectComment
	for rows.Next() {
		var c domain.ProjectComment
		err := rows.Scan(&c.ID, &c.UserID, &c.Message, &c.CreatedAt, &c.AuthorRole, &c.AuthorName)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (s *Storage) CreateProjectComment(ctx context.Context, projectID, userID int, message string) error {
	const query = `
		INSERT INTO project_comments (project_id, user_id, message)
		VALUES ($1, $2, $3);
	`

	_, err := s.pool.Exec(ctx, query, projectID, userID, message)
	return err
}

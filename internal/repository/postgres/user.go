package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash, role, firstName string) (*domain.User, error) {
	const query = `
        INSERT INTO users (username, password_hash, role, first_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, role, first_name, last_name, created_at;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, username, passwordHash, role, firstName).Scan(
		&user.ID, &user.Username, &user.Role, &user.FirstName, &user.LastName, &user.CreatedAt,
	)

	return &user, err
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, role, first_name, last_name, created_at
        FROM users WHERE username = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &user, err
}

func (s *Storage) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	const query = `
        SELECT id, username, role, first_name, last_name, created_at
        FROM users WHERE id = $1;
    `

	var user domain.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Role, &user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrNotFound
	}

	return &user, err
}

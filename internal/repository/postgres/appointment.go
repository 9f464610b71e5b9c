package postgres

import (
	"context"

	"github.com/awesner/wesner-corporate-site/internal/domain"
)

func (s *Storage) CreateAppointment(ctx context.Context, req *domain.AppointmentRequest) (*domain.Appointment, error) {
	const query = `
		INSERT INTO appointments (name, email, requested_date, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, requested_date, message, created_at;
	`

	var a domain.Appointment
	err := s.pool.QueryRow(ctx, query, req.Name, req.Email, req.Date, req.Message).Scan(
		&a.ID, &a.Name, &a.Email, &a.RequestedDate, &a.Message, &a.CreatedAt,
	)

	return &a, err
}

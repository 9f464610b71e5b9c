package domain

import "time"

type Appointment struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	RequestedDate string    `db:"requested_date" json:"requested_date"`
	Message       string    `db:"message" json:"message"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type AppointmentRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Date    string `json:"date" validate:"required"`
	Message string `json:"message"`
}

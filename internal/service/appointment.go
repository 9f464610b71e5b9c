package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/logger"
	"github.com/awesner/wesner-corporate-site/internal/mail"
	"github.com/awesner/wesner-corporate-site/internal/utils"
)

type (
	AppointmentStore interface {
		CreateAppointment(ctx context.Context, req *domain.AppointmentRequest) (*domain.Appointment, error)
	}

	AppointmentService struct {
		store       AppointmentStore
		mailer      mail.Mailer
		notifyEmail string
		logger      *logger.Logger
	}
)

func NewAppointmentService(store AppointmentStore, mailer mail.Mailer, notifyEmail string, lg *logger.Logger) *AppointmentService {
	return &AppointmentService{store: store, mailer: mailer, notifyEmail: notifyEmail, logger: lg}
}

// Request stores an appointment request and notifies the site owner.
// The notification is best effort: the visitor already got their
// confirmation, a mail outage should not take it back.
func (svc *AppointmentService) Request(ctx context.Context, req *domain.AppointmentRequest) (*domain.Appointment, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}
	if req.Email == "" {
		return nil, utils.NewValidationError("email", "email is required")
	}
	if req.Date == "" {
		return nil, utils.NewValidationError("date", "date is required")
	}

	appt, err := svc.store.CreateAppointment(ctx, req)
	if err != nil {
		return nil, err
	}

	msg := mail.Message{
		To:      svc.notifyEmail,
		Subject: fmt.Sprintf("Neue Terminanfrage: %s", appt.Name),
		Text: fmt.Sprintf(
			"Ein Nutzer möchte einen Termin vereinbaren.\n\nName: %s\nEmail: %s\nGewünschtes Datum: %s\nNachricht: %s\n",
			appt.Name, appt.Email, appt.RequestedDate, orDash(appt.Message),
		),
	}
	if err := svc.mailer.Send(ctx, msg); err != nil {
		svc.logger.Error("appointment notification mail failed", "appointment_id", appt.ID, "err", err)
	}

	return appt, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

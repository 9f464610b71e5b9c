package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/service"
)

func SetupAppointmentRoutes(e *echo.Echo, appointments *service.AppointmentService) {
	e.POST("/api/appointments", RequestAppointment(appointments))
}

// RequestAppointment godoc
// @Summary Request an appointment
// @Description Store an appointment request and notify the site owner
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body domain.AppointmentRequest true "Appointment details"
// @Success 201 {object} domain.Appointment
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /appointments [post]
func RequestAppointment(appointments *service.AppointmentService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.AppointmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		appt, err := appointments.Request(c.Request().Context(), &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusCreated, appt)
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/awesner/wesner-corporate-site/internal/domain"
	"github.com/awesner/wesner-corporate-site/internal/service"
)

func SetupChatRoutes(e *echo.Echo, chat *service.ChatService) {
	e.POST("/api/chat", Chat(chat))
}

// Chat godoc
// @Summary Chat with the site assistant
// @Description Send a message to the support assistant and get a reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body domain.ChatRequest true "Message, history and locale"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func Chat(chat *service.ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		resp, err := chat.Respond(c.Request().Context(), &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

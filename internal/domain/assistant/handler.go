package assistant

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/chat", h.Chat)
	api.GET("/chat/sessions", h.ListSessions)
	api.GET("/chat/sessions/:id/messages", h.ListTurns)
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	reply, sessionID, err := h.svc.Chat(c.Request().Context(), req.UserID, req.SessionID, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply, SessionID: sessionID})
}

func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.svc.ListSessions(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if sessions == nil {
		sessions = []*SessionSummary{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (h *Handler) ListTurns(c echo.Context) error {
	turns, err := h.svc.ListTurns(c.Request().Context(), c.QueryParam("user_id"), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if turns == nil {
		turns = []*Turn{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": turns})
}

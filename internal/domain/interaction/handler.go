package interaction

import (
	"errors"
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
	api.POST("/interactions", h.CheckInteractions)
	api.GET("/interactions/check", h.CorpusStatus)
}

type drugQuery struct {
	Name string `json:"name"`
}

type checkRequest struct {
	DrugList []drugQuery `json:"drugList"`
}

type checkResponse struct {
	Interactions []*Record    `json:"interactions"`
	Success      bool         `json:"success"`
	Debug        *Diagnostics `json:"debug"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// CheckInteractions handles POST /interactions. An empty interactions array
// always means "queried successfully, found nothing"; failures are returned
// as typed errors, never as an empty success.
func (h *Handler) CheckInteractions(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	names := make([]string, len(req.DrugList))
	for i, q := range req.DrugList {
		names[i] = q.Name
	}

	records, diag, err := h.svc.CheckInteractions(c.Request().Context(), names)
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	if records == nil {
		records = []*Record{}
	}
	return c.JSON(http.StatusOK, checkResponse{
		Interactions: records,
		Success:      true,
		Debug:        diag,
	})
}

type statusResponse struct {
	Count   int       `json:"count"`
	Sample  []*Record `json:"sample"`
	Message string    `json:"message"`
}

// CorpusStatus handles GET /interactions/check, reporting whether the
// reference dataset has been loaded.
func (h *Handler) CorpusStatus(c echo.Context) error {
	count, sample, err := h.svc.CorpusStatus(c.Request().Context(), 5)
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	msg := "Interactions found"
	if count == 0 {
		msg = "No interactions in database"
	}
	if sample == nil {
		sample = []*Record{}
	}
	return c.JSON(http.StatusOK, statusResponse{Count: count, Sample: sample, Message: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientDrugs), errors.Is(err, ErrInvalidDrugName):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

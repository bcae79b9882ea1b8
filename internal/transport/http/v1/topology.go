package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"topochat/internal/service"
)

// GetTopology classifies the session's current history.
// GET /v1/sessions/:session_id/topology
func (h *Handler) GetTopology(c echo.Context) error {
	pattern, err := h.service.GetTopology(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, pattern)
}

// ExportSession returns the canonical export document.
// GET /v1/sessions/:session_id/export
func (h *Handler) ExportSession(c echo.Context) error {
	doc, err := h.service.Export(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.SessionID+`.json"`)
	return c.JSON(http.StatusOK, doc)
}

package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUUIDParam reads a path parameter as a UUID. uuid.Nil is rejected.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

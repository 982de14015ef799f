package handler

import "github.com/labstack/echo/v4"

// envelope is the success shape of the shared response contract. The error
// side is rendered by the central HTTP error handler.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

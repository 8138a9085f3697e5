package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"title": "Super Mercado Economico",
	})
}

package handler

import (
	"net/http"

	"inventory-service/pkg/database"

	"github.com/labstack/echo/v4"
)

// Health returns the service health status, including database connectivity
func Health(c echo.Context) error {
	status := "ok"
	dbStatus := "ok"

	if db := database.GetDB(); db != nil {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	} else {
		status = "degraded"
		dbStatus = "not initialized"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, echo.Map{
		"status":   status,
		"database": dbStatus,
	})
}

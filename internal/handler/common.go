package handler

import (
	"net/http"
	"strconv"

	"inventory-service/pkg/database"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
)

// renderError renders the shared error page with the given status.
func renderError(c echo.Context, status int, message string) error {
	return c.Render(status, "error.html", echo.Map{
		"status":  status,
		"message": message,
	})
}

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get("user_id").(uint)
	return userID, ok
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// updateEntityRows refreshes the per-owner row count gauge for an entity
// from a single grouped count. Called synchronously after every mutation
// that changes row counts, deletes included, so the gauge never goes stale.
func updateEntityRows(entity string, model interface{}) {
	var rows []struct {
		OwnerID uint
		Count   int64
	}
	err := database.GetDB().Model(model).
		Select("owner_id, count(*) as count").
		Group("owner_id").
		Scan(&rows).Error
	if err != nil {
		return
	}

	prometheus.ResetEntityRows(entity)
	for _, row := range rows {
		prometheus.UpdateEntityRows(entity, row.OwnerID, int(row.Count))
	}
}

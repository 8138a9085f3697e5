package handler

import (
	"errors"
	"net/http"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListBrands renders all brands ordered by description
func ListBrands(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "list")

	defer prometheus.TrackDBOperation("select")(time.Now())
	brands, err := service.NewBrandService(database.GetDB()).List()
	if err != nil {
		log.Error("Failed to list brands", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to retrieve brands")
	}

	return c.Render(http.StatusOK, "brands/list.html", echo.Map{
		"title":  "Brands",
		"brands": brands,
	})
}

// NewBrand renders an empty brand form
func NewBrand(c echo.Context) error {
	return c.Render(http.StatusOK, "brands/form.html", echo.Map{
		"title":  "New brand",
		"action": "/brand/create",
		"form":   service.BrandForm{},
	})
}

// CreateBrand handles the brand creation form submission
func CreateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "create")

	userID, ok := currentUserID(c)
	if !ok {
		log.Error("Failed to get user ID from context")
		return renderError(c, http.StatusUnauthorized, "authentication required")
	}

	form := service.BrandForm{
		Description: c.FormValue("description"),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	brand, err := service.NewBrandService(database.GetDB()).Create(userID, form)

	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		log.Warn("Brand form rejected", zap.Error(verrs))
		prometheus.RecordValidationError("brand")
		return c.Render(http.StatusBadRequest, "brands/form.html", echo.Map{
			"title":  "New brand",
			"action": "/brand/create",
			"form":   form,
			"errors": verrs,
		})
	}
	if err != nil {
		log.Error("Failed to create brand", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to create brand")
	}

	updateEntityRows("brand", &model.Brand{})

	log.Info("Brand created",
		zap.Uint("id", brand.ID),
		zap.String("description", brand.Description))
	return c.Redirect(http.StatusSeeOther, "/brand/list")
}

// EditBrand renders the brand form pre-filled with an existing row
func EditBrand(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid brand id")
	}

	brand, err := service.NewBrandService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Brand not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Brand not found")
	}
	if err != nil {
		log.Error("Failed to load brand", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load brand")
	}

	return c.Render(http.StatusOK, "brands/form.html", echo.Map{
		"title":  "Edit brand",
		"action": c.Request().URL.Path,
		"form":   service.BrandForm{Description: brand.Description},
	})
}

// UpdateBrand handles the brand update form submission
func UpdateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "update")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid brand id")
	}

	form := service.BrandForm{
		Description: c.FormValue("description"),
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	brand, err := service.NewBrandService(database.GetDB()).Update(id, form)

	var verrs service.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Brand not found for update", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Brand not found")
	case errors.As(err, &verrs):
		log.Warn("Brand form rejected", zap.Uint("id", id), zap.Error(verrs))
		prometheus.RecordValidationError("brand")
		return c.Render(http.StatusBadRequest, "brands/form.html", echo.Map{
			"title":  "Edit brand",
			"action": c.Request().URL.Path,
			"form":   form,
			"errors": verrs,
		})
	case err != nil:
		log.Error("Failed to update brand", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to update brand")
	}

	log.Info("Brand updated",
		zap.Uint("id", brand.ID),
		zap.String("description", brand.Description))
	return c.Redirect(http.StatusSeeOther, "/brand/list")
}

// ConfirmDeleteBrand renders the brand delete confirmation page
func ConfirmDeleteBrand(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid brand id")
	}

	brand, err := service.NewBrandService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Brand not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Brand not found")
	}
	if err != nil {
		log.Error("Failed to load brand", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load brand")
	}

	return c.Render(http.StatusOK, "brands/delete.html", echo.Map{
		"title": "Delete brand",
		"brand": brand,
	})
}

// DeleteBrand removes the brand and its products
func DeleteBrand(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("brand", "delete")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid brand id")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err = service.NewBrandService(database.GetDB()).Delete(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Brand not found for deletion", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Brand not found")
	}
	if err != nil {
		log.Error("Failed to delete brand", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to delete brand")
	}

	// The cascade removes products too.
	updateEntityRows("brand", &model.Brand{})
	updateEntityRows("product", &model.Product{})

	log.Info("Brand deleted", zap.Uint("id", id))
	return c.Redirect(http.StatusSeeOther, "/brand/list")
}

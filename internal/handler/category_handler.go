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

// ListCategories renders all categories ordered by description
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "list")

	defer prometheus.TrackDBOperation("select")(time.Now())
	categories, err := service.NewCategoryService(database.GetDB()).List()
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to retrieve categories")
	}

	return c.Render(http.StatusOK, "categories/list.html", echo.Map{
		"title":      "Categories",
		"categories": categories,
	})
}

// NewCategory renders an empty category form
func NewCategory(c echo.Context) error {
	return c.Render(http.StatusOK, "categories/form.html", echo.Map{
		"title":  "New category",
		"action": "/category/create",
		"form":   service.CategoryForm{},
	})
}

// CreateCategory handles the category creation form submission
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "create")

	userID, ok := currentUserID(c)
	if !ok {
		log.Error("Failed to get user ID from context")
		return renderError(c, http.StatusUnauthorized, "authentication required")
	}

	form := service.CategoryForm{
		Description: c.FormValue("description"),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	category, err := service.NewCategoryService(database.GetDB()).Create(userID, form)

	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		log.Warn("Category form rejected", zap.Error(verrs))
		prometheus.RecordValidationError("category")
		return c.Render(http.StatusBadRequest, "categories/form.html", echo.Map{
			"title":  "New category",
			"action": "/category/create",
			"form":   form,
			"errors": verrs,
		})
	}
	if err != nil {
		log.Error("Failed to create category", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to create category")
	}

	updateEntityRows("category", &model.Category{})

	log.Info("Category created",
		zap.Uint("id", category.ID),
		zap.String("description", category.Description))
	return c.Redirect(http.StatusSeeOther, "/category/list")
}

// EditCategory renders the category form pre-filled with an existing row
func EditCategory(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid category id")
	}

	category, err := service.NewCategoryService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Category not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Category not found")
	}
	if err != nil {
		log.Error("Failed to load category", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load category")
	}

	return c.Render(http.StatusOK, "categories/form.html", echo.Map{
		"title":  "Edit category",
		"action": c.Request().URL.Path,
		"form":   service.CategoryForm{Description: category.Description},
	})
}

// UpdateCategory handles the category update form submission
func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "update")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid category id")
	}

	form := service.CategoryForm{
		Description: c.FormValue("description"),
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	category, err := service.NewCategoryService(database.GetDB()).Update(id, form)

	var verrs service.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Category not found for update", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Category not found")
	case errors.As(err, &verrs):
		log.Warn("Category form rejected", zap.Uint("id", id), zap.Error(verrs))
		prometheus.RecordValidationError("category")
		return c.Render(http.StatusBadRequest, "categories/form.html", echo.Map{
			"title":  "Edit category",
			"action": c.Request().URL.Path,
			"form":   form,
			"errors": verrs,
		})
	case err != nil:
		log.Error("Failed to update category", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to update category")
	}

	log.Info("Category updated",
		zap.Uint("id", category.ID),
		zap.String("description", category.Description))
	return c.Redirect(http.StatusSeeOther, "/category/list")
}

// ConfirmDeleteCategory renders the category delete confirmation page
func ConfirmDeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid category id")
	}

	category, err := service.NewCategoryService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Category not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Category not found")
	}
	if err != nil {
		log.Error("Failed to load category", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load category")
	}

	return c.Render(http.StatusOK, "categories/delete.html", echo.Map{
		"title":    "Delete category",
		"category": category,
	})
}

// DeleteCategory removes the category and unlinks it from products
func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("category", "delete")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid category id")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err = service.NewCategoryService(database.GetDB()).Delete(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Category not found for deletion", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Category not found")
	}
	if err != nil {
		log.Error("Failed to delete category", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to delete category")
	}

	updateEntityRows("category", &model.Category{})

	log.Info("Category deleted", zap.Uint("id", id))
	return c.Redirect(http.StatusSeeOther, "/category/list")
}

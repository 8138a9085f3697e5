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

func supplierFormFromRequest(c echo.Context) service.SupplierForm {
	return service.SupplierForm{
		Name:    c.FormValue("name"),
		TaxID:   c.FormValue("tax_id"),
		Address: c.FormValue("address"),
		Phone:   c.FormValue("phone"),
	}
}

// ListSuppliers renders all suppliers ordered by name
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "list")

	defer prometheus.TrackDBOperation("select")(time.Now())
	suppliers, err := service.NewSupplierService(database.GetDB()).List()
	if err != nil {
		log.Error("Failed to list suppliers", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to retrieve suppliers")
	}

	return c.Render(http.StatusOK, "suppliers/list.html", echo.Map{
		"title":     "Suppliers",
		"suppliers": suppliers,
	})
}

// NewSupplier renders an empty supplier form
func NewSupplier(c echo.Context) error {
	return c.Render(http.StatusOK, "suppliers/form.html", echo.Map{
		"title":  "New supplier",
		"action": "/supplier/create",
		"form":   service.SupplierForm{},
	})
}

// CreateSupplier handles the supplier creation form submission
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "create")

	userID, ok := currentUserID(c)
	if !ok {
		log.Error("Failed to get user ID from context")
		return renderError(c, http.StatusUnauthorized, "authentication required")
	}

	form := supplierFormFromRequest(c)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	supplier, err := service.NewSupplierService(database.GetDB()).Create(userID, form)

	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		log.Warn("Supplier form rejected", zap.Error(verrs))
		prometheus.RecordValidationError("supplier")
		return c.Render(http.StatusBadRequest, "suppliers/form.html", echo.Map{
			"title":  "New supplier",
			"action": "/supplier/create",
			"form":   form,
			"errors": verrs,
		})
	}
	if err != nil {
		log.Error("Failed to create supplier", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to create supplier")
	}

	updateEntityRows("supplier", &model.Supplier{})

	log.Info("Supplier created",
		zap.Uint("id", supplier.ID),
		zap.String("name", supplier.Name),
		zap.String("tax_id", supplier.TaxID))
	return c.Redirect(http.StatusSeeOther, "/supplier/list")
}

// EditSupplier renders the supplier form pre-filled with an existing row
func EditSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid supplier id")
	}

	supplier, err := service.NewSupplierService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Supplier not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Supplier not found")
	}
	if err != nil {
		log.Error("Failed to load supplier", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load supplier")
	}

	return c.Render(http.StatusOK, "suppliers/form.html", echo.Map{
		"title":  "Edit supplier",
		"action": c.Request().URL.Path,
		"form": service.SupplierForm{
			Name:    supplier.Name,
			TaxID:   supplier.TaxID,
			Address: supplier.Address,
			Phone:   supplier.Phone,
		},
	})
}

// UpdateSupplier handles the supplier update form submission
func UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "update")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid supplier id")
	}

	form := supplierFormFromRequest(c)

	defer prometheus.TrackDBOperation("update")(time.Now())
	supplier, err := service.NewSupplierService(database.GetDB()).Update(id, form)

	var verrs service.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Supplier not found for update", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Supplier not found")
	case errors.As(err, &verrs):
		log.Warn("Supplier form rejected", zap.Uint("id", id), zap.Error(verrs))
		prometheus.RecordValidationError("supplier")
		return c.Render(http.StatusBadRequest, "suppliers/form.html", echo.Map{
			"title":  "Edit supplier",
			"action": c.Request().URL.Path,
			"form":   form,
			"errors": verrs,
		})
	case err != nil:
		log.Error("Failed to update supplier", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to update supplier")
	}

	log.Info("Supplier updated",
		zap.Uint("id", supplier.ID),
		zap.String("name", supplier.Name))
	return c.Redirect(http.StatusSeeOther, "/supplier/list")
}

// ConfirmDeleteSupplier renders the supplier delete confirmation page
func ConfirmDeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid supplier id")
	}

	supplier, err := service.NewSupplierService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Supplier not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Supplier not found")
	}
	if err != nil {
		log.Error("Failed to load supplier", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load supplier")
	}

	return c.Render(http.StatusOK, "suppliers/delete.html", echo.Map{
		"title":    "Delete supplier",
		"supplier": supplier,
	})
}

// DeleteSupplier removes the supplier and the product linked to it
func DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "delete")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid supplier id")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err = service.NewSupplierService(database.GetDB()).Delete(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Supplier not found for deletion", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Supplier not found")
	}
	if err != nil {
		log.Error("Failed to delete supplier", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to delete supplier")
	}

	// The cascade removes the linked product too.
	updateEntityRows("supplier", &model.Supplier{})
	updateEntityRows("product", &model.Product{})

	log.Info("Supplier deleted", zap.Uint("id", id))
	return c.Redirect(http.StatusSeeOther, "/supplier/list")
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/internal/storage"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// productLines is the line select's option order.
var productLines = []string{model.LineStore, model.LineFerrisarito, model.LineComisariato}

// productFormFromRequest reads the submitted product form, storing an
// uploaded image through the media store when one is attached.
func productFormFromRequest(c echo.Context) (service.ProductForm, error) {
	form := service.ProductForm{
		Description:    c.FormValue("description"),
		Price:          c.FormValue("price"),
		Stock:          c.FormValue("stock"),
		ExpirationDate: c.FormValue("expiration_date"),
		Line:           c.FormValue("line"),
		BrandID:        c.FormValue("brand_id"),
		SupplierID:     c.FormValue("supplier_id"),
	}
	if params, err := c.FormParams(); err == nil {
		form.CategoryIDs = params["category_ids"]
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No file attached; the stored or default image stays.
		return form, nil
	}
	path, err := storage.Save(file)
	if err != nil {
		return form, err
	}
	form.ImagePath = path
	return form, nil
}

// productFormOptions loads the select options of the product form.
func productFormOptions(data echo.Map) error {
	db := database.GetDB()

	brands, err := service.NewBrandService(db).List()
	if err != nil {
		return err
	}
	suppliers, err := service.NewSupplierService(db).List()
	if err != nil {
		return err
	}
	categories, err := service.NewCategoryService(db).List()
	if err != nil {
		return err
	}

	data["brands"] = brands
	data["suppliers"] = suppliers
	data["categories"] = categories
	data["lines"] = productLines
	return nil
}

func renderProductForm(c echo.Context, status int, data echo.Map) error {
	if err := productFormOptions(data); err != nil {
		logger.FromContext(c).Error("Failed to load product form options", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load product form")
	}
	return c.Render(status, "products/form.html", data)
}

// ListProducts renders all products with brand, supplier and categories
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	defer prometheus.TrackDBOperation("select")(time.Now())
	products, err := service.NewProductService(database.GetDB()).List()
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to retrieve products")
	}

	return c.Render(http.StatusOK, "products/list.html", echo.Map{
		"title":    "Products",
		"products": products,
	})
}

// NewProduct renders an empty product form
func NewProduct(c echo.Context) error {
	return renderProductForm(c, http.StatusOK, echo.Map{
		"title":  "New product",
		"action": "/product/create",
		"form":   service.ProductForm{},
	})
}

// CreateProduct handles the product creation form submission
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	userID, ok := currentUserID(c)
	if !ok {
		log.Error("Failed to get user ID from context")
		return renderError(c, http.StatusUnauthorized, "authentication required")
	}

	form, err := productFormFromRequest(c)
	if err != nil {
		log.Error("Failed to store product image", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to store product image")
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	product, err := service.NewProductService(database.GetDB()).Create(userID, form)

	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		log.Warn("Product form rejected", zap.Error(verrs))
		prometheus.RecordValidationError("product")
		return renderProductForm(c, http.StatusBadRequest, echo.Map{
			"title":  "New product",
			"action": "/product/create",
			"form":   form,
			"errors": verrs,
		})
	}
	if err != nil {
		log.Error("Failed to create product", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to create product")
	}

	updateEntityRows("product", &model.Product{})

	log.Info("Product created",
		zap.Uint("id", product.ID),
		zap.String("description", product.Description),
		zap.Float64("price", product.Price),
		zap.Uint("brand_id", product.BrandID),
		zap.Uint("supplier_id", product.SupplierID))
	return c.Redirect(http.StatusSeeOther, "/product/list")
}

// EditProduct renders the product form pre-filled with an existing row
func EditProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid product id")
	}

	product, err := service.NewProductService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Product not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		log.Error("Failed to load product", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load product")
	}

	form := service.ProductForm{
		Description:    product.Description,
		Price:          strconv.FormatFloat(product.Price, 'f', 2, 64),
		Stock:          strconv.Itoa(product.Stock),
		ExpirationDate: product.ExpirationDate.Format("2006-01-02"),
		Line:           product.Line,
		BrandID:        strconv.FormatUint(uint64(product.BrandID), 10),
		SupplierID:     strconv.FormatUint(uint64(product.SupplierID), 10),
	}
	for _, category := range product.Categories {
		form.CategoryIDs = append(form.CategoryIDs, strconv.FormatUint(uint64(category.ID), 10))
	}

	return renderProductForm(c, http.StatusOK, echo.Map{
		"title":  "Edit product",
		"action": c.Request().URL.Path,
		"form":   form,
	})
}

// UpdateProduct handles the product update form submission
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "update")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid product id")
	}

	form, err := productFormFromRequest(c)
	if err != nil {
		log.Error("Failed to store product image", zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to store product image")
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	product, err := service.NewProductService(database.GetDB()).Update(id, form)

	var verrs service.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Product not found for update", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Product not found")
	case errors.As(err, &verrs):
		log.Warn("Product form rejected", zap.Uint("id", id), zap.Error(verrs))
		prometheus.RecordValidationError("product")
		return renderProductForm(c, http.StatusBadRequest, echo.Map{
			"title":  "Edit product",
			"action": c.Request().URL.Path,
			"form":   form,
			"errors": verrs,
		})
	case err != nil:
		log.Error("Failed to update product", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to update product")
	}

	log.Info("Product updated",
		zap.Uint("id", product.ID),
		zap.String("description", product.Description),
		zap.Float64("price", product.Price))
	return c.Redirect(http.StatusSeeOther, "/product/list")
}

// ConfirmDeleteProduct renders the product delete confirmation page
func ConfirmDeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid product id")
	}

	product, err := service.NewProductService(database.GetDB()).Get(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Product not found", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		log.Error("Failed to load product", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to load product")
	}

	return c.Render(http.StatusOK, "products/delete.html", echo.Map{
		"title":   "Delete product",
		"product": product,
	})
}

// DeleteProduct removes the product and its category links
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "delete")

	id, err := pathID(c)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid product id")
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err = service.NewProductService(database.GetDB()).Delete(id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Product not found for deletion", zap.Uint("id", id))
		return renderError(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		log.Error("Failed to delete product", zap.Uint("id", id), zap.Error(err))
		return renderError(c, http.StatusInternalServerError, "Failed to delete product")
	}

	updateEntityRows("product", &model.Product{})

	log.Info("Product deleted", zap.Uint("id", id))
	return c.Redirect(http.StatusSeeOther, "/product/list")
}

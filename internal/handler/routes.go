package handler

import (
	mid "inventory-service/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the HTML CRUD cycle of every entity onto the Echo
// instance. All entity routes sit behind the auth middleware; the list and
// form pages need the authenticated user as much as the mutations do.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", Home)
	e.GET("/health", Health)

	brand := e.Group("/brand", mid.AuthMiddleware)
	brand.GET("/list", ListBrands)
	brand.GET("/create", NewBrand)
	brand.POST("/create", CreateBrand)
	brand.GET("/update/:id", EditBrand)
	brand.POST("/update/:id", UpdateBrand)
	brand.GET("/delete/:id", ConfirmDeleteBrand)
	brand.POST("/delete/:id", DeleteBrand)

	supplier := e.Group("/supplier", mid.AuthMiddleware)
	supplier.GET("/list", ListSuppliers)
	supplier.GET("/create", NewSupplier)
	supplier.POST("/create", CreateSupplier)
	supplier.GET("/update/:id", EditSupplier)
	supplier.POST("/update/:id", UpdateSupplier)
	supplier.GET("/delete/:id", ConfirmDeleteSupplier)
	supplier.POST("/delete/:id", DeleteSupplier)

	category := e.Group("/category", mid.AuthMiddleware)
	category.GET("/list", ListCategories)
	category.GET("/create", NewCategory)
	category.POST("/create", CreateCategory)
	category.GET("/update/:id", EditCategory)
	category.POST("/update/:id", UpdateCategory)
	category.GET("/delete/:id", ConfirmDeleteCategory)
	category.POST("/delete/:id", DeleteCategory)

	product := e.Group("/product", mid.AuthMiddleware)
	product.GET("/list", ListProducts)
	product.GET("/create", NewProduct)
	product.POST("/create", CreateProduct)
	product.GET("/update/:id", EditProduct)
	product.POST("/update/:id", UpdateProduct)
	product.GET("/delete/:id", ConfirmDeleteProduct)
	product.POST("/delete/:id", DeleteProduct)
}

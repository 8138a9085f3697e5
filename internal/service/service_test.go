package service

import (
	"fmt"
	"testing"

	"inventory-service/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database object: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Brand{},
		&model.Supplier{},
		&model.Category{},
		&model.Product{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

const testOwnerID uint = 1

func seedBrand(t *testing.T, db *gorm.DB, description string) model.Brand {
	t.Helper()
	brand, err := NewBrandService(db).Create(testOwnerID, BrandForm{Description: description})
	if err != nil {
		t.Fatalf("failed to seed brand %q: %v", description, err)
	}
	return *brand
}

var seededTaxIDs int

func seedSupplier(t *testing.T, db *gorm.DB, name string) model.Supplier {
	t.Helper()
	seededTaxIDs++
	supplier, err := NewSupplierService(db).Create(testOwnerID, SupplierForm{
		Name:    name,
		TaxID:   fmt.Sprintf("%013d", seededTaxIDs),
		Address: "Av. Principal 123",
		Phone:   "0991234567",
	})
	if err != nil {
		t.Fatalf("failed to seed supplier %q: %v", name, err)
	}
	return *supplier
}

func seedCategory(t *testing.T, db *gorm.DB, description string) model.Category {
	t.Helper()
	category, err := NewCategoryService(db).Create(testOwnerID, CategoryForm{Description: description})
	if err != nil {
		t.Fatalf("failed to seed category %q: %v", description, err)
	}
	return *category
}

// validProductForm returns a form that passes validation against the given rows.
func validProductForm(brand model.Brand, supplier model.Supplier, categories ...model.Category) ProductForm {
	form := ProductForm{
		Description: "Leche",
		Price:       "1.25",
		Stock:       "50",
		BrandID:     fmt.Sprint(brand.ID),
		SupplierID:  fmt.Sprint(supplier.ID),
	}
	for _, category := range categories {
		form.CategoryIDs = append(form.CategoryIDs, fmt.Sprint(category.ID))
	}
	return form
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func countJoinRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Table("product_categories").Count(&count).Error; err != nil {
		t.Fatalf("failed to count join rows: %v", err)
	}
	return count
}

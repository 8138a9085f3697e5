package service

import (
	"errors"
	"testing"
	"time"

	"inventory-service/internal/model"
)

func TestBrandService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	brand, err := svc.Create(testOwnerID, BrandForm{Description: "Lacteos"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if brand.ID == 0 {
		t.Error("expected a generated id")
	}
	if brand.Description != "Lacteos" {
		t.Errorf("expected description %q, got %q", "Lacteos", brand.Description)
	}
	if brand.OwnerID != testOwnerID {
		t.Errorf("expected owner %d, got %d", testOwnerID, brand.OwnerID)
	}
	if !brand.Active {
		t.Error("expected new brand to be active")
	}
	if brand.CreatedAt.IsZero() || brand.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestBrandService_Create_RejectsBlankDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	_, err := svc.Create(testOwnerID, BrandForm{Description: "   "})

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if _, ok := verrs["description"]; !ok {
		t.Errorf("expected a description error, got %v", verrs)
	}
	if n := countRows(t, db, &model.Brand{}); n != 0 {
		t.Errorf("expected no rows written, got %d", n)
	}
}

func TestBrandService_List_SortedByDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	for _, description := range []string{"Pil", "Alpina", "Lacteos", "Bimbo"} {
		seedBrand(t, db, description)
	}

	brands, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"Alpina", "Bimbo", "Lacteos", "Pil"}
	if len(brands) != len(want) {
		t.Fatalf("expected %d brands, got %d", len(want), len(brands))
	}
	for i, description := range want {
		if brands[i].Description != description {
			t.Errorf("position %d: expected %q, got %q", i, description, brands[i].Description)
		}
	}
}

func TestBrandService_Get_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	_, err := svc.Get(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBrandService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)
	brand := seedBrand(t, db, "Lacteos")

	time.Sleep(50 * time.Millisecond)

	updated, err := svc.Update(brand.ID, BrandForm{Description: "Lacteos Andinos"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Description != "Lacteos Andinos" {
		t.Errorf("expected updated description, got %q", updated.Description)
	}
	if updated.OwnerID != brand.OwnerID {
		t.Error("owner must not be reassigned on update")
	}
	if !updated.CreatedAt.Equal(brand.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", brand.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(brand.UpdatedAt) {
		t.Errorf("UpdatedAt did not advance: %v -> %v", brand.UpdatedAt, updated.UpdatedAt)
	}
}

func TestBrandService_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBrandService(db)

	_, err := svc.Update(42, BrandForm{Description: "Lacteos"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBrandService_Delete_CascadesToProducts(t *testing.T) {
	db := setupTestDB(t)
	brand := seedBrand(t, db, "Lacteos")
	supplier := seedSupplier(t, db, "Distribuidora Sur")
	category := seedCategory(t, db, "Bebidas")

	product, err := NewProductService(db).Create(testOwnerID, validProductForm(brand, supplier, category))
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	if err := NewBrandService(db).Delete(brand.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := NewProductService(db).Get(product.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected product to be cascade-deleted, got %v", err)
	}
	if n := countJoinRows(t, db); n != 0 {
		t.Errorf("expected category links to be removed, got %d", n)
	}
	// The supplier and category survive the cascade.
	if _, err := NewSupplierService(db).Get(supplier.ID); err != nil {
		t.Errorf("supplier should survive brand delete: %v", err)
	}
	if _, err := NewCategoryService(db).Get(category.ID); err != nil {
		t.Errorf("category should survive brand delete: %v", err)
	}
}

func TestBrandService_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)

	err := NewBrandService(db).Delete(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

package service

import (
	"errors"
	"testing"
)

func TestCategoryService_List_SortedByDescription(t *testing.T) {
	db := setupTestDB(t)

	for _, description := range []string{"Limpieza", "Bebidas", "Lacteos"} {
		seedCategory(t, db, description)
	}

	categories, err := NewCategoryService(db).List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"Bebidas", "Lacteos", "Limpieza"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i, description := range want {
		if categories[i].Description != description {
			t.Errorf("position %d: expected %q, got %q", i, description, categories[i].Description)
		}
	}
}

func TestCategoryService_Create_RejectsBlankDescription(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewCategoryService(db).Create(testOwnerID, CategoryForm{})

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestCategoryService_Delete_UnlinksProducts(t *testing.T) {
	db := setupTestDB(t)
	brand := seedBrand(t, db, "Lacteos")
	supplier := seedSupplier(t, db, "Distribuidora Sur")
	bebidas := seedCategory(t, db, "Bebidas")
	lacteos := seedCategory(t, db, "Lacteos")

	product, err := NewProductService(db).Create(testOwnerID, validProductForm(brand, supplier, bebidas, lacteos))
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	if err := NewCategoryService(db).Delete(bebidas.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// The product survives with the remaining category.
	got, err := NewProductService(db).Get(product.ID)
	if err != nil {
		t.Fatalf("product should survive category delete: %v", err)
	}
	if got.CategoryList() != "Lacteos" {
		t.Errorf("expected remaining category %q, got %q", "Lacteos", got.CategoryList())
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)

	err := NewCategoryService(db).Delete(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

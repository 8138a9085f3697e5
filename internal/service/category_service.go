package service

import (
	"errors"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// CategoryService validates and persists categories.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a category service on top of the given database handle.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories ordered by description ascending.
func (s *CategoryService) List() ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.Order("description asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns the category with the given id, or ErrNotFound.
func (s *CategoryService) Get(id uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create validates the form and inserts a new category bound to ownerID.
func (s *CategoryService) Create(ownerID uint, form CategoryForm) (*model.Category, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	category := model.Category{
		Description: strings.TrimSpace(form.Description),
		OwnerID:     ownerID,
		Active:      true,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update re-validates the form and overwrites the category's mutable fields.
func (s *CategoryService) Update(id uint, form CategoryForm) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	category.Description = strings.TrimSpace(form.Description)
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Products keep existing; only the join rows
// linking them to this category are removed.
func (s *CategoryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package service

import (
	"errors"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// BrandService validates and persists brands.
type BrandService struct {
	db *gorm.DB
}

// NewBrandService creates a brand service on top of the given database handle.
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// List returns all brands ordered by description ascending.
func (s *BrandService) List() ([]model.Brand, error) {
	var brands []model.Brand
	if err := s.db.Order("description asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Get returns the brand with the given id, or ErrNotFound.
func (s *BrandService) Get(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// Create validates the form and inserts a new brand bound to ownerID.
func (s *BrandService) Create(ownerID uint, form BrandForm) (*model.Brand, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	brand := model.Brand{
		Description: strings.TrimSpace(form.Description),
		OwnerID:     ownerID,
		Active:      true,
	}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update re-validates the form and overwrites the brand's mutable fields.
// The owner is never reassigned.
func (s *BrandService) Update(id uint, form BrandForm) (*model.Brand, error) {
	brand, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	brand.Description = strings.TrimSpace(form.Description)
	if err := s.db.Save(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete removes the brand and cascades to its products, including their
// category links. Returns ErrNotFound when no row matches.
func (s *BrandService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&model.Product{}).Where("brand_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Exec("DELETE FROM product_categories WHERE product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.Product{}, productIDs).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Brand{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package service

import (
	"errors"
	"strings"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// SupplierService validates and persists suppliers.
type SupplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a supplier service on top of the given database handle.
func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// List returns all suppliers ordered by name ascending.
func (s *SupplierService) List() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := s.db.Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Get returns the supplier with the given id, or ErrNotFound.
func (s *SupplierService) Get(id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// Create validates the form and inserts a new supplier bound to ownerID.
func (s *SupplierService) Create(ownerID uint, form SupplierForm) (*model.Supplier, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	supplier := model.Supplier{
		Name:    strings.TrimSpace(form.Name),
		TaxID:   strings.TrimSpace(form.TaxID),
		Address: strings.TrimSpace(form.Address),
		Phone:   strings.TrimSpace(form.Phone),
		OwnerID: ownerID,
		Active:  true,
	}
	if err := s.db.Create(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update re-validates the form and overwrites the supplier's mutable fields.
// The owner is never reassigned and CreatedAt is untouched.
func (s *SupplierService) Update(id uint, form SupplierForm) (*model.Supplier, error) {
	supplier, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	supplier.Name = strings.TrimSpace(form.Name)
	supplier.TaxID = strings.TrimSpace(form.TaxID)
	supplier.Address = strings.TrimSpace(form.Address)
	supplier.Phone = strings.TrimSpace(form.Phone)
	if err := s.db.Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes the supplier and cascades to the product linked to it,
// including that product's category links. Returns ErrNotFound when no row
// matches.
func (s *SupplierService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&model.Product{}).Where("supplier_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
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

		result := tx.Delete(&model.Supplier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

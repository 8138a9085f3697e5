package service

import (
	"errors"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ProductService validates and persists products. Beyond the pure form
// checks it enforces the referential rules: brand and supplier must exist,
// every selected category must exist, and a supplier supplies exactly one
// product.
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a product service on top of the given database handle.
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) withAssociations() *gorm.DB {
	return s.db.
		Preload("Brand").
		Preload("Supplier").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("description asc")
		})
}

// List returns all products with brand, supplier and categories loaded,
// ordered by description ascending.
func (s *ProductService) List() ([]model.Product, error) {
	var products []model.Product
	if err := s.withAssociations().Order("description asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product with the given id and its associations, or ErrNotFound.
func (s *ProductService) Get(id uint) (*model.Product, error) {
	var product model.Product
	if err := s.withAssociations().First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Create validates the form, checks the referenced rows and inserts a new
// product bound to ownerID. No row is written when validation fails.
func (s *ProductService) Create(ownerID uint, form ProductForm) (*model.Product, error) {
	fields, errs := form.Validate()
	if errs != nil {
		return nil, errs
	}

	categories, err := s.checkReferences(fields, 0)
	if err != nil {
		return nil, err
	}

	product := model.Product{
		Description:    fields.description,
		Price:          fields.price,
		Stock:          fields.stock,
		ExpirationDate: fields.expirationDate,
		BrandID:        fields.brandID,
		SupplierID:     fields.supplierID,
		Categories:     categories,
		Line:           fields.line,
		ImagePath:      form.ImagePath,
		OwnerID:        ownerID,
		Active:         true,
	}

	// Omit the category rows themselves; only the join rows are created.
	if err := s.db.Omit("Categories.*").Create(&product).Error; err != nil {
		return nil, err
	}
	return s.Get(product.ID)
}

// Update re-validates the form against the existing row and overwrites its
// mutable fields, replacing the category set. The owner is never reassigned;
// a blank ImagePath keeps the stored image.
func (s *ProductService) Update(id uint, form ProductForm) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields, errs := form.Validate()
	if errs != nil {
		return nil, errs
	}

	categories, err := s.checkReferences(fields, id)
	if err != nil {
		return nil, err
	}

	product.Description = fields.description
	product.Price = fields.price
	product.Stock = fields.stock
	product.ExpirationDate = fields.expirationDate
	product.BrandID = fields.brandID
	product.SupplierID = fields.supplierID
	product.Line = fields.line
	if form.ImagePath != "" {
		product.ImagePath = form.ImagePath
	}
	product.Categories = nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(product).Error; err != nil {
			return err
		}
		return tx.Model(product).Association("Categories").Replace(&categories)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the product and its category links. Returns ErrNotFound
// when no row matches.
func (s *ProductService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_categories WHERE product_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// checkReferences verifies that the brand, supplier and categories exist and
// that the supplier is not already linked to a different product. productID
// is the row being updated, zero on create. Query failures come back as plain
// errors, never as validation messages.
func (s *ProductService) checkReferences(fields productFields, productID uint) ([]model.Category, error) {
	errs := ValidationErrors{}

	var count int64
	if err := s.db.Model(&model.Brand{}).Where("id = ?", fields.brandID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		errs["brand_id"] = "unknown brand"
	}

	if err := s.db.Model(&model.Supplier{}).Where("id = ?", fields.supplierID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		errs["supplier_id"] = "unknown supplier"
	} else {
		// One product per supplier.
		query := s.db.Model(&model.Product{}).Where("supplier_id = ?", fields.supplierID)
		if productID != 0 {
			query = query.Where("id <> ?", productID)
		}
		if err := query.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			errs["supplier_id"] = "supplier is already linked to another product"
		}
	}

	var categories []model.Category
	if len(fields.categoryIDs) > 0 {
		if err := s.db.Find(&categories, fields.categoryIDs).Error; err != nil {
			return nil, err
		}
		if len(categories) != len(fields.categoryIDs) {
			errs["category_ids"] = "unknown category"
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return categories, nil
}

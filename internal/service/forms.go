package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"inventory-service/internal/model"
)

// Form types carry the raw string values of a submitted HTML form. Validation
// is a pure step from form to typed fields, independent of the store, so the
// rules are testable without a database. Store-dependent checks (referenced
// rows, supplier uniqueness) live in the services.

// BrandForm is the submitted brand form.
type BrandForm struct {
	Description string
}

// Validate checks the brand form fields.
func (f BrandForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "description is required"
	}
	return errs
}

// CategoryForm is the submitted category form.
type CategoryForm struct {
	Description string
}

// Validate checks the category form fields.
func (f CategoryForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "description is required"
	}
	return errs
}

// SupplierForm is the submitted supplier form.
type SupplierForm struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
}

// Validate checks the supplier form fields. TaxID must be the 13-digit
// business registration number.
func (f SupplierForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	taxID := strings.TrimSpace(f.TaxID)
	if len(taxID) != 13 || !isDigits(taxID) {
		errs["tax_id"] = "tax id must be exactly 13 digits"
	}
	return errs
}

// ProductForm is the submitted product form. All values arrive as strings;
// CategoryIDs holds the selected ids of the multi-select.
type ProductForm struct {
	Description    string
	Price          string
	Stock          string
	ExpirationDate string
	Line           string
	BrandID        string
	SupplierID     string
	CategoryIDs    []string
	ImagePath      string
}

// productFields is the typed result of a successful product form validation.
type productFields struct {
	description    string
	price          float64
	stock          int
	expirationDate time.Time
	line           string
	brandID        uint
	supplierID     uint
	categoryIDs    []uint
}

// expirationDateLayout is the wire format of the expiration date field.
const expirationDateLayout = "2006-01-02"

// Validate parses and checks the product form. Blank price, stock, expiration
// date and line fall back to their defaults (0.00, 100, +30 days, Comisariato).
func (f ProductForm) Validate() (productFields, ValidationErrors) {
	errs := ValidationErrors{}
	fields := productFields{
		description: strings.TrimSpace(f.Description),
		stock:       model.DefaultStock,
		line:        model.LineComisariato,
	}

	if fields.description == "" {
		errs["description"] = "description is required"
	}

	if price := strings.TrimSpace(f.Price); price != "" {
		v, err := strconv.ParseFloat(price, 64)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			errs["price"] = "price must be a number"
		case v < 0:
			errs["price"] = "price must not be negative"
		default:
			// Two fraction digits, per the price column contract.
			fields.price = math.Round(v*100) / 100
		}
	}

	if stock := strings.TrimSpace(f.Stock); stock != "" {
		v, err := strconv.Atoi(stock)
		switch {
		case err != nil:
			errs["stock"] = "stock must be an integer"
		case v < 0:
			errs["stock"] = "stock must not be negative"
		default:
			fields.stock = v
		}
	}

	if date := strings.TrimSpace(f.ExpirationDate); date != "" {
		v, err := time.Parse(expirationDateLayout, date)
		if err != nil {
			errs["expiration_date"] = "expiration date must be YYYY-MM-DD"
		} else {
			fields.expirationDate = v
		}
	} else {
		fields.expirationDate = time.Now().AddDate(0, 0, model.DefaultExpirationDays)
	}

	if line := strings.TrimSpace(f.Line); line != "" {
		if _, ok := model.LineLabels[line]; !ok {
			errs["line"] = "unknown product line"
		} else {
			fields.line = line
		}
	}

	fields.brandID = parseID(f.BrandID, "brand_id", "brand is required", errs)
	fields.supplierID = parseID(f.SupplierID, "supplier_id", "supplier is required", errs)

	if len(f.CategoryIDs) == 0 {
		errs["category_ids"] = "at least one category is required"
	}
	for _, raw := range f.CategoryIDs {
		id := parseID(raw, "category_ids", "invalid category", errs)
		if id != 0 {
			fields.categoryIDs = append(fields.categoryIDs, id)
		}
	}

	if len(errs) > 0 {
		return productFields{}, errs
	}
	return fields, nil
}

func parseID(raw, field, requiredMsg string, errs ValidationErrors) uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = requiredMsg
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		errs[field] = requiredMsg
		return 0
	}
	return uint(id)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

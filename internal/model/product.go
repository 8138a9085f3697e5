package model

import (
	"sort"
	"strings"
	"time"
)

// Store lines a product can belong to.
const (
	LineStore       = "RS" // Rio Store
	LineFerrisarito = "FS" // Ferrisariato
	LineComisariato = "CS" // Comisariato
)

// LineLabels maps a line code to its display name.
var LineLabels = map[string]string{
	LineStore:       "Rio Store",
	LineFerrisarito: "Ferrisariato",
	LineComisariato: "Comisariato",
}

// DefaultStock is the stock level assigned when a product form leaves it
// blank. Applied at validation time, not as a schema default: zero is a valid
// stock level and must survive the insert.
const DefaultStock = 100

// DefaultExpirationDays is how far in the future a blank expiration date lands.
const DefaultExpirationDays = 30

// Product represents an inventory product. SupplierID carries a unique index:
// a supplier supplies exactly one product.
type Product struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Description    string     `json:"description" gorm:"type:varchar(100);index;not null"`
	Price          float64    `json:"price" gorm:"default:0"`
	Stock          int        `json:"stock"`
	ExpirationDate time.Time  `json:"expiration_date"`
	BrandID        uint       `json:"brand_id" gorm:"index;not null"`
	Brand          Brand      `json:"brand" gorm:"constraint:OnDelete:CASCADE"`
	SupplierID     uint       `json:"supplier_id" gorm:"uniqueIndex;not null"`
	Supplier       Supplier   `json:"supplier" gorm:"constraint:OnDelete:CASCADE"`
	Categories     []Category `json:"categories" gorm:"many2many:product_categories"`
	Line           string     `json:"line" gorm:"type:varchar(2);default:CS"`
	ImagePath      string     `json:"image_path" gorm:"type:varchar(255);default:products/default.png"`
	OwnerID        uint       `json:"owner_id" gorm:"index;not null"`
	Active         bool       `json:"active" gorm:"default:true"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CategoryList returns the descriptions of the linked categories, sorted
// ascending and joined with " - ". Recomputed from the loaded association on
// every call; an empty set yields an empty string.
func (p *Product) CategoryList() string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Description)
	}
	sort.Strings(names)
	return strings.Join(names, " - ")
}

// LineLabel returns the display name for the product's line code.
func (p *Product) LineLabel() string {
	if label, ok := LineLabels[p.Line]; ok {
		return label
	}
	return p.Line
}

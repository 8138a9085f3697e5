package model

import (
	"time"
)

// Supplier represents a product supplier. TaxID is the 13-character
// business registration number (RUC).
type Supplier struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);index;not null"`
	TaxID     string    `json:"tax_id" gorm:"type:varchar(13)"`
	Address   string    `json:"address" gorm:"type:varchar(200)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

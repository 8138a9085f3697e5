package model

import (
	"time"
)

// Category represents a product category owned by a user.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"type:varchar(100);index;not null"`
	OwnerID     uint      `json:"owner_id" gorm:"index;not null"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

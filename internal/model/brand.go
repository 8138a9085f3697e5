package model

import (
	"time"
)

// Brand represents a product brand owned by a user.
//
// Rows are removed with hard deletes, so there is no gorm.DeletedAt here;
// Active exists in the schema but no handler toggles it.
type Brand struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"type:varchar(100);index;not null"`
	OwnerID     uint      `json:"owner_id" gorm:"index;not null"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

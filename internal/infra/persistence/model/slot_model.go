package model

import (
	"time"
)

// SlotModel is the GORM-specific struct for the 'storefront_slots' table.
// Each row holds one named slot of the durable store as a JSON document.
type SlotModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SlotModel) TableName() string {
	return "storefront_slots"
}

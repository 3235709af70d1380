package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every content table.
type Base struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime;not null" json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b Base) PrimaryKey() uuid.UUID { return b.ID }

// Publishable carries the flags shared by every resource row.
type Publishable struct {
	IsActive  bool `gorm:"column:is_active;not null;index" json:"isActive"`
	SortOrder int  `gorm:"column:sort_order;not null;default:0" json:"sortOrder"`
}

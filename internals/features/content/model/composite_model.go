package model

import (
	base "jewelry_backend/internals/features/resource/model"

	"github.com/google/uuid"
)

type CelebrationProcessModel struct {
	base.Base
	Title       string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	base.Publishable

	Steps []CelebrationStepModel `gorm:"foreignKey:CelebrationProcessID;constraint:OnDelete:CASCADE" json:"steps"`
}

func (CelebrationProcessModel) TableName() string {
	return "celebration_processes"
}

type CelebrationStepModel struct {
	base.Base
	CelebrationProcessID uuid.UUID `gorm:"column:celebration_process_id;type:uuid;not null;index" json:"celebrationProcessId"`
	Title                string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description          *string   `gorm:"column:description;type:text" json:"description"`
	Icon                 *string   `gorm:"column:icon;type:varchar(50)" json:"icon"`
	base.Publishable
}

func (CelebrationStepModel) TableName() string {
	return "celebration_steps"
}

type GalleryModel struct {
	base.Base
	Title         string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description   *string `gorm:"column:description;type:text" json:"description"`
	Category      string  `gorm:"column:category;type:varchar(20);not null;index" json:"category"`
	CoverImageURL *string `gorm:"column:cover_image_url;type:text" json:"coverImageUrl"`
	base.Publishable

	Items []GalleryItemModel `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE" json:"items"`
}

func (GalleryModel) TableName() string {
	return "galleries"
}

type GalleryItemModel struct {
	base.Base
	GalleryID uuid.UUID `gorm:"column:gallery_id;type:uuid;not null;index" json:"galleryId"`
	ImageURL  string    `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	Caption   *string   `gorm:"column:caption;type:varchar(200)" json:"caption"`
	AltText   *string   `gorm:"column:alt_text;type:varchar(200)" json:"altText"`
	base.Publishable
}

func (GalleryItemModel) TableName() string {
	return "gallery_items"
}

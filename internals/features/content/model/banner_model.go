package model

import (
	"time"

	base "jewelry_backend/internals/features/resource/model"
)

type BannerModel struct {
	base.Base
	Title          string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Subtitle       *string    `gorm:"column:subtitle;type:varchar(300)" json:"subtitle"`
	Description    *string    `gorm:"column:description;type:text" json:"description"`
	ImageURL       string     `gorm:"column:image_url;type:text;not null" json:"imageUrl"`
	MobileImageURL *string    `gorm:"column:mobile_image_url;type:text" json:"mobileImageUrl"`
	ButtonText     *string    `gorm:"column:button_text;type:varchar(50)" json:"buttonText"`
	ButtonLink     *string    `gorm:"column:button_link;type:text" json:"buttonLink"`
	Position       string     `gorm:"column:position;type:varchar(20);not null;index" json:"position"`
	Priority       int        `gorm:"column:priority;not null" json:"priority"`
	StartDate      *time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate        *time.Time `gorm:"column:end_date" json:"endDate"`
	base.Publishable
}

func (BannerModel) TableName() string {
	return "banners"
}

type TopBannerModel struct {
	base.Base
	Text            string  `gorm:"column:text;type:varchar(200);not null" json:"text"`
	LinkURL         *string `gorm:"column:link_url;type:text" json:"linkUrl"`
	LinkText        *string `gorm:"column:link_text;type:varchar(50)" json:"linkText"`
	BackgroundColor *string `gorm:"column:background_color;type:varchar(20)" json:"backgroundColor"`
	TextColor       *string `gorm:"column:text_color;type:varchar(20)" json:"textColor"`
	base.Publishable
}

func (TopBannerModel) TableName() string {
	return "top_banners"
}

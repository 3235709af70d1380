package model

import base "jewelry_backend/internals/features/resource/model"

type CultureModel struct {
	base.Base
	Title       string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	Category    string  `gorm:"column:category;type:varchar(30);not null;index" json:"category"`
	base.Publishable
}

func (CultureModel) TableName() string {
	return "cultures"
}

type QuoteModel struct {
	base.Base
	Text   string  `gorm:"column:text;type:varchar(500);not null" json:"text"`
	Author *string `gorm:"column:author;type:varchar(100)" json:"author"`
	base.Publishable
}

func (QuoteModel) TableName() string {
	return "quotes"
}

type FAQModel struct {
	base.Base
	Question string `gorm:"column:question;type:varchar(500);not null" json:"question"`
	Answer   string `gorm:"column:answer;type:text;not null" json:"answer"`
	Category string `gorm:"column:category;type:varchar(30);not null;index" json:"category"`
	base.Publishable
}

func (FAQModel) TableName() string {
	return "faqs"
}

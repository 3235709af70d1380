package model

import base "jewelry_backend/internals/features/resource/model"

type TestimonialModel struct {
	base.Base
	CustomerName string  `gorm:"column:customer_name;type:varchar(100);not null" json:"customerName"`
	Content      string  `gorm:"column:content;type:text;not null" json:"content"`
	Rating       int     `gorm:"column:rating;not null" json:"rating"`
	Location     *string `gorm:"column:location;type:varchar(100)" json:"location"`
	ImageURL     *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	ProductName  *string `gorm:"column:product_name;type:varchar(200)" json:"productName"`
	IsFeatured   bool    `gorm:"column:is_featured;not null" json:"isFeatured"`
	base.Publishable
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

type TestimonialSectionModel struct {
	base.Base
	Title              string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Subtitle           *string `gorm:"column:subtitle;type:varchar(500)" json:"subtitle"`
	BackgroundImageURL *string `gorm:"column:background_image_url;type:text" json:"backgroundImageUrl"`
	base.Publishable
}

func (TestimonialSectionModel) TableName() string {
	return "testimonial_sections"
}

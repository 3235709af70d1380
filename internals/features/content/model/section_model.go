package model

import base "jewelry_backend/internals/features/resource/model"

// Marketing page blocks.

type WeddingPlannerModel struct {
	base.Base
	Title       string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	ButtonText  *string `gorm:"column:button_text;type:varchar(50)" json:"buttonText"`
	ButtonLink  *string `gorm:"column:button_link;type:text" json:"buttonLink"`
	SectionType string  `gorm:"column:section_type;type:varchar(20);not null;index" json:"sectionType"`
	base.Publishable
}

func (WeddingPlannerModel) TableName() string {
	return "wedding_planner_sections"
}

type RingCustomizationModel struct {
	base.Base
	Title       string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	OptionType  string  `gorm:"column:option_type;type:varchar(20);not null;index" json:"optionType"`
	PriceNote   *string `gorm:"column:price_note;type:varchar(100)" json:"priceNote"`
	base.Publishable
}

func (RingCustomizationModel) TableName() string {
	return "ring_customizations"
}

type DiamondCertificationModel struct {
	base.Base
	Title           string  `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description     string  `gorm:"column:description;type:text;not null" json:"description"`
	ImageURL        *string `gorm:"column:image_url;type:text" json:"imageUrl"`
	CertificateType string  `gorm:"column:certificate_type;type:varchar(10);not null;index" json:"certificateType"`
	LearnMoreURL    *string `gorm:"column:learn_more_url;type:text" json:"learnMoreUrl"`
	base.Publishable
}

func (DiamondCertificationModel) TableName() string {
	return "diamond_certifications"
}

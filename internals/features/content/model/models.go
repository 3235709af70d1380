package model

// All returns every content table in creation order (parents before children).
func All() []any {
	return []any{
		&BannerModel{},
		&TopBannerModel{},
		&CultureModel{},
		&QuoteModel{},
		&FAQModel{},
		&TestimonialModel{},
		&TestimonialSectionModel{},
		&WeddingPlannerModel{},
		&RingCustomizationModel{},
		&DiamondCertificationModel{},
		&CelebrationProcessModel{},
		&CelebrationStepModel{},
		&GalleryModel{},
		&GalleryItemModel{},
	}
}

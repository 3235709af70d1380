package resources

import "jewelry_backend/internals/features/resource/schema"

var WeddingPlanner = schema.Define(schema.Schema{
	Name:     "wedding-planner",
	Singular: "Wedding planner section",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Required: true, Max: 2000},
		{Name: "imageUrl", Kind: schema.URL},
		{Name: "buttonText", Kind: schema.ShortText, Max: 50},
		{Name: "buttonLink", Kind: schema.URL},
		{Name: "sectionType", Kind: schema.Enum, Options: []string{"hero", "service", "feature", "cta"}, Default: "service", Filterable: true},
	},
})

var RingCustomization = schema.Define(schema.Schema{
	Name:     "ring-customization",
	Singular: "Ring customization option",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Required: true, Max: 2000},
		{Name: "imageUrl", Kind: schema.URL},
		{Name: "optionType", Kind: schema.Enum, Options: []string{"metal", "stone", "setting", "band", "engraving"}, Default: "metal", Filterable: true},
		{Name: "priceNote", Kind: schema.ShortText, Max: 100},
	},
})

var DiamondCertification = schema.Define(schema.Schema{
	Name:     "diamond-certification",
	Singular: "Diamond certification",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Required: true, Max: 2000},
		{Name: "imageUrl", Kind: schema.URL},
		{Name: "certificateType", Kind: schema.Enum, Options: []string{"GIA", "IGI", "AGS", "HRD", "EGL"}, Default: "GIA", Filterable: true},
		{Name: "learnMoreUrl", Kind: schema.URL},
	},
})

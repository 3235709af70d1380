package resources

import "jewelry_backend/internals/features/resource/schema"

var Banners = schema.Define(schema.Schema{
	Name:     "banners",
	Singular: "Banner",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "subtitle", Kind: schema.ShortText, Max: 300},
		{Name: "description", Kind: schema.LongText, Max: 1000},
		{Name: "imageUrl", Kind: schema.URL, Required: true},
		{Name: "mobileImageUrl", Kind: schema.URL},
		{Name: "buttonText", Kind: schema.ShortText, Max: 50},
		{Name: "buttonLink", Kind: schema.URL},
		{Name: "position", Kind: schema.Enum, Options: []string{"hero", "secondary", "promo"}, Default: "hero", Filterable: true},
		{Name: "priority", Kind: schema.Int, Min: 0, Max: 1000, Default: 0},
		{Name: "startDate", Kind: schema.Date},
		{Name: "endDate", Kind: schema.Date},
	},
	Rules: []schema.Rule{
		schema.DateAfter("startDate", "endDate", "End date must be after start date"),
	},
	Window: &schema.Window{StartColumn: "start_date", EndColumn: "end_date"},
	PublicOrder: []schema.Order{
		{Column: "priority", Desc: true},
		{Column: "sort_order"},
		{Column: "created_at"},
	},
})

var TopBanners = schema.Define(schema.Schema{
	Name:     "top-banners",
	Singular: "Top banner",
	Fields: []schema.Field{
		{Name: "text", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "linkUrl", Kind: schema.URL},
		{Name: "linkText", Kind: schema.ShortText, Max: 50},
		{Name: "backgroundColor", Kind: schema.ShortText, Max: 20},
		{Name: "textColor", Kind: schema.ShortText, Max: 20},
	},
})

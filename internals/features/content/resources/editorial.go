package resources

import "jewelry_backend/internals/features/resource/schema"

var Cultures = schema.Define(schema.Schema{
	Name:     "cultures",
	Singular: "Culture",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Required: true, Max: 2000, Searchable: true},
		{Name: "imageUrl", Kind: schema.URL},
		{Name: "category", Kind: schema.Enum, Options: []string{"tradition", "craftsmanship", "heritage", "ceremony"}, Default: "tradition", Filterable: true},
	},
})

var Quotes = schema.Define(schema.Schema{
	Name:     "quotes",
	Singular: "Quote",
	Fields: []schema.Field{
		{Name: "text", Kind: schema.ShortText, Required: true, Max: 500, Searchable: true},
		{Name: "author", Kind: schema.ShortText, Max: 100, Searchable: true},
	},
})

var FAQs = schema.Define(schema.Schema{
	Name:     "faqs",
	Singular: "FAQ",
	Fields: []schema.Field{
		{Name: "question", Kind: schema.ShortText, Required: true, Max: 500, Searchable: true},
		{Name: "answer", Kind: schema.LongText, Required: true, Max: 5000, Searchable: true},
		{Name: "category", Kind: schema.Enum, Options: []string{"general", "orders", "shipping", "returns", "products", "custom", "care"}, Default: "general", Filterable: true},
	},
})

var Testimonials = schema.Define(schema.Schema{
	Name:     "testimonials",
	Singular: "Testimonial",
	Fields: []schema.Field{
		{Name: "customerName", Kind: schema.ShortText, Required: true, Max: 100, Searchable: true},
		{Name: "content", Kind: schema.LongText, Required: true, Max: 2000, Searchable: true},
		{Name: "rating", Kind: schema.Int, Min: 1, Max: 5, Default: 5},
		{Name: "location", Kind: schema.ShortText, Max: 100},
		{Name: "imageUrl", Kind: schema.URL},
		{Name: "productName", Kind: schema.ShortText, Max: 200},
		{Name: "isFeatured", Kind: schema.Bool, Default: false},
	},
})

var TestimonialSections = schema.Define(schema.Schema{
	Name:     "testimonial-sections",
	Singular: "Testimonial section",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "subtitle", Kind: schema.ShortText, Max: 500},
		{Name: "backgroundImageUrl", Kind: schema.URL},
	},
})

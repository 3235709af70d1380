package resources

import "jewelry_backend/internals/features/resource/schema"

var celebrationSteps = schema.Define(schema.Schema{
	Name:     "steps",
	Singular: "Step",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200},
		{Name: "description", Kind: schema.LongText, Max: 1000},
		{Name: "icon", Kind: schema.ShortText, Max: 50},
	},
})

var CelebrationProcess = schema.Define(schema.Schema{
	Name:     "celebration-process",
	Singular: "Celebration process",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Max: 2000},
		{Name: "imageUrl", Kind: schema.URL},
	},
	Children: []schema.Child{{
		Name:        "steps",
		Association: "Steps",
		ForeignKey:  "celebration_process_id",
		ParentField: "celebrationProcessId",
		Schema:      celebrationSteps,
	}},
})

var galleryItems = schema.Define(schema.Schema{
	Name:     "items",
	Singular: "Gallery item",
	Fields: []schema.Field{
		{Name: "imageUrl", Kind: schema.URL, Required: true},
		{Name: "caption", Kind: schema.ShortText, Max: 200},
		{Name: "altText", Kind: schema.ShortText, Max: 200},
	},
})

var Galleries = schema.Define(schema.Schema{
	Name:     "galleries",
	Singular: "Gallery",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 200, Searchable: true},
		{Name: "description", Kind: schema.LongText, Max: 1000},
		{Name: "category", Kind: schema.Enum, Options: []string{"rings", "necklaces", "earrings", "bracelets", "bridal", "custom"}, Default: "rings", Filterable: true},
		{Name: "coverImageUrl", Kind: schema.URL},
	},
	Children: []schema.Child{{
		Name:        "items",
		Association: "Items",
		ForeignKey:  "gallery_id",
		ParentField: "galleryId",
		Schema:      galleryItems,
	}},
})

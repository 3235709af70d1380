// Package resources declares the content resources managed through the
// admin API. Each entry is a schema; the server and the admin client both
// read from this list.
package resources

import "jewelry_backend/internals/features/resource/schema"

// All lists every resource in menu order.
var All = []*schema.Schema{
	Banners,
	TopBanners,
	Cultures,
	Quotes,
	FAQs,
	Testimonials,
	TestimonialSections,
	WeddingPlanner,
	RingCustomization,
	DiamondCertification,
	CelebrationProcess,
	Galleries,
}

func Find(name string) (*schema.Schema, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func Names() []string {
	out := make([]string, len(All))
	for i, s := range All {
		out[i] = s.Name
	}
	return out
}

// internal/catalog/seed.go
package catalog

import "github.com/maison-aurelle/aurelle-backend/internal/models"

// First-boot dataset for the maison's four collections.

var seedCategories = []models.Category{
	{
		Slug:        "watches",
		Name:        "Haute Horlogerie",
		Description: "Swiss-made timepieces finished by hand in the maison's atelier.",
		PriceRange:  "$8,500 – $68,000",
	},
	{
		Slug:        "necklaces",
		Name:        "Necklaces & Pendants",
		Description: "Statement pieces in 18k gold with conflict-free stones.",
		PriceRange:  "$3,200 – $24,000",
	},
	{
		Slug:        "rings",
		Name:        "Rings",
		Description: "Engagement and cocktail rings, sized to order.",
		PriceRange:  "$1,800 – $32,000",
	},
	{
		Slug:        "bracelets",
		Name:        "Bracelets & Cuffs",
		Description: "Sculptural cuffs and tennis bracelets.",
		PriceRange:  "$2,400 – $18,500",
	},
}

var seedProducts = []models.Product{
	{
		ID:           "prod_meridian-tourbillon",
		Name:         "Meridian Tourbillon",
		Description:  "Flying tourbillon in a 40mm rose gold case, hand-guilloché dial, alligator strap.",
		Price:        68000,
		Currency:     "USD",
		Stock:        3,
		CategorySlug: "watches",
		CategoryName: "Haute Horlogerie",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/meridian-tourbillon-front.jpg",
			"https://cdn.maison-aurelle.com/products/meridian-tourbillon-back.jpg",
		},
		Specifications: []string{
			"18k rose gold case, 40mm",
			"Manual-wind calibre MA-7, 72h power reserve",
			"Sapphire crystal front and back",
			"Hand-stitched alligator strap",
		},
	},
	{
		ID:           "prod_comtesse-automatic",
		Name:         "Comtesse Automatic",
		Description:  "36mm steel-and-gold automatic with a mother-of-pearl dial and diamond indices.",
		Price:        12400,
		Currency:     "USD",
		Stock:        8,
		CategorySlug: "watches",
		CategoryName: "Haute Horlogerie",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/comtesse-automatic.jpg",
		},
		Specifications: []string{
			"Two-tone case, 36mm",
			"Automatic calibre, 42h power reserve",
			"Mother-of-pearl dial, 12 diamond indices",
		},
	},
	{
		ID:           "prod_lumiere-riviere",
		Name:         "Lumière Rivière Necklace",
		Description:  "Graduated rivière of 45 brilliant-cut diamonds set in platinum.",
		Price:        24000,
		Currency:     "USD",
		Stock:        2,
		CategorySlug: "necklaces",
		CategoryName: "Necklaces & Pendants",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/lumiere-riviere.jpg",
		},
		Specifications: []string{
			"Platinum 950",
			"11.2ct total, F-G colour, VS clarity",
			"42cm with 3cm extender",
		},
	},
	{
		ID:           "prod_perle-du-nord",
		Name:         "Perle du Nord Pendant",
		Description:  "South Sea pearl pendant on an 18k white gold chain.",
		Price:        3200,
		Currency:     "USD",
		Stock:        12,
		CategorySlug: "necklaces",
		CategoryName: "Necklaces & Pendants",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/perle-du-nord.jpg",
		},
		Specifications: []string{
			"13mm South Sea pearl",
			"18k white gold, 45cm chain",
		},
	},
	{
		ID:           "prod_solitaire-aurelle",
		Name:         "Solitaire Aurelle",
		Description:  "Signature 2ct oval solitaire on a knife-edge platinum band.",
		Price:        32000,
		Currency:     "USD",
		Stock:        4,
		CategorySlug: "rings",
		CategoryName: "Rings",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/solitaire-aurelle.jpg",
		},
		Specifications: []string{
			"2.01ct oval, E colour, VS1",
			"Platinum 950 knife-edge band",
			"GIA certificate included",
		},
	},
	{
		ID:           "prod_bague-jardin",
		Name:         "Bague Jardin",
		Description:  "Emerald cocktail ring surrounded by a pavé of yellow sapphires.",
		Price:        9800,
		Currency:     "USD",
		Stock:        6,
		CategorySlug: "rings",
		CategoryName: "Rings",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/bague-jardin.jpg",
		},
		Specifications: []string{
			"3.4ct Colombian emerald",
			"18k yellow gold",
		},
	},
	{
		ID:           "prod_manchette-eclat",
		Name:         "Manchette Éclat",
		Description:  "Sculptural open cuff in brushed 18k gold, made to order.",
		Price:        7600,
		Currency:     "USD",
		Stock:        5,
		CategorySlug: "bracelets",
		CategoryName: "Bracelets & Cuffs",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/manchette-eclat.jpg",
		},
		Specifications: []string{
			"18k brushed yellow gold",
			"Interior circumference 16.5cm",
		},
	},
	{
		ID:           "prod_tennis-celeste",
		Name:         "Tennis Céleste",
		Description:  "Classic line bracelet, 5ct of round brilliants in four-prong settings.",
		Price:        18500,
		Currency:     "USD",
		Stock:        7,
		CategorySlug: "bracelets",
		CategoryName: "Bracelets & Cuffs",
		Images: []string{
			"https://cdn.maison-aurelle.com/products/tennis-celeste.jpg",
		},
		Specifications: []string{
			"5.0ct total, G-H colour",
			"18k white gold, double safety clasp",
		},
	},
}

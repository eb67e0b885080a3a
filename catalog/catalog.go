// Package catalog provides the static product catalog. The catalog is fixed
// at build time; the storefront modules only read from it.
package catalog

import (
	"strings"

	"github.com/vastrakart/vastrakart-api/models"
)

var products = []models.Product{
	{
		ID:            1,
		Name:          "Handwoven Banarasi Silk Saree",
		Price:         12999,
		OriginalPrice: 18999,
		Image:         "/images/banarasi-silk-saree.jpg",
		Badge:         "Bestseller",
		Rating:        4.8,
		Reviews:       124,
		Fabric:        "Silk",
		Color:         "Golden",
		Occasion:      "Wedding",
		Category:      "Sarees",
		Description:   "Exquisite handwoven Banarasi silk saree featuring traditional motifs and intricate zari work.",
		Features: []string{
			"Handwoven by master craftsmen",
			"Pure silk with gold zari work",
			"Traditional Banarasi motifs",
			"Includes matching blouse piece",
		},
	},
	{
		ID:            2,
		Name:          "Cotton Chanderi Suit Set",
		Price:         4999,
		OriginalPrice: 7999,
		Image:         "/images/chanderi-suit-set.jpg",
		Badge:         "New",
		Rating:        4.9,
		Reviews:       89,
		Fabric:        "Cotton",
		Color:         "Pink",
		Occasion:      "Casual",
		Category:      "Suits",
		Description:   "Elegant cotton Chanderi suit set perfect for daily wear and casual occasions.",
		Features: []string{
			"Soft cotton Chanderi fabric",
			"Comfortable fit",
			"Machine washable",
			"Includes dupatta",
		},
	},
	{
		ID:            3,
		Name:          "Georgette Party Wear Saree",
		Price:         8999,
		OriginalPrice: 12999,
		Image:         "/images/georgette-party-saree.jpg",
		Badge:         "Limited",
		Rating:        4.7,
		Reviews:       156,
		Fabric:        "Georgette",
		Color:         "Maroon",
		Occasion:      "Party",
		Category:      "Sarees",
		Description:   "Stunning georgette saree with elegant drape, perfect for parties and celebrations.",
		Features: []string{
			"Lightweight georgette fabric",
			"Beautiful drape",
			"Party wear design",
			"Easy to carry",
		},
	},
	{
		ID:            4,
		Name:          "Pure Silk Anarkali Suit",
		Price:         15999,
		OriginalPrice: 22999,
		Image:         "/images/silk-anarkali-suit.jpg",
		Badge:         "Premium",
		Rating:        4.9,
		Reviews:       203,
		Fabric:        "Silk",
		Color:         "Blue",
		Occasion:      "Wedding",
		Category:      "Suits",
		Description:   "Luxurious pure silk Anarkali suit with intricate embroidery work.",
		Features: []string{
			"Pure silk fabric",
			"Intricate embroidery",
			"Wedding collection",
			"Premium quality",
		},
	},
	{
		ID:            5,
		Name:          "Chiffon Floral Print Saree",
		Price:         6999,
		OriginalPrice: 9999,
		Image:         "/images/chiffon-floral-saree.jpg",
		Badge:         "Sale",
		Rating:        4.6,
		Reviews:       78,
		Fabric:        "Chiffon",
		Color:         "Green",
		Occasion:      "Office",
		Category:      "Sarees",
		Description:   "Elegant chiffon saree with beautiful floral prints, ideal for office wear.",
		Features: []string{
			"Soft chiffon fabric",
			"Floral print design",
			"Office appropriate",
			"Comfortable wear",
		},
	},
	{
		ID:            6,
		Name:          "Embroidered Palazzo Suit",
		Price:         7999,
		OriginalPrice: 11999,
		Image:         "/images/palazzo-suit-set.jpg",
		Badge:         "Trending",
		Rating:        4.8,
		Reviews:       145,
		Fabric:        "Cotton",
		Color:         "Cream",
		Occasion:      "Festive",
		Category:      "Suits",
		Description:   "Trendy palazzo suit with beautiful embroidery work, perfect for festive occasions.",
		Features: []string{
			"Comfortable palazzo style",
			"Beautiful embroidery",
			"Festive wear",
			"Modern design",
		},
	},
	{
		ID:            7,
		Name:          "Kanjivaram Silk Saree",
		Price:         18999,
		OriginalPrice: 25999,
		Image:         "/images/kanjivaram-silk-saree.jpg",
		Badge:         "Heritage",
		Rating:        4.9,
		Reviews:       267,
		Fabric:        "Silk",
		Color:         "Red",
		Occasion:      "Wedding",
		Category:      "Sarees",
		Description:   "Traditional Kanjivaram silk saree with rich zari work and vibrant colors.",
		Features: []string{
			"Authentic Kanjivaram silk",
			"Rich zari work",
			"Traditional design",
			"Wedding special",
		},
	},
	{
		ID:            8,
		Name:          "Linen Casual Suit Set",
		Price:         3999,
		OriginalPrice: 5999,
		Image:         "/images/linen-casual-suit.jpg",
		Badge:         "Comfort",
		Rating:        4.5,
		Reviews:       92,
		Fabric:        "Linen",
		Color:         "White",
		Occasion:      "Casual",
		Category:      "Suits",
		Description:   "Comfortable linen suit set perfect for casual outings and daily wear.",
		Features: []string{
			"Breathable linen fabric",
			"Casual comfort",
			"Easy maintenance",
			"Summer friendly",
		},
	},
}

// Products returns the full catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ProductByID returns the catalog entry with the given id.
func ProductByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsByCategory returns all products in the given category,
// case-insensitively.
func ProductsByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts returns all products whose name, fabric or category
// contains the query, case-insensitively.
func SearchProducts(query string) []models.Product {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Fabric), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

package models

// Product is a catalog entry. Products are sourced from the static catalog
// and never created or mutated by the storefront modules.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Image         string   `json:"image"`
	Badge         string   `json:"badge,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Reviews       int      `json:"reviews,omitempty"`
	Fabric        string   `json:"fabric,omitempty"`
	Color         string   `json:"color,omitempty"`
	Occasion      string   `json:"occasion,omitempty"`
	Category      string   `json:"category,omitempty"`
	Description   string   `json:"description,omitempty"`
	Features      []string `json:"features,omitempty"`
}

package models

// Product is a purchasable catalog entry. Price is in minor currency
// units (centavos) and must be positive.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Images      []string `json:"images"`
}

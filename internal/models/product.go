package models

// Product represents a product entity in the grocery inventory.
// ExpiryDate travels as an ISO-8601 string, the same way it is exposed
// over the wire.
type Product struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	ExpiryDate string  `json:"expiry_date"`
}

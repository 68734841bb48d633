package handlers

// ProductRequest is the payload for creating or fully replacing a product.
// Quantity and Price are pointers so that a missing field can be told apart
// from a legitimate zero; a non-numeric value fails JSON decoding and is
// rejected before validation runs.
type ProductRequest struct {
	Name       string   `json:"name"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	ExpiryDate string   `json:"expiry_date"`
}

// MessageResponse is the success envelope for mutating endpoints. ProductID
// is only set on create.
type MessageResponse struct {
	Message   string `json:"message"`
	ProductID int    `json:"productId,omitempty"`
}

// ErrorResponse is the failure envelope for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of a passing health check.
type HealthResponse struct {
	Status string `json:"status"`
}

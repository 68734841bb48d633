package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct checks the contract's presence rules: all four fields must
// be present, and name/expiry_date non-empty after trimming. The numeric rule
// for quantity and price is enforced by the typed request fields at decode
// time. Nothing stricter is applied: negative values and unusual date
// contents pass through to the store.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Description: "name is required"})
	}
	if p.Quantity == nil {
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "quantity is required and must be a number"})
	}
	if p.Price == nil {
		errs = append(errs, ProductValidationError{Field: "price", Description: "price is required and must be a number"})
	}
	if strings.TrimSpace(p.ExpiryDate) == "" {
		errs = append(errs, ProductValidationError{Field: "expiry_date", Description: "expiry_date is required"})
	}
	return errs
}

func validationMessage(errs []ProductValidationError) string {
	descriptions := make([]string, len(errs))
	for i, e := range errs {
		descriptions[i] = e.Description
	}
	return strings.Join(descriptions, "; ")
}

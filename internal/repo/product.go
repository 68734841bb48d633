package repo

import (
	"errors"

	models "github.com/rogerio-castellano/grocery-inventory/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
// Update and Delete report it when their statement affected zero rows, so the
// caller can distinguish "no such product" from a storage failure.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	// Search returns all products whose name contains the given substring.
	// An empty query matches everything. Case-sensitivity follows the
	// backing store's pattern-match semantics.
	Search(query string) ([]models.Product, error)
}

package handlers_test_suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/grocery-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/grocery-inventory/internal/models"
	"github.com/rogerio-castellano/grocery-inventory/internal/repo"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, validRequest())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Product added successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.ProductID <= 0 {
		t.Errorf("expected a positive productId, got %d", resp.ProductID)
	}

	// The created product must come back from the listing with the
	// submitted field values and the returned id.
	lw := listProducts(r)
	if lw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK listing products, got %d", lw.Code)
	}
	var products []models.Product
	if err := json.NewDecoder(lw.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != resp.ProductID {
		t.Errorf("expected id %d, got %d", resp.ProductID, p.ID)
	}
	if p.Name != "Milk" || p.Quantity != 10 || p.Price != 2.5 || p.ExpiryDate != "2025-01-01" {
		t.Errorf("stored product does not match submitted values: %+v", p)
	}
}

func TestCreateProductHandler_InvalidPayloads(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name    string
		payload string
	}{
		{"missing name", `{"quantity":1,"price":2.5,"expiry_date":"2025-01-01"}`},
		{"blank name", `{"name":"   ","quantity":1,"price":2.5,"expiry_date":"2025-01-01"}`},
		{"missing quantity", `{"name":"Milk","price":2.5,"expiry_date":"2025-01-01"}`},
		{"missing price", `{"name":"Milk","quantity":1,"expiry_date":"2025-01-01"}`},
		{"missing expiry_date", `{"name":"Milk","quantity":1,"price":2.5}`},
		{"blank expiry_date", `{"name":"Milk","quantity":1,"price":2.5,"expiry_date":" "}`},
		{"non-numeric quantity", `{"name":"Milk","quantity":"abc","price":2.5,"expiry_date":"2025-01-01"}`},
		{"non-numeric price", `{"name":"Milk","quantity":1,"price":"abc","expiry_date":"2025-01-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRawRequest(r, http.MethodPost, "/products", tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected a non-empty error message")
			}
			// No storage mutation may have happened.
			if productRepo.Count() != 0 {
				t.Errorf("expected no stored products, got %d", productRepo.Count())
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	badJSON := `{name: "Invalid" price: 100 "}`
	w := doRawRequest(r, http.MethodPost, "/products", badJSON)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_NegativeValuesAccepted(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	// The contract only requires presence and numeric values; negatives
	// are deliberately not rejected.
	w := createProduct(r, handler.ProductRequest{
		Name:       "Expired Stock",
		Quantity:   intPtr(-3),
		Price:      floatPtr(-1.5),
		ExpiryDate: "2020-01-01",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201 Created for negative values, got %d", w.Code)
	}
}

func TestGetProductsHandler_EmptyTable(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := listProducts(r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	cw := createProduct(r, validRequest())
	var created handler.MessageResponse
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/products/%d", created.ProductID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.ID != created.ProductID || p.Name != "Milk" {
		t.Errorf("unexpected product: %+v", p)
	}

	if w := doRequest(r, http.MethodGet, "/products/999999", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/products/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-integer id, got %d", w.Code)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	cw := createProduct(r, validRequest())
	var created handler.MessageResponse
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	update := handler.ProductRequest{
		Name:       "Milk",
		Quantity:   intPtr(5),
		Price:      floatPtr(2.5),
		ExpiryDate: "2025-01-01",
	}
	w := doRequest(r, http.MethodPut, fmt.Sprintf("/products/%d", created.ProductID), update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Product updated successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	// The replacement must be visible through the listing.
	lw := listProducts(r)
	var products []models.Product
	if err := json.NewDecoder(lw.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 1 || products[0].Quantity != 5 {
		t.Errorf("expected quantity 5 after update, got %+v", products)
	}
}

func TestUpdateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	cw := createProduct(r, validRequest())
	var created handler.MessageResponse
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	path := fmt.Sprintf("/products/%d", created.ProductID)

	// Validation failure must not mutate the stored row.
	w := doRawRequest(r, http.MethodPut, path, `{"name":"","quantity":99,"price":9.9,"expiry_date":"2030-01-01"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid payload, got %d", w.Code)
	}
	stored, err := productRepo.GetByID(created.ProductID)
	if err != nil {
		t.Fatalf("product lookup failed: %v", err)
	}
	if stored.Quantity != 10 || stored.Name != "Milk" {
		t.Errorf("row mutated by rejected update: %+v", stored)
	}

	if w := doRequest(r, http.MethodPut, "/products/999999", validRequest()); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodPut, "/products/abc", validRequest()); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-integer id, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	cw := createProduct(r, validRequest())
	var created handler.MessageResponse
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	path := fmt.Sprintf("/products/%d", created.ProductID)

	w := doRequest(r, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Product deleted successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	// Removal is idempotent from the client's point of view: the row is
	// gone and a repeat delete reports not found.
	lw := listProducts(r)
	var products []models.Product
	if err := json.NewDecoder(lw.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	for _, p := range products {
		if p.ID == created.ProductID {
			t.Errorf("deleted product still listed: %+v", p)
		}
	}
	if w := doRequest(r, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeat delete, got %d", w.Code)
	}
}

func TestDeleteProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodDelete, "/products/999999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if productRepo.Count() != 0 {
		t.Errorf("table changed by failed delete")
	}
}

func TestProductLifecycle(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	cw := createProduct(r, validRequest())
	if cw.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", cw.Code)
	}
	var created handler.MessageResponse
	if err := json.NewDecoder(cw.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	update := validRequest()
	update.Quantity = intPtr(5)
	if w := doRequest(r, http.MethodPut, fmt.Sprintf("/products/%d", created.ProductID), update); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ProductID), nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}

	lw := listProducts(r)
	var products []models.Product
	if err := json.NewDecoder(lw.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty listing after delete, got %+v", products)
	}
}

// errorRepo fails every operation, standing in for a lost store connection.
type errorRepo struct{}

var errStore = errors.New("connection refused")

func (errorRepo) Create(models.Product) (models.Product, error) { return models.Product{}, errStore }
func (errorRepo) GetAll() ([]models.Product, error)             { return nil, errStore }
func (errorRepo) GetByID(int) (models.Product, error)           { return models.Product{}, errStore }
func (errorRepo) Update(models.Product) (models.Product, error) { return models.Product{}, errStore }
func (errorRepo) Delete(int) error                              { return errStore }
func (errorRepo) Search(string) ([]models.Product, error)       { return nil, errStore }

var _ repo.ProductRepository = errorRepo{}

func TestStorageFailuresAreGeneric(t *testing.T) {
	handler.SetProductRepo(errorRepo{})
	t.Cleanup(func() { handler.SetProductRepo(productRepo) })
	r := newRouter()

	tests := []struct {
		name    string
		method  string
		path    string
		body    any
		message string
	}{
		{"list", http.MethodGet, "/products", nil, "Failed to retrieve products."},
		{"search", http.MethodGet, "/search?q=a", nil, "Failed to search products."},
		{"create", http.MethodPost, "/products", validRequest(), "Failed to add product."},
		{"update", http.MethodPut, "/products/1", validRequest(), "Failed to update product."},
		{"delete", http.MethodDelete, "/products/1", nil, "Failed to delete product."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			// Internal detail must never leak to the client.
			if resp.Error != tt.message {
				t.Errorf("expected %q, got %q", tt.message, resp.Error)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}

	handler.SetPinger(stubPinger{err: errors.New("down")})
	t.Cleanup(func() { handler.SetPinger(stubPinger{}) })
	if w := doRequest(r, http.MethodGet, "/healthz", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when the store is unreachable, got %d", w.Code)
	}
}

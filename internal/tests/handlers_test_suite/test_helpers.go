package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/grocery-inventory/internal/http"
	handler "github.com/rogerio-castellano/grocery-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/grocery-inventory/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error { return p.err }

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
	handler.SetPinger(stubPinger{})
}

func clearAllProducts() {
	productRepo.Clear()
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRawRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", p)
}

func validRequest() handler.ProductRequest {
	return handler.ProductRequest{
		Name:       "Milk",
		Quantity:   intPtr(10),
		Price:      floatPtr(2.5),
		ExpiryDate: "2025-01-01",
	}
}

func listProducts(r http.Handler) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, "/products", nil)
}

func newRouter() http.Handler {
	return api.NewRouter()
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	models "github.com/rogerio-castellano/grocery-inventory/internal/models"
	repo "github.com/rogerio-castellano/grocery-inventory/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeError(w, http.StatusBadRequest, validationMessage(validationErrors))
		return
	}

	product := models.Product{
		Name:       strings.TrimSpace(req.Name),
		Quantity:   *req.Quantity,
		Price:      *req.Price,
		ExpiryDate: strings.TrimSpace(req.ExpiryDate),
	}
	created, err := productRepo.Create(product)
	if err != nil {
		logger.Error("failed to add product", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to add product.")
		return
	}

	if cache != nil {
		cache.InvalidateProductList()
	}
	writeJSON(w, http.StatusCreated, MessageResponse{
		Message:   "Product added successfully!",
		ProductID: created.ID,
	})
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if cache != nil {
		if products, ok := cache.GetProductList(); ok {
			writeJSON(w, http.StatusOK, products)
			return
		}
	}

	products, err := productRepo.GetAll()
	if err != nil {
		logger.Error("failed to retrieve products", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve products.")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	if cache != nil {
		cache.SetProductList(products)
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("failed to retrieve product", slog.Int("id", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve product.")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces all four business fields of the product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeError(w, http.StatusBadRequest, validationMessage(validationErrors))
		return
	}

	product := models.Product{
		ID:         id,
		Name:       strings.TrimSpace(req.Name),
		Quantity:   *req.Quantity,
		Price:      *req.Price,
		ExpiryDate: strings.TrimSpace(req.ExpiryDate),
	}
	if _, err := productRepo.Update(product); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("failed to update product", slog.Int("id", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to update product.")
		return
	}

	if cache != nil {
		cache.InvalidateProductList()
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product updated successfully!"})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("failed to delete product", slog.Int("id", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to delete product.")
		return
	}

	if cache != nil {
		cache.InvalidateProductList()
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully!"})
}

// SearchProductsHandler godoc
// @Summary Search products by name substring
// @Description Match case-sensitivity follows the backing store's collation
// @Tags products
// @Produce json
// @Param q query string false "Substring to match against product names"
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	products, err := productRepo.Search(q)
	if err != nil {
		logger.Error("failed to search products", slog.String("q", q), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to search products.")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"atelie-gestor/models"
	"atelie-gestor/repository"
	"atelie-gestor/service"
)

// ProductController handles HTTP requests for catalog products and their photos
type ProductController struct {
	repository   repository.ProductRepositoryInterface
	syncService  service.SyncServiceInterface
	driveService service.DriveServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(
	repo repository.ProductRepositoryInterface,
	syncService service.SyncServiceInterface,
	driveService service.DriveServiceInterface,
) *ProductController {
	return &ProductController{
		repository:   repo,
		syncService:  syncService,
		driveService: driveService,
	}
}

// SyncProducts handles POST /products/sync
// Pulls the product photo folder from Google Drive into the products table
func (c *ProductController) SyncProducts(w http.ResponseWriter, r *http.Request) {
	if c.syncService == nil {
		http.Error(w, "Google Drive integration is not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := os.Getenv("PRODUCT_PHOTOS_FOLDER_ID")
	if folderID == "" {
		http.Error(w, "PRODUCT_PHOTOS_FOLDER_ID environment variable is not set", http.StatusInternalServerError)
		return
	}

	log.Printf("📥 SyncProducts: sync request received for folder: %s", folderID)

	inserted, skipped, total, err := c.syncService.SyncProducts(context.Background(), folderID)
	if err != nil {
		log.Printf("❌ SyncProducts: sync failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync products: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.ProductSyncResponse{
		Inserted: inserted,
		Skipped:  skipped,
		Total:    total,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ SyncProducts: Error encoding response: %v", err)
	}
}

// ListProducts handles GET /products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	products, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListProducts: Error listing products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(products); err != nil {
		log.Printf("❌ ListProducts: Error encoding response: %v", err)
	}
}

// GetProductImage handles GET /products/:id/image?size=thumb|medium
// Serves an optimized JPEG, downloading from Drive and caching on first hit
func (c *ProductController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/products/")
	id := strings.TrimSuffix(path, "/image")
	if id == "" || id == path {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	ctx := context.Background()

	product, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetProductImage: Error getting product %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get product: %v", err), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if product.DriveFileID == "" {
		http.Error(w, "Product has no photo", http.StatusNotFound)
		return
	}

	cachePath := service.GetCachePath(product.ID, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.Write(data)
			return
		}
		log.Printf("⚠️  GetProductImage: cache read failed for %s, refetching: %v", cachePath, err)
	}

	if c.driveService == nil {
		http.Error(w, "Google Drive integration is not configured", http.StatusServiceUnavailable)
		return
	}

	raw, err := c.driveService.DownloadImage(product.DriveFileID)
	if err != nil {
		log.Printf("❌ GetProductImage: Error downloading image for product %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to download image: %v", err), http.StatusBadGateway)
		return
	}

	optimized, err := service.OptimizeImage(raw, size)
	if err != nil {
		log.Printf("❌ GetProductImage: Error optimizing image for product %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  GetProductImage: failed to cache image: %v", err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(optimized)
}

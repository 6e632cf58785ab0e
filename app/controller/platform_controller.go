package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"atelie-gestor/models"
	"atelie-gestor/repository"
)

// PlatformController handles HTTP requests for sales platforms
type PlatformController struct {
	repository repository.PlatformRepositoryInterface
}

// NewPlatformController creates a new PlatformController
func NewPlatformController(repo repository.PlatformRepositoryInterface) *PlatformController {
	return &PlatformController{
		repository: repo,
	}
}

// CreatePlatform handles POST /platforms
func (c *PlatformController) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreatePlatform: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreatePlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreatePlatform: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreatePlatform: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.FeePercentage < 0 || req.FeePercentage >= 100 {
		log.Printf("❌ CreatePlatform: Invalid feePercentage: %v", req.FeePercentage)
		http.Error(w, "feePercentage must be in [0, 100)", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	platform, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreatePlatform: Error creating platform: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create platform: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreatePlatform: Created platform - id=%s, name=%s, fee=%.2f%%", platform.ID, platform.Name, platform.FeePercentage)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(platform); err != nil {
		log.Printf("❌ CreatePlatform: Error encoding response: %v", err)
	}
}

// ListPlatforms handles GET /platforms
func (c *PlatformController) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	platforms, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListPlatforms: Error listing platforms: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list platforms: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(platforms); err != nil {
		log.Printf("❌ ListPlatforms: Error encoding response: %v", err)
	}
}

// DeletePlatform handles DELETE /platforms/:id
// Quotes referencing the deleted platform keep the reference; the pricing
// engine then charges no platform fee.
func (c *PlatformController) DeletePlatform(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/platforms/")
	if id == "" {
		http.Error(w, "platform id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if err := c.repository.Delete(ctx, id); err != nil {
		log.Printf("❌ DeletePlatform: Error deleting platform %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Platform not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete platform: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeletePlatform: Deleted platform - id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

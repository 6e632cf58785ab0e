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

// MaterialController handles HTTP requests for the material catalog
type MaterialController struct {
	repository repository.MaterialRepositoryInterface
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(repo repository.MaterialRepositoryInterface) *MaterialController {
	return &MaterialController{
		repository: repo,
	}
}

// CreateMaterial handles POST /materials
func (c *MaterialController) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateMaterial: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateMaterial: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreateMaterial: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		log.Printf("❌ CreateMaterial: Invalid price: %v", req.Price)
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	material, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateMaterial: Error creating material: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create material: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateMaterial: Created material - id=%s, name=%s", material.ID, material.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(material); err != nil {
		log.Printf("❌ CreateMaterial: Error encoding response: %v", err)
	}
}

// ListMaterials handles GET /materials
func (c *MaterialController) ListMaterials(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	materials, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListMaterials: Error listing materials: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list materials: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(materials); err != nil {
		log.Printf("❌ ListMaterials: Error encoding response: %v", err)
	}
}

// UpdateMaterial handles PUT /materials/:id
func (c *MaterialController) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/materials/")
	if id == "" {
		http.Error(w, "material id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateMaterial: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	material, err := c.repository.Update(ctx, id, &req)
	if err != nil {
		log.Printf("❌ UpdateMaterial: Error updating material %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update material: %v", err), http.StatusInternalServerError)
		return
	}
	if material == nil {
		http.Error(w, "Material not found", http.StatusNotFound)
		return
	}

	log.Printf("✅ UpdateMaterial: Updated material - id=%s", material.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(material); err != nil {
		log.Printf("❌ UpdateMaterial: Error encoding response: %v", err)
	}
}

// DeleteMaterial handles DELETE /materials/:id
// Quotes referencing the deleted material keep the reference; the pricing
// engine prices the dangling usage at zero.
func (c *MaterialController) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/materials/")
	if id == "" {
		http.Error(w, "material id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if err := c.repository.Delete(ctx, id); err != nil {
		log.Printf("❌ DeleteMaterial: Error deleting material %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Material not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete material: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteMaterial: Deleted material - id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

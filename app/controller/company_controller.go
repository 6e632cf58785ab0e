package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"atelie-gestor/models"
	"atelie-gestor/repository"
)

// CompanyController handles HTTP requests for the single-row company settings
type CompanyController struct {
	repository repository.CompanyRepositoryInterface
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(repo repository.CompanyRepositoryInterface) *CompanyController {
	return &CompanyController{
		repository: repo,
	}
}

// GetCompanyData handles GET /company
// Returns the zero settings record while the studio hasn't saved any.
func (c *CompanyController) GetCompanyData(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	company, err := c.repository.Get(ctx)
	if err != nil {
		log.Printf("❌ GetCompanyData: Error getting company data: %v", err)
		http.Error(w, fmt.Sprintf("Failed to get company data: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(company); err != nil {
		log.Printf("❌ GetCompanyData: Error encoding response: %v", err)
	}
}

// UpdateCompanyData handles PUT /company
func (c *CompanyController) UpdateCompanyData(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateCompanyData: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateCompanyDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCompanyData: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	company, err := c.repository.Update(ctx, &req)
	if err != nil {
		log.Printf("❌ UpdateCompanyData: Error updating company data: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update company data: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateCompanyData: Updated company settings - hourlyRate=%.2f, fixedCostsMonthly=%.2f", company.HourlyRate, company.FixedCostsMonthly)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(company); err != nil {
		log.Printf("❌ UpdateCompanyData: Error encoding response: %v", err)
	}
}

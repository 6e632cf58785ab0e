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

// CustomerController handles HTTP requests for customers
type CustomerController struct {
	repository repository.CustomerRepositoryInterface
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(repo repository.CustomerRepositoryInterface) *CustomerController {
	return &CustomerController{
		repository: repo,
	}
}

// CreateCustomer handles POST /customers
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCustomer: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateCustomer: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreateCustomer: name cannot be empty")
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	customer, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateCustomer: Error creating customer: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create customer: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateCustomer: Created customer - id=%s, name=%s", customer.ID, customer.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(customer); err != nil {
		log.Printf("❌ CreateCustomer: Error encoding response: %v", err)
	}
}

// ListCustomers handles GET /customers
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	customers, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListCustomers: Error listing customers: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list customers: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(customers); err != nil {
		log.Printf("❌ ListCustomers: Error encoding response: %v", err)
	}
}

// GetCustomer handles GET /customers/:id
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/customers/")
	if id == "" {
		http.Error(w, "customer id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	customer, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetCustomer: Error getting customer %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get customer: %v", err), http.StatusInternalServerError)
		return
	}
	if customer == nil {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(customer); err != nil {
		log.Printf("❌ GetCustomer: Error encoding response: %v", err)
	}
}

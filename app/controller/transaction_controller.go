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

// TransactionController handles HTTP requests for the financial ledger
type TransactionController struct {
	repository repository.TransactionRepositoryInterface
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(repo repository.TransactionRepositoryInterface) *TransactionController {
	return &TransactionController{
		repository: repo,
	}
}

// CreateTransaction handles POST /transactions
func (c *TransactionController) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateTransaction: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateTransaction: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
		log.Printf("❌ CreateTransaction: Invalid type: %s", req.Type)
		http.Error(w, "type must be 'income' or 'expense'", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		log.Printf("❌ CreateTransaction: description cannot be empty")
		http.Error(w, "description cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		log.Printf("❌ CreateTransaction: Invalid amount: %v", req.Amount)
		http.Error(w, "amount must be greater than 0", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	transaction, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateTransaction: Error creating transaction: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create transaction: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("💰 CreateTransaction: Created transaction - id=%s, type=%s, amount=%.2f", transaction.ID, transaction.Type, transaction.Amount)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(transaction); err != nil {
		log.Printf("❌ CreateTransaction: Error encoding response: %v", err)
	}
}

// ListTransactions handles GET /transactions
func (c *TransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	transactions, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListTransactions: Error listing transactions: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list transactions: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.TransactionListResponse{Transactions: transactions}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListTransactions: Error encoding response: %v", err)
	}
}

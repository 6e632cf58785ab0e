package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"atelie-gestor/db"
	"atelie-gestor/models"
)

// TransactionRepository handles database operations for the financial ledger
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure TransactionRepository implements TransactionRepositoryInterface
var _ TransactionRepositoryInterface = (*TransactionRepository)(nil)

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	var t models.Transaction
	var category, paymentMethod sql.NullString
	if err := row.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Type, &category, &paymentMethod, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Category = category.String
	t.PaymentMethod = paymentMethod.String
	return &t, nil
}

// Create creates a new ledger entry. Callers may pass their own id so
// payment entries can carry the "<kind>_<projectId>" suffix the payment
// reconciler matches on; otherwise a random id is generated.
func (r *TransactionRepository) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	log.Printf("💰 CreateTransaction: type=%s, amount=%.2f, description=%s", req.Type, req.Amount, req.Description)

	if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
		log.Printf("❌ CreateTransaction: Invalid type: %s", req.Type)
		return nil, fmt.Errorf("type must be 'income' or 'expense'")
	}
	if req.Amount <= 0 {
		log.Printf("❌ CreateTransaction: Invalid amount: %.2f", req.Amount)
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	id := req.ID
	if id == "" {
		id = "t_" + uuid.NewString()
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO transactions (id, date, description, amount, type, category, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date, description, amount, type, category, payment_method, created_at::text
	`
	transaction, err := scanTransaction(db.DB.QueryRowContext(ctx, query,
		id, date, req.Description, req.Amount, req.Type,
		sql.NullString{String: req.Category, Valid: req.Category != ""},
		sql.NullString{String: req.PaymentMethod, Valid: req.PaymentMethod != ""},
	))
	if err != nil {
		log.Printf("❌ CreateTransaction: Error inserting transaction: %v", err)
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	log.Printf("✅ CreateTransaction: Successfully created transaction id=%s", transaction.ID)
	return transaction, nil
}

// List retrieves the full ledger, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, date, description, amount, type, category, payment_method, created_at::text
		FROM transactions
		ORDER BY date DESC, created_at DESC
	`
	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListTransactions: Error listing transactions: %v", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

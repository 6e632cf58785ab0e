package models

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction represents one entry in the financial ledger. The pricing
// engine reads the ledger to detect payments already tied to a project;
// everything else about the ledger is plain bookkeeping.
type Transaction struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"` // 'income' or 'expense'
	Category      string  `json:"category,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// CreateTransactionRequest represents the request body for creating a transaction
// Example: {"date": "2026-08-10", "description": "Sinal - Festa unicórnio", "amount": 50, "type": "income", "category": "vendas", "paymentMethod": "pix"}
type CreateTransactionRequest struct {
	ID            string  `json:"id,omitempty"` // optional caller-chosen id (e.g. "sinal_<projectId>")
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Category      string  `json:"category,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// TransactionListResponse represents the response for listing transactions
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

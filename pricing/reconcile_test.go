package pricing

import (
	"testing"

	"atelie-gestor/models"
)

// project fixture priced at exactly 100.
func paidProject() *models.Project {
	return &models.Project{
		ID:          "p1",
		Theme:       "Festa unicornio",
		DownPayment: 30,
		Items:       []models.QuoteLineItem{{Quantity: 1, UnitPrice: 100}},
	}
}

func TestResolvePaid_DownPaymentWithoutLedger(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})

	b := e.Breakdown(paidProject(), nil)

	nearlyEqual(t, "downPayment", b.DownPayment, 30)
	nearlyEqual(t, "remainingBalance", b.RemainingBalance, 70)
}

func TestResolvePaid_LedgerReplacesDownPayment(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	ledger := []models.Transaction{
		{ID: "sinal_p1", Type: models.TransactionIncome, Amount: 50},
	}

	b := e.Breakdown(paidProject(), ledger)

	// The ledger sum replaces the recorded down payment, it is never added
	// on top of it.
	nearlyEqual(t, "downPayment", b.DownPayment, 50)
	nearlyEqual(t, "remainingBalance", b.RemainingBalance, 50)
}

func TestResolvePaid_ThemeDescriptionMatch(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	ledger := []models.Transaction{
		{ID: "t1", Description: "Sinal Festa unicornio", Type: models.TransactionIncome, Amount: 20},
		{ID: "t2", Description: "Saldo Festa unicornio", Type: models.TransactionIncome, Amount: 25},
		{ID: "t3", Description: "Outra encomenda", Type: models.TransactionIncome, Amount: 99},
	}

	b := e.Breakdown(paidProject(), ledger)

	nearlyEqual(t, "downPayment", b.DownPayment, 45)
}

func TestResolvePaid_ExpensesNeverMatch(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	ledger := []models.Transaction{
		{ID: "compra_p1", Description: "Festa unicornio materiais", Type: models.TransactionExpense, Amount: 80},
	}

	b := e.Breakdown(paidProject(), ledger)

	nearlyEqual(t, "downPayment", b.DownPayment, 30)
}

func TestResolvePaid_BlankThemeSkipsDescriptionMatch(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	project := paidProject()
	project.Theme = ""
	ledger := []models.Transaction{
		{ID: "t1", Description: "qualquer coisa", Type: models.TransactionIncome, Amount: 500},
	}

	b := e.Breakdown(project, ledger)

	nearlyEqual(t, "downPayment", b.DownPayment, 30)
}

func TestResolvePaid_UnsavedProjectIgnoresLedger(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	project := paidProject()
	project.ID = ""
	ledger := []models.Transaction{
		{ID: "sinal_p1", Description: "Festa unicornio", Type: models.TransactionIncome, Amount: 50},
	}

	b := e.Breakdown(project, ledger)

	nearlyEqual(t, "downPayment", b.DownPayment, 30)
}

func TestResolvePaid_OverpaymentClampsRemaining(t *testing.T) {
	e := NewEngine(nil, nil, models.CompanyData{})
	ledger := []models.Transaction{
		{ID: "sinal_p1", Type: models.TransactionIncome, Amount: 70},
		{ID: "saldo_p1", Type: models.TransactionIncome, Amount: 60},
	}

	b := e.Breakdown(paidProject(), ledger)

	nearlyEqual(t, "downPayment", b.DownPayment, 130)
	nearlyEqual(t, "remainingBalance", b.RemainingBalance, 0)
}

func TestMatchesProject_SuffixPredicate(t *testing.T) {
	project := &models.Project{ID: "p1", Theme: ""}

	tests := []struct {
		name  string
		entry models.Transaction
		want  bool
	}{
		{"id suffix matches", models.Transaction{ID: "saldo_final_p1", Type: models.TransactionIncome}, true},
		{"other project does not match", models.Transaction{ID: "saldo_final_p12", Type: models.TransactionIncome}, false},
		{"bare id without separator does not match", models.Transaction{ID: "p1", Type: models.TransactionIncome}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesProject(tt.entry, project); got != tt.want {
				t.Fatalf("MatchesProject(%q) = %v, want %v", tt.entry.ID, got, tt.want)
			}
		})
	}
}

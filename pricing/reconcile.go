package pricing

import (
	"strings"

	"atelie-gestor/models"
)

// MatchesProject reports whether a ledger entry looks like a payment for
// the given project. Matching is heuristic: an income entry matches when
// its id ends with "_<projectID>" or its description contains the
// project's theme. Blank themes never match on description, otherwise an
// empty substring would claim every entry in the ledger. The predicate is
// isolated here so it can be replaced by an exact project reference
// without touching the pricing math.
func MatchesProject(entry models.Transaction, project *models.Project) bool {
	if entry.Type != models.TransactionIncome {
		return false
	}
	if project.ID != "" && strings.HasSuffix(entry.ID, "_"+project.ID) {
		return true
	}
	if project.Theme == "" {
		return false
	}
	return strings.Contains(entry.Description, project.Theme)
}

// resolvePaid determines how much of the project has already been
// collected. The recorded down payment is the starting point; when the
// ledger holds income entries tied to the project, their sum replaces the
// down payment outright — a down payment that already materialized as a
// ledger entry would otherwise be counted twice.
func (e *Engine) resolvePaid(project *models.Project, ledger []models.Transaction) float64 {
	totalPaid := project.DownPayment
	if project.ID == "" || len(ledger) == 0 {
		return totalPaid
	}

	var fromLedger float64
	for _, entry := range ledger {
		if MatchesProject(entry, project) {
			fromLedger += entry.Amount
		}
	}
	if fromLedger > 0 {
		totalPaid = fromLedger
	}
	return totalPaid
}

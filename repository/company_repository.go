package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"atelie-gestor/db"
	"atelie-gestor/models"
)

// CompanyRepository handles the single-row company settings table
type CompanyRepository struct{}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

// Ensure CompanyRepository implements CompanyRepositoryInterface
var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

// Get retrieves the company settings. A missing row yields all-zero
// settings: the pricing engine defaults every zero safely, so a studio
// that never opened the settings screen still gets priced quotes.
func (r *CompanyRepository) Get(ctx context.Context) (*models.CompanyData, error) {
	query := `
		SELECT hourly_rate, fixed_costs_monthly, mei_tax, work_hours_daily,
		       work_days_monthly, default_profit_margin, default_excedente
		FROM company_data WHERE id = 1
	`
	var c models.CompanyData
	err := db.DB.QueryRowContext(ctx, query).Scan(
		&c.HourlyRate,
		&c.FixedCostsMonthly,
		&c.MEITax,
		&c.WorkHoursDaily,
		&c.WorkDaysMonthly,
		&c.DefaultProfitMargin,
		&c.DefaultExcedente,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.CompanyData{}, nil
		}
		return nil, fmt.Errorf("failed to get company data: %w", err)
	}
	return &c, nil
}

// Update upserts the company settings row
func (r *CompanyRepository) Update(ctx context.Context, req *models.UpdateCompanyDataRequest) (*models.CompanyData, error) {
	log.Printf("⚙️  UpdateCompanyData: hourlyRate=%.2f, fixedCosts=%.2f, meiTax=%.2f", req.HourlyRate, req.FixedCostsMonthly, req.MEITax)

	query := `
		INSERT INTO company_data (id, hourly_rate, fixed_costs_monthly, mei_tax, work_hours_daily,
		                          work_days_monthly, default_profit_margin, default_excedente, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			hourly_rate = EXCLUDED.hourly_rate,
			fixed_costs_monthly = EXCLUDED.fixed_costs_monthly,
			mei_tax = EXCLUDED.mei_tax,
			work_hours_daily = EXCLUDED.work_hours_daily,
			work_days_monthly = EXCLUDED.work_days_monthly,
			default_profit_margin = EXCLUDED.default_profit_margin,
			default_excedente = EXCLUDED.default_excedente,
			updated_at = NOW()
		RETURNING hourly_rate, fixed_costs_monthly, mei_tax, work_hours_daily,
		          work_days_monthly, default_profit_margin, default_excedente
	`
	var c models.CompanyData
	err := db.DB.QueryRowContext(ctx, query,
		req.HourlyRate,
		req.FixedCostsMonthly,
		req.MEITax,
		req.WorkHoursDaily,
		req.WorkDaysMonthly,
		req.DefaultProfitMargin,
		req.DefaultExcedente,
	).Scan(
		&c.HourlyRate,
		&c.FixedCostsMonthly,
		&c.MEITax,
		&c.WorkHoursDaily,
		&c.WorkDaysMonthly,
		&c.DefaultProfitMargin,
		&c.DefaultExcedente,
	)
	if err != nil {
		log.Printf("❌ UpdateCompanyData: Error upserting company data: %v", err)
		return nil, fmt.Errorf("failed to update company data: %w", err)
	}

	log.Printf("✅ UpdateCompanyData: Successfully updated company settings")
	return &c, nil
}

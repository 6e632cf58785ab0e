package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"atelie-gestor/db"
	"atelie-gestor/models"
)

// ProjectRepository handles database operations for the project/quote aggregate
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// insertItems inserts the line items and their material usages for a project.
// Order is preserved through the position column.
func insertItems(ctx context.Context, tx *sql.Tx, projectID string, items []models.QuoteLineItem) error {
	queryItem := `
		INSERT INTO project_items (project_id, position, product_id, name, quantity, hours_to_make,
		                           profit_margin, unit_price, manual_base_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	queryUsage := `
		INSERT INTO project_item_materials (project_item_id, position, material_id, quantity,
		                                    usage_type, usage_value, printing_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, item := range items {
		var itemID int64
		err := tx.QueryRowContext(ctx, queryItem,
			projectID, i,
			sql.NullString{String: item.ProductID, Valid: item.ProductID != ""},
			item.Name, item.Quantity, item.HoursToMake,
			item.ProfitMargin, item.UnitPrice, item.ManualBaseCost,
		).Scan(&itemID)
		if err != nil {
			return fmt.Errorf("failed to insert project item: %w", err)
		}

		for j, usage := range item.Materials {
			if _, err := tx.ExecContext(ctx, queryUsage,
				itemID, j, usage.MaterialID, usage.Quantity,
				usage.UsageType, usage.UsageValue, usage.PrintingCost,
			); err != nil {
				return fmt.Errorf("failed to insert material usage: %w", err)
			}
		}
	}
	return nil
}

// Create creates a project with its line items atomically
func (r *ProjectRepository) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	log.Printf("📋 CreateProject: theme=%s, items=%d", req.Theme, len(req.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	id := "p_" + uuid.NewString()
	queryProject := `
		INSERT INTO projects (id, customer_id, platform_id, excedente, shipping, discount_percentage,
		                      discount_amount, down_payment, status, delivery_date, theme)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.ExecContext(ctx, queryProject,
		id,
		sql.NullString{String: req.CustomerID, Valid: req.CustomerID != ""},
		sql.NullString{String: req.PlatformID, Valid: req.PlatformID != ""},
		req.Excedente, req.Shipping, req.DiscountPercentage,
		req.DiscountAmount, req.DownPayment, models.StatusPending,
		sql.NullString{String: req.DeliveryDate, Valid: req.DeliveryDate != ""},
		sql.NullString{String: req.Theme, Valid: req.Theme != ""},
	)
	if err != nil {
		log.Printf("❌ CreateProject: Error inserting project: %v", err)
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	if err := insertItems(ctx, tx, id, req.Items); err != nil {
		log.Printf("❌ CreateProject: %v", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ CreateProject: Successfully created project id=%s", id)
	return r.GetByID(ctx, id)
}

// Update replaces a project's fields and its entire item list atomically
func (r *ProjectRepository) Update(ctx context.Context, id string, req *models.CreateProjectRequest) (*models.Project, error) {
	log.Printf("📋 UpdateProject: id=%s, items=%d", id, len(req.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	queryProject := `
		UPDATE projects
		SET customer_id=$2, platform_id=$3, excedente=$4, shipping=$5, discount_percentage=$6,
		    discount_amount=$7, down_payment=$8, delivery_date=$9, theme=$10, updated_at=NOW()
		WHERE id=$1
	`
	result, err := tx.ExecContext(ctx, queryProject,
		id,
		sql.NullString{String: req.CustomerID, Valid: req.CustomerID != ""},
		sql.NullString{String: req.PlatformID, Valid: req.PlatformID != ""},
		req.Excedente, req.Shipping, req.DiscountPercentage,
		req.DiscountAmount, req.DownPayment,
		sql.NullString{String: req.DeliveryDate, Valid: req.DeliveryDate != ""},
		sql.NullString{String: req.Theme, Valid: req.Theme != ""},
	)
	if err != nil {
		log.Printf("❌ UpdateProject: Error updating project %s: %v", id, err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, nil
	}

	// Items are replaced wholesale; usages cascade with their items.
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_items WHERE project_id=$1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear project items: %w", err)
	}
	if err := insertItems(ctx, tx, id, req.Items); err != nil {
		log.Printf("❌ UpdateProject: %v", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ UpdateProject: Successfully updated project id=%s", id)
	return r.GetByID(ctx, id)
}

// UpdateStatus moves a project to a new pipeline status
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := db.DB.ExecContext(ctx,
		`UPDATE projects SET status=$2, updated_at=NOW() WHERE id=$1`, id, status)
	if err != nil {
		log.Printf("❌ UpdateProjectStatus: Error updating project %s: %v", id, err)
		return fmt.Errorf("failed to update project status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("project not found")
	}

	log.Printf("✅ UpdateProjectStatus: Project %s moved to %s", id, status)
	return nil
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var customerID, platformID, deliveryDate, theme sql.NullString
	if err := row.Scan(
		&p.ID, &customerID, &platformID, &p.Excedente, &p.Shipping,
		&p.DiscountPercentage, &p.DiscountAmount, &p.DownPayment,
		&p.Status, &deliveryDate, &theme, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.CustomerID = customerID.String
	p.PlatformID = platformID.String
	p.DeliveryDate = deliveryDate.String
	p.Theme = theme.String
	return &p, nil
}

const projectColumns = `
	id, customer_id, platform_id, excedente, shipping, discount_percentage,
	discount_amount, down_payment, status, delivery_date, theme,
	created_at::text, updated_at::text
`

// GetByID retrieves a project with its full item list, or nil when missing
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := scanProject(db.DB.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id=$1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := r.loadItems(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// loadItems populates the project's ordered line items and their usages
func (r *ProjectRepository) loadItems(ctx context.Context, project *models.Project) error {
	queryItems := `
		SELECT id, product_id, name, quantity, hours_to_make, profit_margin, unit_price, manual_base_cost
		FROM project_items
		WHERE project_id=$1
		ORDER BY position
	`
	rows, err := db.DB.QueryContext(ctx, queryItems, project.ID)
	if err != nil {
		return fmt.Errorf("failed to list project items: %w", err)
	}
	defer rows.Close()

	var itemIDs []int64
	for rows.Next() {
		var itemID int64
		var productID sql.NullString
		var item models.QuoteLineItem
		if err := rows.Scan(&itemID, &productID, &item.Name, &item.Quantity, &item.HoursToMake,
			&item.ProfitMargin, &item.UnitPrice, &item.ManualBaseCost); err != nil {
			return fmt.Errorf("failed to scan project item: %w", err)
		}
		item.ProductID = productID.String
		project.Items = append(project.Items, item)
		itemIDs = append(itemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate project items: %w", err)
	}

	queryUsages := `
		SELECT material_id, quantity, usage_type, usage_value, printing_cost
		FROM project_item_materials
		WHERE project_item_id=$1
		ORDER BY position
	`
	for i, itemID := range itemIDs {
		usageRows, err := db.DB.QueryContext(ctx, queryUsages, itemID)
		if err != nil {
			return fmt.Errorf("failed to list material usages: %w", err)
		}
		for usageRows.Next() {
			var usage models.MaterialUsage
			if err := usageRows.Scan(&usage.MaterialID, &usage.Quantity, &usage.UsageType,
				&usage.UsageValue, &usage.PrintingCost); err != nil {
				usageRows.Close()
				return fmt.Errorf("failed to scan material usage: %w", err)
			}
			project.Items[i].Materials = append(project.Items[i].Materials, usage)
		}
		if err := usageRows.Err(); err != nil {
			usageRows.Close()
			return fmt.Errorf("failed to iterate material usages: %w", err)
		}
		usageRows.Close()
	}
	return nil
}

// List retrieves all projects with their items, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("❌ ListProjects: Error listing projects: %v", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	for i := range projects {
		if err := r.loadItems(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// Delete removes a project and, through cascades, its items and usages
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		log.Printf("❌ DeleteProject: Error deleting project %s: %v", id, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("project not found")
	}

	log.Printf("✅ DeleteProject: Successfully deleted project id=%s", id)
	return nil
}

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

// MaterialRepository handles database operations for the material catalog
type MaterialRepository struct{}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

// Ensure MaterialRepository implements MaterialRepositoryInterface
var _ MaterialRepositoryInterface = (*MaterialRepository)(nil)

func scanMaterial(row interface{ Scan(...any) error }) (*models.Material, error) {
	var m models.Material
	var supplier sql.NullString
	if err := row.Scan(&m.ID, &m.Name, &m.Unit, &m.Price, &m.Quantity, &supplier); err != nil {
		return nil, err
	}
	if supplier.Valid {
		m.Supplier = supplier.String
	}
	return &m, nil
}

// Create creates a new material batch record
func (r *MaterialRepository) Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error) {
	log.Printf("📦 CreateMaterial: name=%s, price=%.2f, quantity=%.2f", req.Name, req.Price, req.Quantity)

	id := "m_" + uuid.NewString()
	query := `
		INSERT INTO materials (id, name, unit, price, quantity, supplier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, unit, price, quantity, supplier
	`
	material, err := scanMaterial(db.DB.QueryRowContext(ctx, query,
		id, req.Name, req.Unit, req.Price, req.Quantity,
		sql.NullString{String: req.Supplier, Valid: req.Supplier != ""},
	))
	if err != nil {
		log.Printf("❌ CreateMaterial: Error inserting material: %v", err)
		return nil, fmt.Errorf("failed to insert material: %w", err)
	}

	log.Printf("✅ CreateMaterial: Successfully created material id=%s", material.ID)
	return material, nil
}

// Update replaces a material record as a whole
func (r *MaterialRepository) Update(ctx context.Context, id string, req *models.UpdateMaterialRequest) (*models.Material, error) {
	query := `
		UPDATE materials
		SET name=$2, unit=$3, price=$4, quantity=$5, supplier=$6
		WHERE id=$1
		RETURNING id, name, unit, price, quantity, supplier
	`
	material, err := scanMaterial(db.DB.QueryRowContext(ctx, query,
		id, req.Name, req.Unit, req.Price, req.Quantity,
		sql.NullString{String: req.Supplier, Valid: req.Supplier != ""},
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Printf("❌ UpdateMaterial: Error updating material %s: %v", id, err)
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	log.Printf("✅ UpdateMaterial: Successfully updated material id=%s", id)
	return material, nil
}

// Delete removes a material from the catalog. Quotes that still reference
// the material keep their usage rows; the pricing engine treats the
// dangling reference as a zero-cost contribution.
func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM materials WHERE id=$1`, id)
	if err != nil {
		log.Printf("❌ DeleteMaterial: Error deleting material %s: %v", id, err)
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("material not found")
	}

	log.Printf("✅ DeleteMaterial: Successfully deleted material id=%s", id)
	return nil
}

// GetByID retrieves one material by id
func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*models.Material, error) {
	query := `SELECT id, name, unit, price, quantity, supplier FROM materials WHERE id=$1`
	material, err := scanMaterial(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

// List retrieves the full material catalog ordered by name
func (r *MaterialRepository) List(ctx context.Context) ([]models.Material, error) {
	query := `SELECT id, name, unit, price, quantity, supplier FROM materials ORDER BY name`
	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListMaterials: Error listing materials: %v", err)
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, *material)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate materials: %w", err)
	}
	return materials, nil
}

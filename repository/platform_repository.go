package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"atelie-gestor/db"
	"atelie-gestor/models"
)

// PlatformRepository handles database operations for sales platforms
type PlatformRepository struct{}

// NewPlatformRepository creates a new PlatformRepository
func NewPlatformRepository() *PlatformRepository {
	return &PlatformRepository{}
}

// Ensure PlatformRepository implements PlatformRepositoryInterface
var _ PlatformRepositoryInterface = (*PlatformRepository)(nil)

// Create creates a new platform
func (r *PlatformRepository) Create(ctx context.Context, req *models.CreatePlatformRequest) (*models.Platform, error) {
	log.Printf("🏪 CreatePlatform: name=%s, fee=%.2f%%", req.Name, req.FeePercentage)

	id := "pl_" + uuid.NewString()
	query := `
		INSERT INTO platforms (id, name, fee_percentage)
		VALUES ($1, $2, $3)
		RETURNING id, name, fee_percentage
	`
	var p models.Platform
	if err := db.DB.QueryRowContext(ctx, query, id, req.Name, req.FeePercentage).Scan(&p.ID, &p.Name, &p.FeePercentage); err != nil {
		log.Printf("❌ CreatePlatform: Error inserting platform: %v", err)
		return nil, fmt.Errorf("failed to insert platform: %w", err)
	}

	log.Printf("✅ CreatePlatform: Successfully created platform id=%s", p.ID)
	return &p, nil
}

// Delete removes a platform. Projects referencing it fall back to no
// platform fee via the ON DELETE SET NULL constraint.
func (r *PlatformRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM platforms WHERE id=$1`, id)
	if err != nil {
		log.Printf("❌ DeletePlatform: Error deleting platform %s: %v", id, err)
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("platform not found")
	}

	log.Printf("✅ DeletePlatform: Successfully deleted platform id=%s", id)
	return nil
}

// List retrieves all platforms ordered by name
func (r *PlatformRepository) List(ctx context.Context) ([]models.Platform, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT id, name, fee_percentage FROM platforms ORDER BY name`)
	if err != nil {
		log.Printf("❌ ListPlatforms: Error listing platforms: %v", err)
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []models.Platform
	for rows.Next() {
		var p models.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.FeePercentage); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate platforms: %w", err)
	}
	return platforms, nil
}

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

// ProductRepository handles database operations for catalog products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// ExistsByDriveFileID checks whether a product was already synced from the
// given Drive photo
func (r *ProductRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	err := db.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE drive_file_id=$1)`, driveFileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var driveFileID, imageURL sql.NullString
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &driveFileID, &imageURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.DriveFileID = driveFileID.String
	p.ImageURL = imageURL.String
	return &p, nil
}

// Insert creates a product record from a parsed Drive photo
func (r *ProductRepository) Insert(ctx context.Context, photo *models.ProductPhoto) (*models.Product, error) {
	id := "pr_" + uuid.NewString()
	query := `
		INSERT INTO products (id, sku, name, drive_file_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sku, name, drive_file_id, image_url, created_at::text
	`
	product, err := scanProduct(db.DB.QueryRowContext(ctx, query,
		id, photo.SKU, photo.Name,
		sql.NullString{String: photo.DriveFileID, Valid: photo.DriveFileID != ""},
		sql.NullString{String: photo.ImageURL, Valid: photo.ImageURL != ""},
	))
	if err != nil {
		log.Printf("❌ InsertProduct: Error inserting product sku=%s: %v", photo.SKU, err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("✅ InsertProduct: Successfully created product id=%s, sku=%s", product.ID, product.SKU)
	return product, nil
}

// GetByID retrieves one product by id, or nil when missing
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT id, sku, name, drive_file_id, image_url, created_at::text FROM products WHERE id=$1`
	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// List retrieves all products ordered by SKU
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT id, sku, name, drive_file_id, image_url, created_at::text FROM products ORDER BY sku`)
	if err != nil {
		log.Printf("❌ ListProducts: Error listing products: %v", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

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

// CustomerRepository handles database operations for customers
type CustomerRepository struct{}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Ensure CustomerRepository implements CustomerRepositoryInterface
var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	var c models.Customer
	var phone, email, notes sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &phone, &email, &notes, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Phone = phone.String
	c.Email = email.String
	c.Notes = notes.String
	return &c, nil
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	log.Printf("👤 CreateCustomer: name=%s", req.Name)

	id := "c_" + uuid.NewString()
	query := `
		INSERT INTO customers (id, name, phone, email, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, email, notes, created_at::text
	`
	customer, err := scanCustomer(db.DB.QueryRowContext(ctx, query,
		id, req.Name,
		sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		sql.NullString{String: req.Email, Valid: req.Email != ""},
		sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	))
	if err != nil {
		log.Printf("❌ CreateCustomer: Error inserting customer: %v", err)
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	log.Printf("✅ CreateCustomer: Successfully created customer id=%s", customer.ID)
	return customer, nil
}

// GetByID retrieves one customer by id
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT id, name, phone, email, notes, created_at::text FROM customers WHERE id=$1`
	customer, err := scanCustomer(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// List retrieves all customers ordered by name
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT id, name, phone, email, notes, created_at::text FROM customers ORDER BY name`)
	if err != nil {
		log.Printf("❌ ListCustomers: Error listing customers: %v", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

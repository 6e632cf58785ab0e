package repository

import (
	"context"

	"atelie-gestor/models"
)

// MaterialRepositoryInterface defines the contract for material catalog operations
type MaterialRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error)
	Update(ctx context.Context, id string, req *models.UpdateMaterialRequest) (*models.Material, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Material, error)
	List(ctx context.Context) ([]models.Material, error)
}

// PlatformRepositoryInterface defines the contract for platform catalog operations
type PlatformRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreatePlatformRequest) (*models.Platform, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Platform, error)
}

// CustomerRepositoryInterface defines the contract for customer operations
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

// CompanyRepositoryInterface defines the contract for the single-row company settings
type CompanyRepositoryInterface interface {
	Get(ctx context.Context) (*models.CompanyData, error)
	Update(ctx context.Context, req *models.UpdateCompanyDataRequest) (*models.CompanyData, error)
}

// TransactionRepositoryInterface defines the contract for ledger operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
}

// ProjectRepositoryInterface defines the contract for the project/quote aggregate
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.CreateProjectRequest) (*models.Project, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepositoryInterface defines the contract for catalog product operations
type ProductRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, photo *models.ProductPhoto) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

package app

import (
	"fmt"
	"log"
	"os"

	"atelie-gestor/app/controller"
	"atelie-gestor/app/router"
	"atelie-gestor/db"
	"atelie-gestor/repository"
	"atelie-gestor/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection and run pending migrations
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := service.EnsureCacheDir(); err != nil {
		return fmt.Errorf("failed to prepare image cache: %w", err)
	}

	// Drive integration is optional: without credentials the product sync
	// and the PDF backup upload are disabled, everything else works.
	var driveService service.DriveServiceInterface
	var syncService service.SyncServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Google Drive integration disabled")
	}

	// Initialize repositories
	materialRepo := repository.NewMaterialRepository()
	platformRepo := repository.NewPlatformRepository()
	customerRepo := repository.NewCustomerRepository()
	companyRepo := repository.NewCompanyRepository()
	transactionRepo := repository.NewTransactionRepository()
	projectRepo := repository.NewProjectRepository()
	productRepo := repository.NewProductRepository()

	if driveService != nil {
		syncService = service.NewSyncService(driveService, productRepo)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	quoteService := service.NewQuoteService(
		projectRepo,
		customerRepo,
		materialRepo,
		platformRepo,
		companyRepo,
		transactionRepo,
		baseURL,
	)

	// Create controllers
	controllers := &router.Controllers{
		Material:    controller.NewMaterialController(materialRepo),
		Platform:    controller.NewPlatformController(platformRepo),
		Customer:    controller.NewCustomerController(customerRepo),
		Company:     controller.NewCompanyController(companyRepo),
		Transaction: controller.NewTransactionController(transactionRepo),
		Product:     controller.NewProductController(productRepo, syncService, driveService),
		Project: controller.NewProjectController(
			projectRepo,
			materialRepo,
			platformRepo,
			companyRepo,
			transactionRepo,
			quoteService,
			driveService,
		),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}

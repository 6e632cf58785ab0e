package router

import (
	"net/http"
	"strings"

	"atelie-gestor/app/controller"
)

type Controllers struct {
	Material    *controller.MaterialController
	Platform    *controller.PlatformController
	Customer    *controller.CustomerController
	Company     *controller.CompanyController
	Transaction *controller.TransactionController
	Product     *controller.ProductController
	Project     *controller.ProjectController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Materials routes
	http.HandleFunc("/materials", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Material.CreateMaterial(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Material.ListMaterials(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/materials/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Material.UpdateMaterial(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Material.DeleteMaterial(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Platforms routes
	http.HandleFunc("/platforms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Platform.CreatePlatform(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Platform.ListPlatforms(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/platforms/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Platform.DeletePlatform(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Customers routes
	http.HandleFunc("/customers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Customer.CreateCustomer(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Customer.ListCustomers(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/customers/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Customer.GetCustomer(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Company settings routes
	http.HandleFunc("/company", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Company.GetCompanyData(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Company.UpdateCompanyData(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Transactions routes
	http.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Transaction.CreateTransaction(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Transaction.ListTransactions(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Products routes
	http.HandleFunc("/products/sync", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Product.SyncProducts(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Product.ListProducts(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Optimized product photo
	http.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Product.GetProductImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Projects routes
	// Quote render must be registered before the generic /projects/ prefix
	http.HandleFunc("/projects/quote/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Project.RenderQuote(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Project.CreateProject(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Project.ListProjects(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/projects/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/projects/")

		// Route to specific actions first
		if strings.HasSuffix(path, "/breakdown") {
			if r.Method == http.MethodGet {
				controllers.Project.GetProjectBreakdown(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(path, "/status") {
			if r.Method == http.MethodPatch || r.Method == http.MethodPost {
				controllers.Project.UpdateProjectStatus(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(path, "/quote.pdf") {
			if r.Method == http.MethodGet {
				controllers.Project.DownloadQuotePDF(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Otherwise, treat as /projects/:id
		switch r.Method {
		case http.MethodGet:
			controllers.Project.GetProject(w, r)
		case http.MethodPut:
			controllers.Project.UpdateProject(w, r)
		case http.MethodDelete:
			controllers.Project.DeleteProject(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

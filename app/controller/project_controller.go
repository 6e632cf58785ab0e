package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"atelie-gestor/models"
	"atelie-gestor/pricing"
	"atelie-gestor/repository"
	"atelie-gestor/service"
)

// ProjectController handles HTTP requests for projects/quotes. Every read
// recomputes the pricing breakdown against fresh catalog snapshots, so a
// material price edit is reflected in every open quote immediately.
type ProjectController struct {
	repository      repository.ProjectRepositoryInterface
	materialRepo    repository.MaterialRepositoryInterface
	platformRepo    repository.PlatformRepositoryInterface
	companyRepo     repository.CompanyRepositoryInterface
	transactionRepo repository.TransactionRepositoryInterface
	quoteService    *service.QuoteService
	driveService    service.DriveServiceInterface
}

// NewProjectController creates a new ProjectController
func NewProjectController(
	repo repository.ProjectRepositoryInterface,
	materialRepo repository.MaterialRepositoryInterface,
	platformRepo repository.PlatformRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	transactionRepo repository.TransactionRepositoryInterface,
	quoteService *service.QuoteService,
	driveService service.DriveServiceInterface,
) *ProjectController {
	return &ProjectController{
		repository:      repo,
		materialRepo:    materialRepo,
		platformRepo:    platformRepo,
		companyRepo:     companyRepo,
		transactionRepo: transactionRepo,
		quoteService:    quoteService,
		driveService:    driveService,
	}
}

var validStatuses = map[string]bool{
	models.StatusPending:        true,
	models.StatusApproved:       true,
	models.StatusInProgress:     true,
	models.StatusPendingPayment: true,
	models.StatusCompleted:      true,
}

// buildEngine loads fresh catalog and settings snapshots plus the ledger
func (c *ProjectController) buildEngine(ctx context.Context) (*pricing.Engine, []models.Transaction, error) {
	materials, err := c.materialRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load materials: %w", err)
	}
	platforms, err := c.platformRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load platforms: %w", err)
	}
	company, err := c.companyRepo.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load company data: %w", err)
	}
	ledger, err := c.transactionRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return pricing.NewEngine(materials, platforms, *company), ledger, nil
}

// CreateProject handles POST /projects
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProject: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProject: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateProject: Error creating project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create project: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateProject: Created project - id=%s, items=%d", project.ID, len(project.Items))

	c.respondWithBreakdown(w, ctx, project, http.StatusCreated)
}

// ListProjects handles GET /projects
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	projects, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListProjects: Error listing projects: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list projects: %v", err), http.StatusInternalServerError)
		return
	}

	engine, ledger, err := c.buildEngine(ctx)
	if err != nil {
		log.Printf("❌ ListProjects: Error building pricing engine: %v", err)
		http.Error(w, fmt.Sprintf("Failed to compute prices: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.ProjectListResponse{Projects: make([]models.ProjectListItem, 0, len(projects))}
	for i := range projects {
		p := &projects[i]
		breakdown := engine.Breakdown(p, ledger)
		response.Projects = append(response.Projects, models.ProjectListItem{
			ID:           p.ID,
			CustomerID:   p.CustomerID,
			Theme:        p.Theme,
			Status:       p.Status,
			DeliveryDate: p.DeliveryDate,
			ItemCount:    len(p.Items),
			FinalPrice:   breakdown.FinalPrice,
			CreatedAt:    p.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListProjects: Error encoding response: %v", err)
	}
}

// GetProject handles GET /projects/:id
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/projects/")
	if id == "" {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetProject: Error getting project %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get project: %v", err), http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	c.respondWithBreakdown(w, ctx, project, http.StatusOK)
}

// UpdateProject handles PUT /projects/:id
// The item list is replaced wholesale; partial item updates are not supported
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/projects/")
	if id == "" {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProject: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.repository.Update(ctx, id, &req)
	if err != nil {
		log.Printf("❌ UpdateProject: Error updating project %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update project: %v", err), http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	log.Printf("✅ UpdateProject: Updated project - id=%s, items=%d", project.ID, len(project.Items))

	c.respondWithBreakdown(w, ctx, project, http.StatusOK)
}

// DeleteProject handles DELETE /projects/:id
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/projects/")
	if id == "" {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if err := c.repository.Delete(ctx, id); err != nil {
		log.Printf("❌ DeleteProject: Error deleting project %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete project: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteProject: Deleted project - id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// GetProjectBreakdown handles GET /projects/:id/breakdown
// Returns only the computed breakdown, for clients that already hold the
// project and just need a price refresh after a catalog edit
func (c *ProjectController) GetProjectBreakdown(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	id := strings.TrimSuffix(path, "/breakdown")
	if id == "" || id == path {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetProjectBreakdown: Error getting project %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get project: %v", err), http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	engine, ledger, err := c.buildEngine(ctx)
	if err != nil {
		log.Printf("❌ GetProjectBreakdown: Error building pricing engine: %v", err)
		http.Error(w, fmt.Sprintf("Failed to compute breakdown: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(engine.Breakdown(project, ledger)); err != nil {
		log.Printf("❌ GetProjectBreakdown: Error encoding response: %v", err)
	}
}

// UpdateProjectStatus handles PATCH /projects/:id/status
// Transitioning into "completed" posts the remaining balance to the ledger
// as an income entry, so the reconciler sees the project as fully paid.
func (c *ProjectController) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || id == path {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateProjectStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProjectStatus: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if !validStatuses[req.Status] {
		log.Printf("❌ UpdateProjectStatus: Invalid status: %s", req.Status)
		http.Error(w, fmt.Sprintf("Invalid status: %s", req.Status), http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	project, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ UpdateProjectStatus: Error getting project %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get project: %v", err), http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	// Post the final balance before flipping the status, so the posting is
	// computed against the pre-completion ledger.
	if req.Status == models.StatusCompleted && project.Status != models.StatusCompleted {
		if err := c.postFinalBalance(ctx, project, req.PaymentMethod); err != nil {
			log.Printf("❌ UpdateProjectStatus: Error posting final balance for %s: %v", id, err)
			http.Error(w, fmt.Sprintf("Failed to post final balance: %v", err), http.StatusInternalServerError)
			return
		}
	}

	if err := c.repository.UpdateStatus(ctx, id, req.Status); err != nil {
		log.Printf("❌ UpdateProjectStatus: Error updating status for %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update status: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateProjectStatus: Project %s moved to %s", id, req.Status)

	project.Status = req.Status
	c.respondWithBreakdown(w, ctx, project, http.StatusOK)
}

// postFinalBalance creates the "saldo_final_<projectId>" income entry for
// whatever is still owed on the project. A zero balance posts nothing.
func (c *ProjectController) postFinalBalance(ctx context.Context, project *models.Project, paymentMethod string) error {
	engine, ledger, err := c.buildEngine(ctx)
	if err != nil {
		return err
	}
	breakdown := engine.Breakdown(project, ledger)

	if breakdown.RemainingBalance <= 0 {
		log.Printf("💰 postFinalBalance: project %s already fully paid, nothing to post", project.ID)
		return nil
	}

	description := "Saldo final"
	if project.Theme != "" {
		description = fmt.Sprintf("Saldo final - %s", project.Theme)
	}

	_, err = c.transactionRepo.Create(ctx, &models.CreateTransactionRequest{
		ID:            fmt.Sprintf("saldo_final_%s", project.ID),
		Description:   description,
		Amount:        breakdown.RemainingBalance,
		Type:          models.TransactionIncome,
		Category:      "vendas",
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return fmt.Errorf("failed to create final balance transaction: %w", err)
	}

	log.Printf("💰 postFinalBalance: posted %.2f for project %s", breakdown.RemainingBalance, project.ID)
	return nil
}

// RenderQuote handles GET /projects/quote/render?id=:id
// Serves the quote HTML; used by the browser preview and by headless Chrome
func (c *ProjectController) RenderQuote(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id query parameter is required", http.StatusBadRequest)
		return
	}

	html, err := c.quoteService.RenderQuoteHTML(context.Background(), id)
	if err != nil {
		log.Printf("❌ RenderQuote: Error rendering quote for %s: %v", id, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to render quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadQuotePDF handles GET /projects/:id/quote.pdf
// Generates the PDF through headless Chrome and, when a backup folder is
// configured, uploads a copy to Google Drive.
func (c *ProjectController) DownloadQuotePDF(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	id := strings.TrimSuffix(path, "/quote.pdf")
	if id == "" || id == path {
		http.Error(w, "project id is required", http.StatusBadRequest)
		return
	}

	log.Printf("📄 DownloadQuotePDF: generating quote PDF for project %s", id)

	pdf, err := c.quoteService.GeneratePDF(context.Background(), id)
	if err != nil {
		log.Printf("❌ DownloadQuotePDF: Error generating PDF for %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orcamento_%s.pdf", id)

	if c.driveService != nil {
		if folderID := os.Getenv("QUOTE_PDF_FOLDER_ID"); folderID != "" {
			if fileID, err := c.driveService.UploadQuotePDF(folderID, filename, pdf); err != nil {
				log.Printf("⚠️  DownloadQuotePDF: Drive backup failed for %s: %v", id, err)
			} else {
				log.Printf("✅ DownloadQuotePDF: Drive backup uploaded - fileId=%s", fileID)
			}
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// respondWithBreakdown attaches the computed breakdown to a project response
func (c *ProjectController) respondWithBreakdown(w http.ResponseWriter, ctx context.Context, project *models.Project, status int) {
	engine, ledger, err := c.buildEngine(ctx)
	if err != nil {
		log.Printf("❌ respondWithBreakdown: Error building pricing engine: %v", err)
		http.Error(w, fmt.Sprintf("Failed to compute breakdown: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.ProjectResponse{
		Project:   *project,
		Breakdown: engine.Breakdown(project, ledger),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ respondWithBreakdown: Error encoding response: %v", err)
	}
}

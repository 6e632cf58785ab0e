package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"atelie-gestor/models"
	"atelie-gestor/pricing"
	"atelie-gestor/repository"
	"atelie-gestor/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// QuoteService renders a client-facing quote for a project as HTML and
// prints it to PDF through headless Chrome.
type QuoteService struct {
	projectRepo     repository.ProjectRepositoryInterface
	customerRepo    repository.CustomerRepositoryInterface
	materialRepo    repository.MaterialRepositoryInterface
	platformRepo    repository.PlatformRepositoryInterface
	companyRepo     repository.CompanyRepositoryInterface
	transactionRepo repository.TransactionRepositoryInterface
	baseURL         string // Base URL for the quote render endpoint (e.g., "http://localhost:8080")
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	projectRepo repository.ProjectRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	materialRepo repository.MaterialRepositoryInterface,
	platformRepo repository.PlatformRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	transactionRepo repository.TransactionRepositoryInterface,
	baseURL string,
) *QuoteService {
	return &QuoteService{
		projectRepo:     projectRepo,
		customerRepo:    customerRepo,
		materialRepo:    materialRepo,
		platformRepo:    platformRepo,
		companyRepo:     companyRepo,
		transactionRepo: transactionRepo,
		baseURL:         baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// quoteLineView is one rendered row of the quote table
type quoteLineView struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// quoteView is the data passed to templates/quote.html
type quoteView struct {
	ProjectID        string
	Theme            string
	CustomerName     string
	CustomerPhone    string
	DeliveryDate     string
	GeneratedAt      string
	Lines            []quoteLineView
	Shipping         string
	TotalDiscount    string
	FinalPrice       string
	DownPayment      string
	RemainingBalance string
	HasDiscount      bool
	HasShipping      bool
	HasPayment       bool
}

// buildQuoteView loads the project with fresh catalog snapshots, runs the
// pricing engine and shapes the result for the template. Per-line prices
// shown to the customer are the final price prorated over the lines' share
// of the base value, so the table always sums to the quoted total.
func (s *QuoteService) buildQuoteView(ctx context.Context, projectID string) (*quoteView, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project not found: %s", projectID)
	}

	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	platforms, err := s.platformRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms: %w", err)
	}
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company data: %w", err)
	}
	ledger, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	engine := pricing.NewEngine(materials, platforms, *company)
	breakdown := engine.Breakdown(project, ledger)

	view := &quoteView{
		ProjectID:        project.ID,
		Theme:            project.Theme,
		DeliveryDate:     project.DeliveryDate,
		GeneratedAt:      time.Now().Format("02/01/2006"),
		Shipping:         utils.FormatBRL(breakdown.Shipping),
		TotalDiscount:    utils.FormatBRL(breakdown.TotalDiscount),
		FinalPrice:       utils.FormatBRL(breakdown.FinalPrice),
		DownPayment:      utils.FormatBRL(breakdown.DownPayment),
		RemainingBalance: utils.FormatBRL(breakdown.RemainingBalance),
		HasDiscount:      breakdown.TotalDiscount > 0,
		HasShipping:      breakdown.Shipping > 0,
		HasPayment:       breakdown.DownPayment > 0,
	}

	if project.CustomerID != "" {
		customer, err := s.customerRepo.GetByID(ctx, project.CustomerID)
		if err == nil && customer != nil {
			view.CustomerName = customer.Name
			view.CustomerPhone = customer.Phone
		}
	}

	// Prorate the charged total (before shipping) over each line's share of
	// the base value, so margins and fees stay internal.
	chargedTotal := breakdown.FinalPrice - breakdown.Shipping
	itemValues := make([]float64, len(project.Items))
	var baseTotal float64
	for i, item := range project.Items {
		itemValues[i] = singleItemValue(engine, item)
		baseTotal += itemValues[i]
	}

	for i, item := range project.Items {
		lineTotal := itemValues[i]
		if baseTotal > 0 {
			lineTotal = chargedTotal * itemValues[i] / baseTotal
		}
		unitPrice := lineTotal
		if item.Quantity > 0 {
			unitPrice = lineTotal / float64(item.Quantity)
		}
		view.Lines = append(view.Lines, quoteLineView{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: utils.FormatBRL(unitPrice),
			LineTotal: utils.FormatBRL(utils.CeilToCents(lineTotal)),
		})
	}

	return view, nil
}

// singleItemValue prices one line item in isolation, before quote-level
// discounts, excedente and fees.
func singleItemValue(engine *pricing.Engine, item models.QuoteLineItem) float64 {
	one := &models.Project{Items: []models.QuoteLineItem{item}}
	return engine.Breakdown(one, nil).BasePieceValue
}

// RenderQuoteHTML renders the quote HTML for a project
func (s *QuoteService) RenderQuoteHTML(ctx context.Context, projectID string) (string, error) {
	view, err := s.buildQuoteView(ctx, projectID)
	if err != nil {
		return "", err
	}

	templatePath := filepath.Join("templates", "quote.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates a quote PDF for a project using chromedp.
// The HTML is served by the quote render endpoint so Chrome can resolve
// fonts and assets the same way a browser preview would.
func (s *QuoteService) GeneratePDF(ctx context.Context, projectID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/projects/quote/render?id=%s", s.baseURL, projectID)

	var pdfBuf []byte

	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1500), // Wait for fonts and layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

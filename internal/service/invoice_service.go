package service

import (
	"context"
	"log"
	"sync"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
	"github.com/ridwanfathin/invoice-generator-service/internal/pdf"
	"github.com/ridwanfathin/invoice-generator-service/internal/repository"
	"github.com/ridwanfathin/invoice-generator-service/internal/validator"
)

// CreateInvoiceResult describes a successfully created invoice.
type CreateInvoiceResult struct {
	Invoice      *domain.Invoice
	DocumentPath string
}

// InvoiceServicer defines the interface for the invoice creation pipeline.
type InvoiceServicer interface {
	// CreateInvoice validates the input, persists the invoice atomically
	// and renders its document, short-circuiting on the first failure.
	CreateInvoice(ctx context.Context, customer domain.Customer, items []domain.LineItem, displayNumber string) (*CreateInvoiceResult, error)

	// GetInvoice retrieves a stored invoice with its items. Returns
	// domain.ErrInvoiceNotFound when no such invoice exists.
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// RenderInvoice regenerates the document for an already stored
	// invoice and returns the written path.
	RenderInvoice(ctx context.Context, invoiceID int64, displayNumber string) (string, error)
}

// InvoiceService orchestrates Validator, InvoiceRepository and the PDF
// renderer. Creates are serialized with an internal mutex; the storage
// transaction model assumes single-writer access.
type InvoiceService struct {
	repo      repository.InvoiceRepository
	renderer  *pdf.Renderer
	outputDir string
	logoPath  string
	logger    *log.Logger

	createMu sync.Mutex
}

// NewInvoiceService creates the invoice service. The logger is an injected
// collaborator so the core carries no process-global logging state; a nil
// logger falls back to the standard logger.
func NewInvoiceService(repo repository.InvoiceRepository, renderer *pdf.Renderer, outputDir, logoPath string, logger *log.Logger) *InvoiceService {
	if logger == nil {
		logger = log.Default()
	}
	return &InvoiceService{
		repo:      repo,
		renderer:  renderer,
		outputDir: outputDir,
		logoPath:  logoPath,
		logger:    logger,
	}
}

// CreateInvoice runs the pipeline: validate, persist, render. Every
// outcome is logged with the invoice id once one is known. A render
// failure after a successful insert leaves the invoice stored without a
// document; RenderInvoice can regenerate it later.
func (s *InvoiceService) CreateInvoice(ctx context.Context, customer domain.Customer, items []domain.LineItem, displayNumber string) (*CreateInvoiceResult, error) {
	if err := validator.ValidateInvoiceInput(customer, items); err != nil {
		s.logger.Printf("invoice creation rejected: %v", err)
		return nil, err
	}

	s.createMu.Lock()
	invoice, err := s.repo.CreateInvoice(ctx, customer, items)
	s.createMu.Unlock()
	if err != nil {
		s.logger.Printf("invoice creation failed in storage: %v", err)
		return nil, err
	}

	path, err := s.renderer.Render(invoice, pdf.Options{
		OutputDir:     s.outputDir,
		LogoPath:      s.logoPath,
		DisplayNumber: displayNumber,
	})
	if err != nil {
		s.logger.Printf("invoice %d persisted but rendering failed: %v", invoice.InvoiceID, err)
		return nil, err
	}

	s.logger.Printf("invoice %d created, document at %s", invoice.InvoiceID, path)
	return &CreateInvoiceResult{Invoice: invoice, DocumentPath: path}, nil
}

// GetInvoice delegates the point lookup to the repository.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if err != domain.ErrInvoiceNotFound {
			s.logger.Printf("invoice %d lookup failed: %v", invoiceID, err)
		}
		return nil, err
	}
	return invoice, nil
}

// RenderInvoice regenerates the document for a stored invoice, recovering
// the persisted-but-unrendered state left by a failed create.
func (s *InvoiceService) RenderInvoice(ctx context.Context, invoiceID int64, displayNumber string) (string, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if err != domain.ErrInvoiceNotFound {
			s.logger.Printf("invoice %d lookup failed: %v", invoiceID, err)
		}
		return "", err
	}

	path, err := s.renderer.Render(invoice, pdf.Options{
		OutputDir:     s.outputDir,
		LogoPath:      s.logoPath,
		DisplayNumber: displayNumber,
	})
	if err != nil {
		s.logger.Printf("invoice %d re-render failed: %v", invoiceID, err)
		return "", err
	}

	s.logger.Printf("invoice %d re-rendered, document at %s", invoiceID, path)
	return path, nil
}

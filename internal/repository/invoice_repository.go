package repository

import (
	"context"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// InvoiceRepository defines the interface for invoice data storage operations.
type InvoiceRepository interface {
	// CreateInvoice computes the invoice total, assigns a new invoice id
	// and writes the header plus all line items as a single atomic unit.
	// On failure nothing is persisted; the burned id is never reused.
	CreateInvoice(ctx context.Context, customer domain.Customer, items []domain.LineItem) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice and its items in insertion
	// order. Returns domain.ErrInvoiceNotFound if no such invoice exists.
	GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// CountInvoices returns the number of stored invoice headers.
	CountInvoices(ctx context.Context) (int, error)
}

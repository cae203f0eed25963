package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// MemoryInvoiceRepository is an in-memory InvoiceRepository. It backs unit
// tests and local runs without Postgres, and mirrors the transactional
// semantics of the SQL store: a failed create leaves no trace, and ids
// burned by a failed create are not reused.
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[int64]*domain.Invoice
	nextID   int64
	nextItem int64

	// failAfterItems, when >= 0, makes CreateInvoice fail after that many
	// item writes. Used to simulate a mid-transaction fault.
	failAfterItems int
	failErr        error
}

// NewMemoryInvoiceRepository creates an empty in-memory repository.
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		invoices:       make(map[int64]*domain.Invoice),
		failAfterItems: -1,
	}
}

// FailNextCreateAfterItems arms a fault: the next CreateInvoice calls fail
// after n item writes with the given error.
func (r *MemoryInvoiceRepository) FailNextCreateAfterItems(n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failAfterItems = n
	r.failErr = err
}

// ClearFault disarms any armed fault.
func (r *MemoryInvoiceRepository) ClearFault() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failAfterItems = -1
	r.failErr = nil
}

// CreateInvoice stores a deep copy of the customer and items under a newly
// assigned id, computing the total exactly once.
func (r *MemoryInvoiceRepository) CreateInvoice(ctx context.Context, customer domain.Customer, items []domain.LineItem) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID

	invoice := &domain.Invoice{
		InvoiceID:   id,
		Customer:    customer,
		IssueDate:   time.Now(),
		Items:       make([]domain.LineItem, 0, len(items)),
		TotalAmount: domain.SumItems(items),
	}

	for i, item := range items {
		if r.failAfterItems >= 0 && i >= r.failAfterItems {
			// The id stays burned, matching sequence behavior in Postgres.
			return nil, &domain.StorageError{Op: "insert invoice item", Err: r.failErr}
		}
		r.nextItem++
		item.ID = r.nextItem
		invoice.Items = append(invoice.Items, item)
	}

	r.invoices[id] = invoice

	return copyInvoice(invoice), nil
}

// GetInvoiceByID returns a copy of the stored invoice, or
// domain.ErrInvoiceNotFound.
func (r *MemoryInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.invoices[invoiceID]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	return copyInvoice(invoice), nil
}

// CountInvoices returns the number of stored invoices.
func (r *MemoryInvoiceRepository) CountInvoices(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices), nil
}

func copyInvoice(src *domain.Invoice) *domain.Invoice {
	dst := *src
	dst.Items = make([]domain.LineItem, len(src.Items))
	copy(dst.Items, src.Items)
	return &dst
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

var testCustomer = domain.Customer{
	Name:    "Jane Doe",
	Email:   "jane@x.com",
	Phone:   "555-1234",
	Address: "1 Main St",
}

func testItems() []domain.LineItem {
	return []domain.LineItem{
		{ProductName: "Consulting", Quantity: 5, UnitPrice: 200.00, Description: "Strategy"},
		{ProductName: "Report", Quantity: 1, UnitPrice: 750.00, Description: "Market analysis"},
	}
}

func TestMemoryRepository_CreateComputesTotal(t *testing.T) {
	repo := NewMemoryInvoiceRepository()

	invoice, err := repo.CreateInvoice(context.Background(), testCustomer, testItems())
	require.NoError(t, err)

	assert.Equal(t, int64(1), invoice.InvoiceID)
	assert.Equal(t, 1750.00, invoice.TotalAmount)
	assert.False(t, invoice.IssueDate.IsZero())
}

func TestMemoryRepository_CreateGetRoundTrip(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	created, err := repo.CreateInvoice(ctx, testCustomer, testItems())
	require.NoError(t, err)

	got, err := repo.GetInvoiceByID(ctx, created.InvoiceID)
	require.NoError(t, err)

	assert.Equal(t, testCustomer, got.Customer)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, "Consulting", got.Items[0].ProductName)
	assert.Equal(t, "Report", got.Items[1].ProductName)
	assert.Equal(t, created.TotalAmount, got.TotalAmount)
}

func TestMemoryRepository_GetUnknownID(t *testing.T) {
	repo := NewMemoryInvoiceRepository()

	_, err := repo.GetInvoiceByID(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestMemoryRepository_IDsAreMonotonic(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	first, err := repo.CreateInvoice(ctx, testCustomer, testItems())
	require.NoError(t, err)
	second, err := repo.CreateInvoice(ctx, testCustomer, testItems())
	require.NoError(t, err)

	assert.Greater(t, second.InvoiceID, first.InvoiceID)
}

func TestMemoryRepository_FailedCreateLeavesNoTrace(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	before, err := repo.CountInvoices(ctx)
	require.NoError(t, err)

	repo.FailNextCreateAfterItems(1, errors.New("disk full"))
	_, err = repo.CreateInvoice(ctx, testCustomer, testItems())
	require.Error(t, err)

	var sErr *domain.StorageError
	assert.ErrorAs(t, err, &sErr)

	after, err := repo.CountInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "no orphan header after a failed create")

	// The burned id is skipped by the next successful create.
	repo.ClearFault()
	invoice, err := repo.CreateInvoice(ctx, testCustomer, testItems())
	require.NoError(t, err)
	assert.Equal(t, int64(2), invoice.InvoiceID)
}

func TestMemoryRepository_ReturnedInvoiceIsACopy(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	created, err := repo.CreateInvoice(ctx, testCustomer, testItems())
	require.NoError(t, err)

	created.Items[0].ProductName = "mutated"

	got, err := repo.GetInvoiceByID(ctx, created.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, "Consulting", got.Items[0].ProductName)
}

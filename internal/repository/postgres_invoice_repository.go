package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ridwanfathin/invoice-generator-service/internal/database"
	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
type PostgresInvoiceRepository struct {
	db *database.PostgresDB
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository.
func NewPostgresInvoiceRepository(db *database.PostgresDB) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db: db,
	}
}

// CreateInvoice saves a new invoice header and its line items in a single
// transaction. The total is computed here, once, from the items; the issue
// date is the creation date. If any insert fails the transaction is rolled
// back and no row for the assigned id remains; the burned id is not
// reused because the identity sequence advances outside the transaction.
func (r *PostgresInvoiceRepository) CreateInvoice(ctx context.Context, customer domain.Customer, items []domain.LineItem) (*domain.Invoice, error) {
	invoice := &domain.Invoice{
		Customer:    customer,
		IssueDate:   time.Now(),
		Items:       make([]domain.LineItem, len(items)),
		TotalAmount: domain.SumItems(items),
	}
	copy(invoice.Items, items)

	err := r.db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO invoices (customer_name, customer_email, customer_phone, customer_address, issue_date, total_amount)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING invoice_id, issue_date
		`, customer.Name, customer.Email, customer.Phone, customer.Address,
			invoice.IssueDate, invoice.TotalAmount).Scan(
			&invoice.InvoiceID, &invoice.IssueDate,
		)
		if err != nil {
			return &domain.StorageError{Op: "insert invoice", Err: err}
		}

		for i := range invoice.Items {
			item := &invoice.Items[i]
			err = tx.QueryRow(ctx, `
				INSERT INTO invoice_items (invoice_id, product_name, quantity, unit_price, description)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, invoice.InvoiceID, item.ProductName, item.Quantity, item.UnitPrice, item.Description).Scan(&item.ID)
			if err != nil {
				return &domain.StorageError{Op: "insert invoice item", Err: err}
			}
		}

		return nil
	})
	if err != nil {
		return nil, asStorageError("create invoice", err)
	}

	return invoice, nil
}

// GetInvoiceByID retrieves an invoice and its items by invoice id.
func (r *PostgresInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	pool := r.db.GetPool()

	var invoice domain.Invoice
	err := pool.QueryRow(ctx, `
		SELECT invoice_id, customer_name, customer_email, customer_phone, customer_address, issue_date, total_amount
		FROM invoices
		WHERE invoice_id = $1
	`, invoiceID).Scan(
		&invoice.InvoiceID, &invoice.Customer.Name, &invoice.Customer.Email,
		&invoice.Customer.Phone, &invoice.Customer.Address,
		&invoice.IssueDate, &invoice.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, &domain.StorageError{Op: "get invoice", Err: err}
	}

	rows, err := pool.Query(ctx, `
		SELECT id, product_name, quantity, unit_price, description
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, &domain.StorageError{Op: "query invoice items", Err: err}
	}
	defer rows.Close()

	invoice.Items = []domain.LineItem{}
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.Description); err != nil {
			return nil, &domain.StorageError{Op: "scan invoice item", Err: err}
		}
		invoice.Items = append(invoice.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "iterate invoice items", Err: err}
	}

	return &invoice, nil
}

// CountInvoices returns the number of invoice headers in the store.
func (r *PostgresInvoiceRepository) CountInvoices(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetPool().QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	if err != nil {
		return 0, &domain.StorageError{Op: "count invoices", Err: err}
	}
	return count, nil
}

// asStorageError keeps already-typed storage errors intact and wraps
// begin/commit failures surfaced by the transaction helper.
func asStorageError(op string, err error) error {
	var sErr *domain.StorageError
	if errors.As(err, &sErr) {
		return err
	}
	return &domain.StorageError{Op: op, Err: err}
}

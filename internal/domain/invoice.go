package domain

import (
	"time"
)

// Customer holds the billing contact captured on an invoice. It is stored
// by value with each invoice, never as a reference to a customer table.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem represents a single billed product or service on an invoice.
// A line item never exists outside its owning invoice.
type LineItem struct {
	ID          int64   `json:"id,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}

// Total returns the row total for this line item.
func (li LineItem) Total() float64 {
	return li.Quantity * li.UnitPrice
}

// Invoice is the core domain entity: a customer snapshot, an issue date,
// an ordered list of line items and the total computed at creation time.
type Invoice struct {
	InvoiceID   int64      `json:"invoice_id"`
	Customer    Customer   `json:"customer"`
	IssueDate   time.Time  `json:"issue_date"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}

// SumItems computes an invoice total from a list of line items.
func SumItems(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}

// FormatIssueDate returns the issue date as a date-only string.
func (i *Invoice) FormatIssueDate() string {
	return i.IssueDate.Format("2006-01-02")
}

// Issuer is the fixed sender identity printed on every rendered document.
type Issuer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

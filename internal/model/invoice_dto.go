package model

import (
	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// CustomerDTO carries the four customer display fields for data transfer.
type CustomerDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItemDTO represents a single billed item for data transfer.
type LineItemDTO struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}

// CreateInvoiceRequest is the payload for creating an invoice.
type CreateInvoiceRequest struct {
	Customer CustomerDTO   `json:"customer"`
	Items    []LineItemDTO `json:"items"`

	// InvoiceNumber optionally overrides the human-facing invoice number
	// used in the document; defaults to the assigned invoice id.
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

// CreateInvoiceResponse is the result descriptor returned on success.
type CreateInvoiceResponse struct {
	InvoiceID    int64  `json:"invoice_id"`
	DocumentPath string `json:"document_path"`
}

// InvoiceDTO represents a stored invoice for data transfer.
type InvoiceDTO struct {
	InvoiceID   int64         `json:"invoice_id"`
	Customer    CustomerDTO   `json:"customer"`
	IssueDate   string        `json:"issue_date"` // Format: YYYY-MM-DD
	Items       []LineItemDTO `json:"items"`
	TotalAmount float64       `json:"total_amount"`
}

// RenderInvoiceResponse is returned when a document is regenerated.
type RenderInvoiceResponse struct {
	InvoiceID    int64  `json:"invoice_id"`
	DocumentPath string `json:"document_path"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToDomain converts the request payload into domain values.
func (req *CreateInvoiceRequest) ToDomain() (domain.Customer, []domain.LineItem) {
	customer := domain.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}

	items := make([]domain.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Description: item.Description,
		}
	}

	return customer, items
}

// FromDomain converts a domain Invoice to an InvoiceDTO.
func (dto *InvoiceDTO) FromDomain(invoice *domain.Invoice) {
	dto.InvoiceID = invoice.InvoiceID
	dto.Customer = CustomerDTO{
		Name:    invoice.Customer.Name,
		Email:   invoice.Customer.Email,
		Phone:   invoice.Customer.Phone,
		Address: invoice.Customer.Address,
	}
	dto.IssueDate = invoice.FormatIssueDate()
	dto.TotalAmount = invoice.TotalAmount

	dto.Items = make([]LineItemDTO, len(invoice.Items))
	for i, item := range invoice.Items {
		dto.Items[i] = LineItemDTO{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Description: item.Description,
		}
	}
}

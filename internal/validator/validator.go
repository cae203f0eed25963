// Package validator checks customer and line item data against the
// business rules that must hold before an invoice is persisted. Validation
// is pure: no side effects, same input always yields the same verdict.
package validator

import (
	"fmt"
	"strings"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// ValidateInvoiceInput checks the customer record and item list in a fixed
// order, failing fast on the first violation:
//
//  1. every customer field is present and non-empty
//  2. the item list is non-empty
//  3. every item carries all required fields
//  4. quantity > 0 and unit price >= 0 for every item
//
// The returned error is always a *domain.ValidationError naming the first
// offending field.
func ValidateInvoiceInput(customer domain.Customer, items []domain.LineItem) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	if len(items) == 0 {
		return &domain.ValidationError{
			Field:   "items",
			Message: "invoice must contain at least one item",
		}
	}

	for i, item := range items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}

	return nil
}

func validateCustomer(customer domain.Customer) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", customer.Name},
		{"email", customer.Email},
		{"phone", customer.Phone},
		{"address", customer.Address},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{
				Field:   f.name,
				Message: "missing required customer field",
			}
		}
	}

	return nil
}

func validateItem(index int, item domain.LineItem) error {
	if strings.TrimSpace(item.ProductName) == "" {
		return &domain.ValidationError{
			Field:   itemField(index, "product_name"),
			Message: "missing required item field",
		}
	}
	if strings.TrimSpace(item.Description) == "" {
		return &domain.ValidationError{
			Field:   itemField(index, "description"),
			Message: "missing required item field",
		}
	}
	if item.Quantity <= 0 {
		return &domain.ValidationError{
			Field:   itemField(index, "quantity"),
			Message: "quantity must be greater than zero",
		}
	}
	if item.UnitPrice < 0 {
		return &domain.ValidationError{
			Field:   itemField(index, "unit_price"),
			Message: "unit price must not be negative",
		}
	}
	return nil
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items[%d].%s", index, name)
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

func validCustomer() domain.Customer {
	return domain.Customer{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-1234",
		Address: "1 Main St",
	}
}

func validItems() []domain.LineItem {
	return []domain.LineItem{
		{ProductName: "Consulting", Quantity: 5, UnitPrice: 200.00, Description: "Strategy"},
	}
}

func TestValidateInvoiceInput_Valid(t *testing.T) {
	err := ValidateInvoiceInput(validCustomer(), validItems())
	assert.NoError(t, err)
}

func TestValidateInvoiceInput_CustomerFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.Customer)
		wantField string
	}{
		{"empty name", func(c *domain.Customer) { c.Name = "" }, "name"},
		{"empty email", func(c *domain.Customer) { c.Email = "" }, "email"},
		{"empty phone", func(c *domain.Customer) { c.Phone = "" }, "phone"},
		{"empty address", func(c *domain.Customer) { c.Address = "" }, "address"},
		{"whitespace email", func(c *domain.Customer) { c.Email = "   " }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := validCustomer()
			tt.mutate(&customer)

			err := ValidateInvoiceInput(customer, validItems())
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateInvoiceInput_EmptyItems(t *testing.T) {
	err := ValidateInvoiceInput(validCustomer(), nil)
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items", vErr.Field)
}

func TestValidateInvoiceInput_ItemRules(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.LineItem
		wantField string
	}{
		{
			"missing product name",
			domain.LineItem{Quantity: 1, UnitPrice: 10, Description: "x"},
			"items[0].product_name",
		},
		{
			"missing description",
			domain.LineItem{ProductName: "Widget", Quantity: 1, UnitPrice: 10},
			"items[0].description",
		},
		{
			"zero quantity",
			domain.LineItem{ProductName: "Widget", Quantity: 0, UnitPrice: 10, Description: "x"},
			"items[0].quantity",
		},
		{
			"negative quantity",
			domain.LineItem{ProductName: "Widget", Quantity: -1, UnitPrice: 10, Description: "x"},
			"items[0].quantity",
		},
		{
			"negative unit price",
			domain.LineItem{ProductName: "Widget", Quantity: 1, UnitPrice: -0.01, Description: "x"},
			"items[0].unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInvoiceInput(validCustomer(), []domain.LineItem{tt.item})
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// Customer rules are checked before item rules, and the first offending
// item wins.
func TestValidateInvoiceInput_FailFastOrder(t *testing.T) {
	customer := validCustomer()
	customer.Email = ""

	items := []domain.LineItem{
		{ProductName: "Widget", Quantity: -1, UnitPrice: 10, Description: "x"},
	}

	var vErr *domain.ValidationError
	err := ValidateInvoiceInput(customer, items)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	items = append(validItems(), domain.LineItem{
		ProductName: "Second", Quantity: 2, UnitPrice: -5, Description: "y",
	})
	err = ValidateInvoiceInput(validCustomer(), items)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "items[1].unit_price", vErr.Field)
}

func TestValidateInvoiceInput_ZeroUnitPriceAllowed(t *testing.T) {
	items := []domain.LineItem{
		{ProductName: "Sample", Quantity: 1, UnitPrice: 0, Description: "Free of charge"},
	}
	assert.NoError(t, ValidateInvoiceInput(validCustomer(), items))
}

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCustomer represents the customer block in the API
type TestCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// TestLineItem represents an item in an invoice
type TestLineItem struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}

// TestCreateRequest is the payload for POST /v1/invoices
type TestCreateRequest struct {
	Customer      TestCustomer   `json:"customer"`
	Items         []TestLineItem `json:"items"`
	InvoiceNumber string         `json:"invoice_number,omitempty"`
}

// TestCreateResponse is the result descriptor returned on success
type TestCreateResponse struct {
	InvoiceID    int64  `json:"invoice_id"`
	DocumentPath string `json:"document_path"`
}

// TestInvoice represents a stored invoice returned by GET /v1/invoices/:id
type TestInvoice struct {
	InvoiceID   int64          `json:"invoice_id"`
	Customer    TestCustomer   `json:"customer"`
	IssueDate   string         `json:"issue_date"`
	Items       []TestLineItem `json:"items"`
	TotalAmount float64        `json:"total_amount"`
}

// TestInvoiceAPI exercises the invoice API end to end against a running
// server. Requires API_BASE_URL and a migrated database.
func TestInvoiceAPI(t *testing.T) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		t.Skip("API_BASE_URL not set; skipping integration test")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	createReq := TestCreateRequest{
		Customer: TestCustomer{
			Name:    "Jane Doe",
			Email:   "jane@x.com",
			Phone:   "555-1234",
			Address: "1 Main St",
		},
		Items: []TestLineItem{
			{ProductName: "Consulting", Quantity: 5, UnitPrice: 200.00, Description: "Strategy"},
			{ProductName: "Report", Quantity: 1, UnitPrice: 750.00, Description: "Market analysis"},
		},
	}

	var created TestCreateResponse

	t.Run("CreateInvoice", func(t *testing.T) {
		body, err := json.Marshal(createReq)
		require.NoError(t, err)

		resp, err := client.Post(baseURL+"/v1/invoices", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.Positive(t, created.InvoiceID)
		assert.Contains(t, created.DocumentPath, fmt.Sprintf("invoice_%d.pdf", created.InvoiceID))
	})

	t.Run("GetInvoice", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/v1/invoices/%d", baseURL, created.InvoiceID))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var invoice TestInvoice
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&invoice))
		assert.Equal(t, createReq.Customer, invoice.Customer)
		assert.Len(t, invoice.Items, len(createReq.Items))
		assert.Equal(t, 1750.00, invoice.TotalAmount)
	})

	t.Run("GetInvoiceNotFound", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/v1/invoices/999999999")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ValidationErrorCitesField", func(t *testing.T) {
		bad := createReq
		bad.Customer.Email = ""

		body, err := json.Marshal(bad)
		require.NoError(t, err)

		resp, err := client.Post(baseURL+"/v1/invoices", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var errResp struct {
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		require.Len(t, errResp.Details, 1)
		assert.Equal(t, "email", errResp.Details[0].Field)
	})

	t.Run("RerenderDocument", func(t *testing.T) {
		resp, err := client.Post(fmt.Sprintf("%s/v1/invoices/%d/render", baseURL, created.InvoiceID), "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

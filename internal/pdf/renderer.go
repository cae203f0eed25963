// Package pdf renders a stored invoice into a paginated PDF document.
// Rendering is stateless and deterministic: the same invoice snapshot and
// options always produce the same layout.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// Page geometry in millimeters: letter pages with 0.25 inch margins.
const (
	pageMargin = 6.35
	logoWidth  = 50.8
	logoHeight = 25.4
)

// totalTolerance is the maximum allowed disagreement, in currency units,
// between the stored invoice total and the total recomputed from the
// items. The stored value round-trips through a NUMERIC column, so exact
// bit-identity is not required; anything beyond a cent is a fault.
const totalTolerance = 0.005

// Options control a single render call.
type Options struct {
	// OutputDir is the directory the document is written to. It is
	// created if it does not exist.
	OutputDir string

	// LogoPath is an optional logo image. A missing or unreadable file
	// is tolerated; the document is rendered without a logo.
	LogoPath string

	// DisplayNumber overrides the human-facing invoice number. Defaults
	// to the numeric invoice id.
	DisplayNumber string
}

// Renderer produces invoice documents for a fixed issuer identity. It
// holds configuration only; Render keeps no state between calls.
type Renderer struct {
	issuer domain.Issuer
}

// NewRenderer creates a renderer stamping every document with the given
// issuer identity.
func NewRenderer(issuer domain.Issuer) *Renderer {
	return &Renderer{issuer: issuer}
}

// Render lays out the invoice and writes it to
// outputDir/invoice_<displayNumber>.pdf, returning the written path.
// The grand total is recomputed from the items and must agree with the
// stored total to the cent; a mismatch is a render failure.
func (r *Renderer) Render(invoice *domain.Invoice, opts Options) (string, error) {
	grandTotal := domain.SumItems(invoice.Items)
	if math.Abs(grandTotal-invoice.TotalAmount) >= totalTolerance {
		return "", &domain.RenderError{
			Op:  "verify total",
			Err: fmt.Errorf("stored total %.2f does not match computed total %.2f", invoice.TotalAmount, grandTotal),
		}
	}

	displayNumber := opts.DisplayNumber
	if displayNumber == "" {
		displayNumber = strconv.FormatInt(invoice.InvoiceID, 10)
	}

	data, err := r.renderDocument(invoice, displayNumber, opts.LogoPath, grandTotal)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", &domain.RenderError{Op: "create output directory", Err: err}
	}

	path := filepath.Join(opts.OutputDir, fmt.Sprintf("invoice_%s.pdf", displayNumber))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &domain.RenderError{Op: "write document", Err: err}
	}

	return path, nil
}

// renderDocument builds the PDF in memory and returns its bytes.
func (r *Renderer) renderDocument(invoice *domain.Invoice, displayNumber, logoPath string, grandTotal float64) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	r.writeHeader(doc, displayNumber, logoPath)
	r.writeParty(doc, "Sender:", r.issuer.Name, r.issuer.Email, r.issuer.Phone, r.issuer.Address)
	r.writeParty(doc, "Bill To:",
		invoice.Customer.Name, invoice.Customer.Email,
		invoice.Customer.Phone, invoice.Customer.Address)
	r.writeItemTable(doc, invoice.Items, grandTotal)

	if doc.Err() {
		return nil, &domain.RenderError{Op: "layout", Err: doc.Error()}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &domain.RenderError{Op: "encode document", Err: err}
	}
	return buf.Bytes(), nil
}

// writeHeader draws the optional logo on the left and the invoice number
// and render date right-aligned on the same band.
func (r *Renderer) writeHeader(doc *gofpdf.Fpdf, displayNumber, logoPath string) {
	left, top, _, _ := doc.GetMargins()

	hasLogo := false
	if imageType, ok := usableLogo(logoPath); ok {
		doc.ImageOptions(logoPath, left, top, logoWidth, logoHeight, false,
			gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}, 0, "")
		hasLogo = true
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 5, "Invoice #"+displayNumber, "", 1, "R", false, 0, "")
	doc.CellFormat(0, 5, "Date: "+time.Now().Format("January 2, 2006"), "", 1, "R", false, 0, "")

	if hasLogo {
		doc.SetY(top + logoHeight)
	}
	doc.Ln(6)
}

// writeParty draws a shaded label row followed by one line per contact field.
func (r *Renderer) writeParty(doc *gofpdf.Fpdf, label, name, email, phone, address string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(211, 211, 211)
	doc.CellFormat(100, 6, label, "", 1, "L", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	lines := []string{
		"Name: " + name,
		"Email: " + email,
		"Phone: " + phone,
		"Address: " + address,
	}
	for _, line := range lines {
		doc.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(6)
}

// writeItemTable draws the line item grid: a shaded header row, one row
// per item with the recomputed row total, and a final grand total row.
func (r *Renderer) writeItemTable(doc *gofpdf.Fpdf, items []domain.LineItem, grandTotal float64) {
	widths := []float64{50, 20, 28, 28, 77.2}
	headers := []string{"Product", "Quantity", "Price", "Total", "Description"}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(211, 211, 211)
	for i, h := range headers {
		doc.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, item := range items {
		doc.CellFormat(widths[0], 7, item.ProductName, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 7, formatQuantity(item.Quantity), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], 7, formatMoney(item.UnitPrice), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[3], 7, formatMoney(item.Total()), "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[4], 7, item.Description, "1", 0, "L", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(widths[0], 7, "", "1", 0, "L", false, 0, "")
	doc.CellFormat(widths[1], 7, "", "1", 0, "L", false, 0, "")
	doc.CellFormat(widths[2], 7, "Total:", "1", 0, "L", false, 0, "")
	doc.CellFormat(widths[3], 7, formatMoney(grandTotal), "1", 0, "L", false, 0, "")
	doc.CellFormat(widths[4], 7, "", "1", 0, "L", false, 0, "")
	doc.Ln(-1)
}

// formatMoney renders an amount with a fixed currency symbol, two decimal
// places and no grouping.
func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// formatQuantity renders a quantity without trailing zeros.
func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}

// usableLogo reports whether the logo file exists and decodes as an image
// type the layout engine accepts. Anything else means the document is
// rendered without a logo.
func usableLogo(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(format) {
	case "png", "jpeg", "gif":
		if format == "jpeg" {
			return "JPG", true
		}
		return strings.ToUpper(format), true
	}
	return "", false
}

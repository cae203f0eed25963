package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
	"github.com/ridwanfathin/invoice-generator-service/internal/model"
	"github.com/ridwanfathin/invoice-generator-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice creation and lookup.
type InvoiceHandler struct {
	service service.InvoiceServicer
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(svc service.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{
		service: svc,
	}
}

// RegisterRoutes registers the handler's routes with the given router.
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/invoices", h.CreateInvoice)
	router.GET("/v1/invoices/:id", h.GetInvoice)
	router.POST("/v1/invoices/:id/render", h.RenderInvoice)
}

// CreateInvoice handles a request to create an invoice and its document
// @Summary Create an invoice
// @Description Validate customer and item data, persist the invoice and render its PDF document
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} model.CreateInvoiceResponse "Invoice created"
// @Failure 400 {object} model.ErrorResponse "Malformed request body"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 500 {object} model.ErrorResponse "Storage or rendering failure"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, ErrInvalidInput+": "+err.Error())
		return
	}

	customer, items := req.ToDomain()

	result, err := h.service.CreateInvoice(c.Request.Context(), customer, items, req.InvoiceNumber)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondCreated(c, model.CreateInvoiceResponse{
		InvoiceID:    result.Invoice.InvoiceID,
		DocumentPath: result.DocumentPath,
	})
}

// GetInvoice handles a request to fetch a stored invoice
// @Summary Get an invoice
// @Description Retrieve an invoice header and its line items by id
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} model.InvoiceDTO "Invoice found"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Storage failure"
// @Router /v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := getInvoiceID(c)
	if err != nil {
		respondBadRequest(c, ErrInvalidID)
		return
	}

	invoice, err := h.service.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	var dto model.InvoiceDTO
	dto.FromDomain(invoice)
	respondOK(c, dto)
}

// RenderInvoice handles a request to regenerate an invoice document
// @Summary Re-render an invoice document
// @Description Regenerate the PDF document for an already stored invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Param invoice_number query string false "Display invoice number override"
// @Success 200 {object} model.RenderInvoiceResponse "Document rendered"
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Rendering failure"
// @Router /v1/invoices/{id}/render [post]
func (h *InvoiceHandler) RenderInvoice(c *gin.Context) {
	invoiceID, err := getInvoiceID(c)
	if err != nil {
		respondBadRequest(c, ErrInvalidID)
		return
	}

	path, err := h.service.RenderInvoice(c.Request.Context(), invoiceID, c.Query("invoice_number"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, model.RenderInvoiceResponse{
		InvoiceID:    invoiceID,
		DocumentPath: path,
	})
}

// respondServiceError maps the service error kinds to HTTP responses.
func (h *InvoiceHandler) respondServiceError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		respondUnprocessableEntity(c, "Validation failed", newErrorDetail(vErr.Field, vErr.Message))
		return
	}

	if errors.Is(err, domain.ErrInvoiceNotFound) {
		respondNotFound(c, ErrResourceNotFound)
		return
	}

	var rErr *domain.RenderError
	if errors.As(err, &rErr) {
		respondInternalServerError(c, "Document rendering failed: "+rErr.Error())
		return
	}

	respondInternalServerError(c, ErrInternalServer)
}

// getInvoiceID parses the numeric invoice id path parameter.
func getInvoiceID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/utils/invoicing"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.GET("/:id/totals", h.getInvoiceTotals)
		invoices.POST("/:id/payment", h.recordPayment)
		invoices.POST("/:id/cancel", h.cancelInvoice)
	}
}

// createInvoice godoc
// @Summary Issue an invoice
// @Description Validates the lines, allocates the next invoice number and stores the invoice as ISSUED.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Invoice number already used"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create invoice", slog.String("client_id", req.ClientID), slog.Int("lines", len(req.Lines)))

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, invoicing.ComputeInvoiceTotals(*invoice)))
}

// listInvoices godoc
// @Summary List invoices
// @Description Most recent first. Pass nextToken from a previous response to get the following page.
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   clientID query string false "Only invoices of this client"
// @Param   status query string false "ISSUED, PAID or CANCELLED"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, invoicing.ComputeInvoiceTotals(*invoice)))
}

// getInvoiceTotals godoc
// @Summary Get the totals of an invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.TotalsResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/{id}/totals [get]
func (h *invoiceHandler) getInvoiceTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))

	totals, err := h.invoiceService.GetInvoiceTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute invoice totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}

// recordPayment godoc
// @Summary Mark an invoice as paid
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment date"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid payment date"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice already paid or cancelled"
// @Router /invoices/{id}/payment [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.RecordPayment(c.Request.Context(), c.Param("id"), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, invoicing.ComputeInvoiceTotals(*invoice)))
}

// cancelInvoice godoc
// @Summary Cancel an invoice
// @Description Only ISSUED invoices can be cancelled. The number stays allocated.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice is not cancellable"
// @Router /invoices/{id}/cancel [post]
func (h *invoiceHandler) cancelInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", c.Param("id")))

	invoice, err := h.invoiceService.CancelInvoice(c.Request.Context(), c.Param("id"), middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to cancel invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, invoicing.ComputeInvoiceTotals(*invoice)))
}

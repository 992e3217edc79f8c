package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoice")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/status", h.statusBreakdown)
		invoices.POST("/amount", h.amountBetween)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("", h.createInvoice)
		invoices.POST("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// idParam parses the numeric :id path parameter. Non-numeric IDs behave
// like missing rows.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondNotFound(c, "resource not found")
		return 0, false
	}
	return id, true
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, attachments, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(invoices) == 0 {
		respondNotFound(c, "no invoices found")
		return
	}

	res := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = dto.ToInvoiceResponse(&invoices[i], attachments[invoices[i].InvoiceID])
	}
	respondData(c, http.StatusOK, res)
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	invoice, attachments, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToInvoiceResponse(invoice, attachments))
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice created", slog.Int64("invoice_id", invoice.InvoiceID))
	respondMessageData(c, http.StatusCreated, "invoice created", dto.ToInvoiceResponse(invoice, nil))
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice updated", slog.Int64("invoice_id", id))
	respondMessageData(c, http.StatusOK, "invoice updated", dto.ToInvoiceResponse(invoice, nil))
}

func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "invoice deleted")
}

func (h *invoiceHandler) amountBetween(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	amount, err := h.invoiceService.SumTotalsBetween(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.AmountResponse{Amount: amount})
}

func (h *invoiceHandler) statusBreakdown(c *gin.Context) {
	breakdown, err := h.invoiceService.StatusBreakdown(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, breakdown)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payment")
	{
		payments.GET("", h.listPayments)
		payments.POST("/amount", h.amountBetween)
		payments.GET("/:id", h.getPayment)
		payments.POST("", h.createPayment)
		payments.POST("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

func (h *paymentHandler) listPayments(c *gin.Context) {
	payments, attachments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(payments) == 0 {
		respondNotFound(c, "no payments found")
		return
	}

	res := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		res[i] = dto.ToPaymentResponse(&payments[i], attachments[payments[i].PaymentID])
	}
	respondData(c, http.StatusOK, res)
}

func (h *paymentHandler) getPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	payment, attachments, err := h.paymentService.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToPaymentResponse(payment, attachments))
}

func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Payment created", slog.Int64("payment_id", payment.PaymentID))
	respondMessageData(c, http.StatusCreated, "payment created", dto.ToPaymentResponse(payment, nil))
}

func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Payment updated", slog.Int64("payment_id", id))
	respondMessageData(c, http.StatusOK, "payment updated", dto.ToPaymentResponse(payment, nil))
}

func (h *paymentHandler) deletePayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "payment deleted")
}

func (h *paymentHandler) amountBetween(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	amount, err := h.paymentService.SumAmountsBetween(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.AmountResponse{Amount: amount})
}

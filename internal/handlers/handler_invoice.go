package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/contractor_backoffice/internal/core/ports/services"
	"github.com/SscSPs/contractor_backoffice/internal/dto"
	"github.com/SscSPs/contractor_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler serves invoice balance views.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceService
	now            func() time.Time
}

func newInvoiceHandler(is portssvc.InvoiceService, now func() time.Time) *invoiceHandler {
	if now == nil {
		now = time.Now
	}
	return &invoiceHandler{invoiceService: is, now: now}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, h *invoiceHandler) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoice)
		invoices.POST("/:invoice_id/payments/preview", h.previewPayment)
	}
}

// listInvoices godoc
// @Summary List invoice summaries
// @Description Lists invoices with their derived balance and status, ordered by invoice number
// @Tags invoices
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param limit query int false "Page size (max 100)" default(20)
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	svcParams := portssvc.ListInvoiceSummariesParams{Limit: params.Limit}
	if params.NextToken != "" {
		svcParams.NextToken = &params.NextToken
	}

	result, err := h.invoiceService.ListInvoiceSummaries(c.Request.Context(), workplaceID, userID, svcParams)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceSummaryResponses(result.Invoices),
		NextToken: result.NextToken,
	})
}

// getInvoice godoc
// @Summary Get an invoice summary
// @Tags invoices
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to get invoice"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")
	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("invoice_id", invoiceID))

	summary, err := h.invoiceService.GetInvoiceSummary(c.Request.Context(), workplaceID, invoiceID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceSummaryResponse(*summary))
}

// previewPayment godoc
// @Summary Preview a payment against an invoice
// @Description Computes the balance and status an invoice would have after the payment. Nothing is recorded.
// @Tags invoices
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param invoice_id path string true "Invoice ID"
// @Param payment body dto.PreviewPaymentRequest true "Payment to preview"
// @Success 200 {object} dto.PaymentApplicationResponse
// @Failure 400 {object} map[string]string "Invalid payment"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to preview payment"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/invoices/{invoice_id}/payments/preview [post]
func (h *invoiceHandler) previewPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")
	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("invoice_id", invoiceID))

	var req dto.PreviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind preview payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	payment, err := req.ToDomain(invoiceID, h.now())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to preview payment")
		return
	}

	application, err := h.invoiceService.PreviewPayment(c.Request.Context(), workplaceID, invoiceID, payment, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to preview payment")
		return
	}

	logger.Info("Payment previewed", slog.String("new_status", string(application.NewStatus)))
	c.JSON(http.StatusOK, dto.ToPaymentApplicationResponse(*application))
}

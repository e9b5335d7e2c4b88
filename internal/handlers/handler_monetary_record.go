package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/construction_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/SscSPs/construction_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// monetaryRecordHandler handles monetary records and their aggregated summaries.
type monetaryRecordHandler struct {
	recordService      portssvc.MonetaryRecordSvcFacade
	aggregationService portssvc.AggregationSvc
}

func newMonetaryRecordHandler(rs portssvc.MonetaryRecordSvcFacade, as portssvc.AggregationSvc) *monetaryRecordHandler {
	return &monetaryRecordHandler{
		recordService:      rs,
		aggregationService: as,
	}
}

// registerMonetaryRecordRoutes registers record and summary routes under an organization group.
func registerMonetaryRecordRoutes(org *gin.RouterGroup, recordService portssvc.MonetaryRecordSvcFacade, aggregationService portssvc.AggregationSvc) {
	h := newMonetaryRecordHandler(recordService, aggregationService)

	records := org.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.POST("/:record_id/void", h.voidRecord)
		records.PUT("/:record_id/exchange-rate", h.correctExchangeRate)
	}
	org.GET("/summaries/money", h.getMoneySummary)
}

// createRecord godoc
// @Summary Record a monetary amount
// @Description Stores a payment, purchase-order item or contract amount. Omitting exchangeRate on a foreign-currency record defers to the organization's current rate.
// @Tags records
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   record body dto.CreateMonetaryRecordRequest true "Record details"
// @Success 201 {object} dto.MonetaryRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /organizations/{organization_id}/records [post]
func (h *monetaryRecordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var req dto.CreateMonetaryRecordRequest
	if !bindJSON(c, logger, &req, "create record") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.recordService.RecordMonetaryRecord(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "create record")
		return
	}

	logger.Info("Monetary record created", slog.String("record_id", record.RecordID), slog.String("kind", string(record.Kind)))
	c.JSON(http.StatusCreated, dto.ToMonetaryRecordResponse(record))
}

// listRecords godoc
// @Summary List monetary records
// @Tags records
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   kind query string false "payment, purchase_order_item or contract_amount"
// @Param   projectID query string false "Project ID"
// @Param   includeVoided query bool false "Include voided records"
// @Success 200 {object} dto.ListMonetaryRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /organizations/{organization_id}/records [get]
func (h *monetaryRecordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var params dto.ListMonetaryRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListMonetaryRecords(c.Request.Context(), organizationID, domain.RecordFilter{
		Kind:          domain.RecordKind(params.Kind),
		ProjectID:     params.ProjectID,
		IncludeVoided: params.IncludeVoided,
	})
	if err != nil {
		writeServiceError(c, logger, err, "list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonetaryRecordsResponse(records))
}

// voidRecord godoc
// @Summary Void a monetary record
// @Description Voided records are excluded from every summary
// @Tags records
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   record_id path string true "Record ID"
// @Success 200 {object} dto.MonetaryRecordResponse
// @Failure 404 {object} map[string]string "Record not found or already voided"
// @Failure 500 {object} map[string]string "Failed to void record"
// @Security BearerAuth
// @Router /organizations/{organization_id}/records/{record_id}/void [post]
func (h *monetaryRecordHandler) voidRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	recordID := c.Param("record_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.recordService.VoidMonetaryRecord(c.Request.Context(), organizationID, recordID, userID)
	if err != nil {
		writeServiceError(c, logger, err, "void record")
		return
	}

	logger.Info("Monetary record voided", slog.String("record_id", recordID))
	c.JSON(http.StatusOK, dto.ToMonetaryRecordResponse(record))
}

// correctExchangeRate godoc
// @Summary Correct a record's stored exchange rate
// @Tags records
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   record_id path string true "Record ID"
// @Param   rate body dto.CorrectExchangeRateRequest true "New rate"
// @Success 200 {object} dto.MonetaryRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to correct exchange rate"
// @Security BearerAuth
// @Router /organizations/{organization_id}/records/{record_id}/exchange-rate [put]
func (h *monetaryRecordHandler) correctExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	recordID := c.Param("record_id")
	var req dto.CorrectExchangeRateRequest
	if !bindJSON(c, logger, &req, "correct exchange rate") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.recordService.CorrectExchangeRate(c.Request.Context(), organizationID, recordID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "correct exchange rate")
		return
	}

	logger.Info("Record exchange rate corrected", slog.String("record_id", recordID), slog.String("rate", req.ExchangeRate.String()))
	c.JSON(http.StatusOK, dto.ToMonetaryRecordResponse(record))
}

// getMoneySummary godoc
// @Summary Aggregate monetary records
// @Description Sums the live records in native, functional or mix mode and formats the result with the organization's preferences
// @Tags summaries
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   kind query string false "payment, purchase_order_item or contract_amount"
// @Param   projectID query string false "Project ID"
// @Param   mode query string false "native, functional or mix; defaults to the organization's display mode"
// @Success 200 {object} dto.MoneySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 422 {object} map[string]string "A record has no usable exchange rate"
// @Failure 500 {object} map[string]string "Failed to summarize records"
// @Security BearerAuth
// @Router /organizations/{organization_id}/summaries/money [get]
func (h *monetaryRecordHandler) getMoneySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var params dto.MoneySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.aggregationService.SummarizeRecords(c.Request.Context(), organizationID, params.SummaryFilter())
	if err != nil {
		writeServiceError(c, logger, err, "summarize records")
		return
	}
	c.JSON(http.StatusOK, dto.ToMoneySummaryResponse(summary))
}

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

// documentHandler handles quotes, contracts and change orders.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	contractService portssvc.ContractSvc
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, cs portssvc.ContractSvc) *documentHandler {
	return &documentHandler{
		documentService: ds,
		contractService: cs,
	}
}

// registerDocumentRoutes registers document, line item and contract summary routes under an
// organization group.
func registerDocumentRoutes(org *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, contractService portssvc.ContractSvc) {
	h := newDocumentHandler(documentService, contractService)

	documents := org.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.POST("/preview-totals", h.previewTotals)
		documents.GET("/:document_id", h.getDocument)
		documents.DELETE("/:document_id", h.deleteDocument)
		documents.PUT("/:document_id/pricing", h.updatePricing)
		documents.POST("/:document_id/status", h.transitionStatus)
		documents.POST("/:document_id/items", h.addLineItem)
		documents.PUT("/:document_id/items/:item_id", h.updateLineItem)
		documents.DELETE("/:document_id/items/:item_id", h.deleteLineItem)
	}
	org.GET("/contracts/:contract_id/summary", h.getContractSummary)
}

// createDocument godoc
// @Summary Create a quote, contract or change order
// @Description Creates the document with its line items in one transaction. Change orders must reference a live contract.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var req dto.CreateDocumentRequest
	if !bindJSON(c, logger, &req, "create document") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.CreateDocument(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "create document")
		return
	}

	logger.Info("Document created",
		slog.String("document_id", view.Document.Header().DocumentID),
		slog.String("document_type", req.DocumentType))
	c.JSON(http.StatusCreated, dto.ToDocumentViewResponse(view))
}

// listDocuments godoc
// @Summary List documents
// @Description Pages documents newest first. Pass the returned nextToken to fetch the following page.
// @Tags documents
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   type query string false "quote, contract or change_order"
// @Param   status query string false "draft, sent, approved or rejected"
// @Param   parentContractID query string false "Only change orders of this contract"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	docs, next, err := h.documentService.ListDocuments(c.Request.Context(), organizationID, params.DocumentFilter())
	if err != nil {
		writeServiceError(c, logger, err, "list documents")
		return
	}

	nextToken := ""
	if next != nil {
		nextToken = *next
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs, nextToken))
}

// previewTotals godoc
// @Summary Preview document totals
// @Description Runs the totals cascade over unsaved line items without storing anything
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   input body dto.PreviewTotalsRequest true "Line items and percentages"
// @Success 200 {object} dto.PreviewTotalsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/preview-totals [post]
func (h *documentHandler) previewTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewTotalsRequest
	if !bindJSON(c, logger, &req, "preview totals") {
		return
	}

	view := h.documentService.PreviewTotals(c.Request.Context(), dto.ToDomainLineItems(req.LineItems), req.TaxPct, req.DiscountPct)
	c.JSON(http.StatusOK, dto.ToPreviewTotalsResponse(view))
}

// getDocument godoc
// @Summary Get a document with line items and totals
// @Tags documents
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.documentService.GetDocument(c.Request.Context(), c.Param("organization_id"), c.Param("document_id"))
	if err != nil {
		writeServiceError(c, logger, err, "retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentViewResponse(view))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Soft-deletes the document. A contract with live change orders cannot be deleted.
// @Tags documents
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Contract still has change orders"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("organization_id"), documentID, userID); err != nil {
		writeServiceError(c, logger, err, "delete document")
		return
	}

	logger.Info("Document deleted", slog.String("document_id", documentID))
	c.Status(http.StatusNoContent)
}

// updatePricing godoc
// @Summary Update tax and discount
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Param   pricing body dto.UpdatePricingRequest true "Percentages"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input or read-only document"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update pricing"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id}/pricing [put]
func (h *documentHandler) updatePricing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePricingRequest
	if !bindJSON(c, logger, &req, "update pricing") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.UpdatePricing(c.Request.Context(), c.Param("organization_id"), c.Param("document_id"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "update pricing")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentViewResponse(view))
}

// transitionStatus godoc
// @Summary Change a document's status
// @Description Approving a contract captures its original value once
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Param   status body dto.TransitionStatusRequest true "Target status"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Transition not allowed"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Contract value already frozen"
// @Failure 500 {object} map[string]string "Failed to change status"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id}/status [post]
func (h *documentHandler) transitionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")
	var req dto.TransitionStatusRequest
	if !bindJSON(c, logger, &req, "change status") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.TransitionStatus(c.Request.Context(), c.Param("organization_id"), documentID, domain.QuoteStatus(req.Status), userID)
	if err != nil {
		writeServiceError(c, logger, err, "change status")
		return
	}

	logger.Info("Document status changed", slog.String("document_id", documentID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToDocumentViewResponse(view))
}

// addLineItem godoc
// @Summary Add a line item
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Param   item body dto.LineItemRequest true "Line item"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input or read-only document"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to add line item"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id}/items [post]
func (h *documentHandler) addLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LineItemRequest
	if !bindJSON(c, logger, &req, "add line item") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.AddLineItem(c.Request.Context(), c.Param("organization_id"), c.Param("document_id"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "add line item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentViewResponse(view))
}

// updateLineItem godoc
// @Summary Replace a line item
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Param   item_id path string true "Line item ID"
// @Param   item body dto.LineItemRequest true "Line item"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input or read-only document"
// @Failure 404 {object} map[string]string "Document or line item not found"
// @Failure 500 {object} map[string]string "Failed to update line item"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id}/items/{item_id} [put]
func (h *documentHandler) updateLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LineItemRequest
	if !bindJSON(c, logger, &req, "update line item") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.UpdateLineItem(c.Request.Context(), c.Param("organization_id"), c.Param("document_id"), c.Param("item_id"), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "update line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentViewResponse(view))
}

// deleteLineItem godoc
// @Summary Remove a line item
// @Tags documents
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   document_id path string true "Document ID"
// @Param   item_id path string true "Line item ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Read-only document"
// @Failure 404 {object} map[string]string "Document or line item not found"
// @Failure 500 {object} map[string]string "Failed to delete line item"
// @Security BearerAuth
// @Router /organizations/{organization_id}/documents/{document_id}/items/{item_id} [delete]
func (h *documentHandler) deleteLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	view, err := h.documentService.DeleteLineItem(c.Request.Context(), c.Param("organization_id"), c.Param("document_id"), c.Param("item_id"), userID)
	if err != nil {
		writeServiceError(c, logger, err, "delete line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentViewResponse(view))
}

// getContractSummary godoc
// @Summary Get a contract's composite value
// @Description Returns the original, approved, pending, revised and potential values of a contract and its change orders
// @Tags contracts
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   contract_id path string true "Contract ID"
// @Success 200 {object} dto.ContractSummaryResponse
// @Failure 400 {object} map[string]string "Document is not a contract"
// @Failure 404 {object} map[string]string "Contract not found"
// @Failure 500 {object} map[string]string "Failed to summarize contract"
// @Security BearerAuth
// @Router /organizations/{organization_id}/contracts/{contract_id}/summary [get]
func (h *documentHandler) getContractSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view, err := h.contractService.GetContractSummary(c.Request.Context(), c.Param("organization_id"), c.Param("contract_id"))
	if err != nil {
		writeServiceError(c, logger, err, "summarize contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractSummaryResponse(view))
}

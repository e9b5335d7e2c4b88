package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/construction_finance_app/internal/core/ports/services"
	"github.com/SscSPs/construction_finance_app/internal/dto"
	"github.com/SscSPs/construction_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles organizations and their financial preferences.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
	}
}

// registerOrganizationRoutes registers /organizations and returns the per-organization group
// that the record, document and contract routes hang from.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) *gin.RouterGroup {
	h := newOrganizationHandler(organizationService)

	organizations := rg.Group("/organizations")
	organizations.POST("", h.createOrganization)

	organization := organizations.Group("/:organization_id")
	{
		organization.GET("", h.getOrganization)
		organization.PUT("/financial-preferences", h.updateFinancialPreferences)
	}
	return organization
}

// createOrganization godoc
// @Summary Create an organization
// @Description Creates an organization with its functional and reference currencies. Omitted preferences take their defaults.
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create organization"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if !bindJSON(c, logger, &req, "create organization") {
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "create organization")
		return
	}

	logger.Info("Organization created", slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve organization"
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")

	org, err := h.organizationService.GetOrganization(c.Request.Context(), organizationID)
	if err != nil {
		writeServiceError(c, logger, err, "retrieve organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// updateFinancialPreferences godoc
// @Summary Replace financial preferences
// @Description Updates the functional and reference currencies, the current rate, decimal places, display mode and locale
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization_id path string true "Organization ID"
// @Param   preferences body dto.UpdateFinancialPreferencesRequest true "Financial preferences"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to update preferences"
// @Security BearerAuth
// @Router /organizations/{organization_id}/financial-preferences [put]
func (h *organizationHandler) updateFinancialPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("organization_id")
	var req dto.UpdateFinancialPreferencesRequest
	if !bindJSON(c, logger, &req, "update financial preferences") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	org, err := h.organizationService.UpdateFinancialPreferences(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "update financial preferences")
		return
	}

	logger.Info("Financial preferences updated", slog.String("organization_id", organizationID))
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

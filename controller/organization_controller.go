package controller

import (
	"net/http"
	"volunteerhub-backend/middelware"
	"volunteerhub-backend/models"
	"volunteerhub-backend/services"
	"volunteerhub-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// OrganizationController exposes organization profiles over HTTP
type OrganizationController struct {
	service    services.OrganizationServiceInterface
	logger     logger.Logger
	jwtManager *middelware.JWTManager
}

// NewOrganizationController creates a new organization controller
func NewOrganizationController(service services.OrganizationServiceInterface, log logger.Logger, jwtManager *middelware.JWTManager) *OrganizationController {
	return &OrganizationController{
		service:    service,
		logger:     log,
		jwtManager: jwtManager,
	}
}

// List handles GET /api/organizations
// @Summary List all organizations
// @Tags Organizations
// @Produce json
// @Success 200 {object} models.APIResponse "Organizations retrieved"
// @Router /organizations [get]
func (h *OrganizationController) List(c *gin.Context) {
	organizations, err := h.service.ListOrganizations(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to list organizations: %v", err)
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   organizations,
	})
}

// Register handles POST /api/organizations
// @Summary Register an organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body models.RegisterOrganization true "Organization details"
// @Success 201 {object} models.APIResponse "Organization created"
// @Failure 400 {object} models.APIResponse "Organization name already exists"
// @Router /organizations [post]
func (h *OrganizationController) Register(c *gin.Context) {
	var req models.RegisterOrganization
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind organization registration:", err)
		respondBindError(c, err)
		return
	}

	organization, err := h.service.RegisterOrganization(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorf("Failed to register organization: %v", err)
		respondError(c, err, "Failed to register organization")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Organization registered successfully",
		Data:    organization,
	})
}

// Login handles POST /api/organizations/login
// @Summary Organization sign-in
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body models.OrganizationLogin true "Credentials"
// @Success 200 {object} models.APIResponse "Session token and organization"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /organizations/login [post]
func (h *OrganizationController) Login(c *gin.Context) {
	var req models.OrganizationLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	organization, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	token, err := h.jwtManager.GenerateToken(organization)
	if err != nil {
		respondError(c, err, "Failed to issue session token")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data: models.LoginResponse{
			Token:        token,
			Organization: organization,
		},
	})
}

// Me handles GET /api/organizations/me
// @Summary Current organization profile
// @Tags Organizations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organization for the session token"
// @Failure 401 {object} models.APIResponse "Missing or invalid token"
// @Router /organizations/me [get]
func (h *OrganizationController) Me(c *gin.Context) {
	orgID := c.GetString("organization_id")

	organization, err := h.service.GetOrganizationByID(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   organization,
	})
}

// GetByID handles GET /api/organizations/:id
// @Summary Get an organization with opportunities expanded
// @Tags Organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization with expanded opportunities"
// @Failure 404 {object} models.APIResponse "Organization does not exist"
// @Router /organizations/{id} [get]
func (h *OrganizationController) GetByID(c *gin.Context) {
	view, err := h.service.GetOrganizationView(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   view,
	})
}

// Update handles PUT /api/organizations/:id
// @Summary Update organization fields
// @Description Partial update; only fields present in the body are changed.
// @Tags Organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body models.OrganizationPatch true "Fields to update"
// @Success 200 {object} models.APIResponse "Organization updated"
// @Failure 404 {object} models.APIResponse "Organization does not exist"
// @Router /organizations/{id} [put]
func (h *OrganizationController) Update(c *gin.Context) {
	var patch models.OrganizationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	organization, err := h.service.UpdateOrganization(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organization updated successfully",
		Data:    organization,
	})
}

// AttachOpportunity handles POST /api/organizations/:id/opportunities
// @Summary Attach an opportunity to an organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body models.AttachOpportunityRequest true "Opportunity to attach"
// @Success 200 {object} models.APIResponse "Updated organization"
// @Failure 400 {object} models.APIResponse "Opportunity already attached"
// @Failure 404 {object} models.APIResponse "Organization or opportunity does not exist"
// @Router /organizations/{id}/opportunities [post]
func (h *OrganizationController) AttachOpportunity(c *gin.Context) {
	var req models.AttachOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	organization, err := h.service.AttachOpportunity(c.Request.Context(), c.Param("id"), req.OpportunityID)
	if err != nil {
		respondError(c, err, "Failed to attach opportunity")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Opportunity attached successfully",
		Data:    organization,
	})
}

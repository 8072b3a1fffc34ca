package controller

import (
	"net/http"
	"volunteerhub-backend/models"
	"volunteerhub-backend/services"
	"volunteerhub-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// OpportunityController exposes opportunity postings over HTTP
type OpportunityController struct {
	service services.OpportunityServiceInterface
	logger  logger.Logger
}

// NewOpportunityController creates a new opportunity controller
func NewOpportunityController(service services.OpportunityServiceInterface, log logger.Logger) *OpportunityController {
	return &OpportunityController{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/opportunities
// @Summary List all opportunities
// @Tags Opportunities
// @Produce json
// @Success 200 {object} models.APIResponse "Opportunities retrieved"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /opportunities [get]
func (h *OpportunityController) List(c *gin.Context) {
	opportunities, err := h.service.ListOpportunities(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to list opportunities: %v", err)
		respondError(c, err, "Failed to list opportunities")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   opportunities,
	})
}

// ListUrgent handles GET /api/opportunities/urgent
// @Summary List high-urgency opportunities
// @Tags Opportunities
// @Produce json
// @Success 200 {object} models.APIResponse "Up to ten high-urgency opportunities"
// @Router /opportunities/urgent [get]
func (h *OpportunityController) ListUrgent(c *gin.Context) {
	opportunities, err := h.service.ListUrgentOpportunities(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to list urgent opportunities: %v", err)
		respondError(c, err, "Failed to list urgent opportunities")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   opportunities,
	})
}

// ListByLocation handles GET /api/opportunities/location/:city
// @Summary List opportunities in a city
// @Description Exact, case-sensitive city match. Unknown cities yield an empty list.
// @Tags Opportunities
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.APIResponse "Opportunities in the city"
// @Router /opportunities/location/{city} [get]
func (h *OpportunityController) ListByLocation(c *gin.Context) {
	city := c.Param("city")

	opportunities, err := h.service.ListOpportunitiesByLocation(c.Request.Context(), city)
	if err != nil {
		h.logger.Errorf("Failed to list opportunities in %s: %v", city, err)
		respondError(c, err, "Failed to list opportunities by location")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   opportunities,
	})
}

// GetByID handles GET /api/opportunities/:id
// @Summary Get opportunity details
// @Tags Opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} models.APIResponse "Opportunity retrieved"
// @Failure 404 {object} models.APIResponse "Opportunity does not exist"
// @Router /opportunities/{id} [get]
func (h *OpportunityController) GetByID(c *gin.Context) {
	id := c.Param("id")

	opportunity, err := h.service.GetOpportunityByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get opportunity")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   opportunity,
	})
}

// Create handles POST /api/opportunities
// @Summary Post a new opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param request body models.CreateOpportunityRequest true "Opportunity details"
// @Success 201 {object} models.APIResponse "Opportunity created"
// @Failure 400 {object} models.APIResponse "Missing required fields"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /opportunities [post]
func (h *OpportunityController) Create(c *gin.Context) {
	var req models.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind opportunity request:", err)
		respondBindError(c, err)
		return
	}

	opportunity, err := h.service.CreateOpportunity(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorf("Failed to create opportunity: %v", err)
		respondError(c, err, "Failed to create opportunity")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Opportunity created successfully",
		Data:    opportunity,
	})
}

// Update handles PUT /api/opportunities/:id
// @Summary Update opportunity fields
// @Description Partial update; only fields present in the body are changed.
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param request body models.OpportunityPatch true "Fields to update"
// @Success 200 {object} models.APIResponse "Opportunity updated"
// @Failure 404 {object} models.APIResponse "Opportunity does not exist"
// @Router /opportunities/{id} [put]
func (h *OpportunityController) Update(c *gin.Context) {
	id := c.Param("id")

	var patch models.OpportunityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	opportunity, err := h.service.UpdateOpportunity(c.Request.Context(), id, &patch)
	if err != nil {
		respondError(c, err, "Failed to update opportunity")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Opportunity updated successfully",
		Data:    opportunity,
	})
}

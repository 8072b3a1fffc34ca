package controller

import (
	"net/http"
	"volunteerhub-backend/models"
	"volunteerhub-backend/services"
	"volunteerhub-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// VolunteerController exposes the volunteer participation ledger over HTTP
type VolunteerController struct {
	service services.VolunteerServiceInterface
	logger  logger.Logger
}

// NewVolunteerController creates a new volunteer controller
func NewVolunteerController(service services.VolunteerServiceInterface, log logger.Logger) *VolunteerController {
	return &VolunteerController{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/volunteers
// @Summary List all volunteers
// @Tags Volunteers
// @Produce json
// @Success 200 {object} models.APIResponse "Volunteers retrieved"
// @Router /volunteers [get]
func (h *VolunteerController) List(c *gin.Context) {
	volunteers, err := h.service.ListVolunteers(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to list volunteers: %v", err)
		respondError(c, err, "Failed to list volunteers")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   volunteers,
	})
}

// Register handles POST /api/volunteers
// @Summary Register a volunteer
// @Description Creates a volunteer on first sign-in through the external identity provider
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param request body models.RegisterVolunteer true "Volunteer details"
// @Success 201 {object} models.APIResponse "Volunteer registered"
// @Failure 400 {object} models.APIResponse "Email already registered"
// @Router /volunteers [post]
func (h *VolunteerController) Register(c *gin.Context) {
	var req models.RegisterVolunteer
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind volunteer registration:", err)
		respondBindError(c, err)
		return
	}

	volunteer, err := h.service.RegisterVolunteer(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorf("Failed to register volunteer: %v", err)
		respondError(c, err, "Failed to register volunteer")
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "Volunteer registered successfully",
		Data:    volunteer,
	})
}

// CheckEmail handles POST /api/volunteers/check-email
// @Summary Probe whether a volunteer email is registered
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param request body models.CheckEmailRequest true "Email to probe"
// @Success 200 {object} models.APIResponse "Minimal volunteer reference"
// @Failure 404 {object} models.APIResponse "Email is not registered"
// @Router /volunteers/check-email [post]
func (h *VolunteerController) CheckEmail(c *gin.Context) {
	var req models.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ref, err := h.service.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to check email")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   ref,
	})
}

// GetByID handles GET /api/volunteers/:id
// @Summary Get a volunteer document
// @Tags Volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} models.APIResponse "Volunteer retrieved"
// @Failure 404 {object} models.APIResponse "Volunteer does not exist"
// @Router /volunteers/{id} [get]
func (h *VolunteerController) GetByID(c *gin.Context) {
	volunteer, err := h.service.GetVolunteerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get volunteer")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   volunteer,
	})
}

// EditProfile handles PUT /api/volunteers/:id/profile
// @Summary Edit volunteer profile fields
// @Description Partial update. Omitted fields stay untouched; present-but-empty values overwrite.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body models.VolunteerProfilePatch true "Fields to update"
// @Success 200 {object} models.APIResponse "Profile updated"
// @Failure 404 {object} models.APIResponse "Volunteer does not exist"
// @Router /volunteers/{id}/profile [put]
func (h *VolunteerController) EditProfile(c *gin.Context) {
	var patch models.VolunteerProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	volunteer, err := h.service.EditProfile(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Profile updated successfully",
		Data:    volunteer,
	})
}

// RecordCompletion handles POST /api/volunteers/:id/history
// @Summary Record a completed opportunity
// @Description Appends a history entry and increments the counter for the opportunity's city
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body models.RecordCompletionRequest true "Completed opportunity"
// @Success 200 {object} models.APIResponse "Updated volunteer document"
// @Failure 404 {object} models.APIResponse "Volunteer or opportunity does not exist"
// @Router /volunteers/{id}/history [post]
func (h *VolunteerController) RecordCompletion(c *gin.Context) {
	var req models.RecordCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	volunteer, err := h.service.RecordCompletion(c.Request.Context(), c.Param("id"), req.OpportunityID)
	if err != nil {
		h.logger.Errorf("Failed to record completion: %v", err)
		respondError(c, err, "Failed to record completion")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Completion recorded successfully",
		Data:    volunteer,
	})
}

// GetProfile handles GET /api/volunteers/profile/:id
// @Summary Get the aggregate volunteer profile
// @Description Profile fields plus total event count and history with opportunities resolved
// @Tags Volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} models.APIResponse "Aggregate profile"
// @Failure 404 {object} models.APIResponse "Volunteer does not exist"
// @Router /volunteers/profile/{id} [get]
func (h *VolunteerController) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   profile,
	})
}

// Leaderboard handles GET /api/volunteers/leaderboard/:city
// @Summary City leaderboard
// @Description Top volunteers for a city ranked by completion count, highest first
// @Tags Volunteers
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.APIResponse "Ranked entries, possibly empty"
// @Router /volunteers/leaderboard/{city} [get]
func (h *VolunteerController) Leaderboard(c *gin.Context) {
	city := c.Param("city")

	entries, err := h.service.Leaderboard(c.Request.Context(), city)
	if err != nil {
		h.logger.Errorf("Failed to build leaderboard for %s: %v", city, err)
		respondError(c, err, "Failed to build leaderboard")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   entries,
	})
}

// ListByLocation handles GET /api/volunteers/location/:city
// @Summary List volunteers active in a city
// @Tags Volunteers
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.APIResponse "Volunteers with completions in the city"
// @Router /volunteers/location/{city} [get]
func (h *VolunteerController) ListByLocation(c *gin.Context) {
	volunteers, err := h.service.ListVolunteersByLocation(c.Request.Context(), c.Param("city"))
	if err != nil {
		respondError(c, err, "Failed to list volunteers by location")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   volunteers,
	})
}

// ListByCategory handles GET /api/volunteers/category/:category
// @Summary List volunteers by preferred category
// @Tags Volunteers
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} models.APIResponse "Volunteers preferring the category"
// @Router /volunteers/category/{category} [get]
func (h *VolunteerController) ListByCategory(c *gin.Context) {
	volunteers, err := h.service.ListVolunteersByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err, "Failed to list volunteers by category")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   volunteers,
	})
}

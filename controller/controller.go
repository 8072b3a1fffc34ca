package controller

import (
	"context"
	"errors"
	"net/http"
	"volunteerhub-backend/dal"
	"volunteerhub-backend/middelware"
	"volunteerhub-backend/models"
	"volunteerhub-backend/repository"
	"volunteerhub-backend/services"
	"volunteerhub-backend/utils/logger"
	"volunteerhub-backend/utils/swagger"

	"github.com/gin-gonic/gin"
)

// Controller bundles all entity controllers
type Controller struct {
	Opportunity  *OpportunityController
	Volunteer    *VolunteerController
	Organization *OrganizationController
}

// NewController wires the database client, repositories, services and
// controllers
func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) (*Controller, error) {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepository(dbclient, cfg, log)
	svc := services.NewService(repos, cfg, log)
	jwtManager := middelware.NewJWTManager(cfg, log)

	return &Controller{
		Opportunity:  NewOpportunityController(svc.Opportunity, log),
		Volunteer:    NewVolunteerController(svc.Volunteer, log),
		Organization: NewOrganizationController(svc.Organization, log, jwtManager),
	}, nil
}

// RegisterRoutes sets up middleware and the REST surface on the engine
func (c *Controller) RegisterRoutes(cfg *models.Config, r *gin.Engine, log logger.Logger) {
	logging := middelware.NewLoggingMiddleware(log)
	cors := middelware.NewCORSMiddleware(cfg)

	r.Use(logging.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(cors.CORS())

	// Swagger UI and spec
	r.GET("/swagger", swagger.Serve(swagger.Config{
		Title:         cfg.AppName,
		SwaggerDocURL: "/swagger/doc.json",
	}))
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.File("./docs/swagger.json")
	})

	v1 := r.Group(cfg.BasePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": cfg.AppVersion,
			"service": cfg.AppName,
		})
	})

	opportunities := v1.Group("/opportunities")
	opportunities.GET("", c.Opportunity.List)
	opportunities.GET("/urgent", c.Opportunity.ListUrgent)
	opportunities.GET("/location/:city", c.Opportunity.ListByLocation)
	opportunities.GET("/:id", c.Opportunity.GetByID)
	opportunities.POST("", c.Opportunity.Create)
	opportunities.PUT("/:id", c.Opportunity.Update)

	volunteers := v1.Group("/volunteers")
	volunteers.GET("", c.Volunteer.List)
	volunteers.POST("", c.Volunteer.Register)
	volunteers.POST("/check-email", c.Volunteer.CheckEmail)
	volunteers.GET("/:id", c.Volunteer.GetByID)
	volunteers.PUT("/:id/profile", c.Volunteer.EditProfile)
	volunteers.POST("/:id/history", c.Volunteer.RecordCompletion)
	volunteers.GET("/profile/:id", c.Volunteer.GetProfile)
	volunteers.GET("/leaderboard/:city", c.Volunteer.Leaderboard)
	volunteers.GET("/location/:city", c.Volunteer.ListByLocation)
	volunteers.GET("/category/:category", c.Volunteer.ListByCategory)

	organizations := v1.Group("/organizations")
	organizations.GET("", c.Organization.List)
	organizations.POST("", c.Organization.Register)
	organizations.POST("/login", c.Organization.Login)
	organizations.GET("/me", c.Organization.jwtManager.AuthMiddleware(), c.Organization.Me)
	organizations.GET("/:id", c.Organization.GetByID)
	organizations.PUT("/:id", c.Organization.Update)
	organizations.POST("/:id/opportunities", c.Organization.AttachOpportunity)
}

// respondError maps application errors onto the response envelope:
// NotFound -> 404, Conflict -> 400, bad credentials -> 401, anything
// else -> 500.
func respondError(c *gin.Context, err error, fallback string) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, models.APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
			Error: &models.APIError{
				Type: "NotFound",
			},
		})
		return
	}

	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: conflict.Error(),
			Error: &models.APIError{
				Type: "Conflict",
			},
		})
		return
	}

	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
			Error: &models.APIError{
				Type: "Unauthorized",
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.APIResponse{
		Status:  "error",
		Code:    http.StatusInternalServerError,
		Message: fallback,
		Error: &models.APIError{
			Type:    "StoreFailure",
			Details: err.Error(),
		},
	})
}

// respondBindError reports a request-body validation failure
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: err.Error(),
		},
	})
}

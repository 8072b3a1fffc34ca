package middelware

import (
	"net/http"
	"strings"
	"time"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager issues and validates organization session tokens. Volunteer
// identity comes from the external identity provider and is verified
// upstream; only organization-owned mutations go through this manager.
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
	}
}

// GenerateToken issues a session token for an organization
func (j *JWTManager) GenerateToken(organization *models.Organization) (string, error) {
	claims := models.OrgClaims{
		OrganizationID: organization.ID,
		OrgName:        organization.OrgName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   organization.ID,
			Issuer:    j.Config.AppName,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign session token: %v", err)
		return "", err
	}

	j.Logger.Debugf("Issued session token for organization %s", organization.ID)
	return tokenString, nil
}

// ValidateToken parses and verifies a session token string
func (j *JWTManager) ValidateToken(tokenString string) (*models.OrgClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.OrgClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(j.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.OrgClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// AuthMiddleware guards organization-owned routes. On success the
// organization id and name are stored on the request context.
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Authorization header required",
			})
			return
		}

		claims, err := j.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			j.Logger.Warnf("Rejected session token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("organization_id", claims.OrganizationID)
		c.Set("org_name", claims.OrgName)
		c.Next()
	}
}

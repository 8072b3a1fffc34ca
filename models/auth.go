package models

import "github.com/golang-jwt/jwt/v5"

// OrgClaims are the JWT claims carried by an organization session token
type OrgClaims struct {
	OrganizationID string `json:"organization_id"`
	OrgName        string `json:"org_name"`
	jwt.RegisteredClaims
}

// LoginResponse is returned by the organization login endpoint
type LoginResponse struct {
	Token        string        `json:"token"`
	Organization *Organization `json:"organization"`
}

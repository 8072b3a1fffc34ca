// Package docs registers the OpenAPI document with swag so tooling that
// resolves specs through swag.ReadDoc sees the same document the HTTP
// handler serves from disk.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerSpec string

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5001",
	BasePath:         "/api",
	Title:            "VolunteerHub Backend API",
	Description:      "Volunteer opportunity marketplace backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerSpec,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

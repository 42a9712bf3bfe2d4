// Package schema instruments OpenAPI schema.
package schema

import (
	"github.com/swaggest/rest/openapi"
)

// SetupOpenAPICollector sets up API documentation collector.
func SetupOpenAPICollector(apiSchema *openapi.Collector) {
	apiSchema.SpecSchema().SetTitle("Tasks Journal API")
	apiSchema.SpecSchema().SetDescription("This service manages to-do tasks, optionally scoped to anonymous users.")
	apiSchema.SpecSchema().SetVersion("1.0.0")
}

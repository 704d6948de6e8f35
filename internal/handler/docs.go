package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// specPath is where the OpenAPI document lives in the repository; it is read
// per request so spec edits show up without a rebuild.
const specPath = "api/openapi.yaml"

// Swagger UI shell loaded from a CDN and pointed at /openapi.yaml, so no UI
// assets get bundled into the binary.
//
//go:embed swagger.html
var swaggerHTML string

// RegisterDocs mounts the documentation endpoints at the root:
//   - GET /openapi.yaml: the raw articles-API spec from specPath
//   - GET /docs: Swagger UI rendering of that spec
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", serveSpec)
	r.GET("/docs", serveSwaggerUI)
}

func serveSpec(c *gin.Context) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to read openapi spec: %v", err)
		return
	}
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}

func serveSwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
}

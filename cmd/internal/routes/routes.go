package routes

import (
	"brdocs/cmd/internal/http/handler"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts every API route on e. metricsHandler is served at /metrics.
func Register(e *echo.Echo, documents *handler.DefaultDocumentRoute, formats *handler.DefaultFormatRoute, metricsHandler http.Handler) {
	// Documents
	e.GET("/api/cpf/:cpf", documents.GetCPF)
	e.GET("/api/cnpj/:cnpj", documents.GetCNPJ)
	e.POST("/api/cnpj/check-digits", documents.CalculateCheckDigits)
	e.POST("/api/documents/validate", documents.ValidateDocument)
	e.POST("/api/documents/normalize", documents.NormalizeDocument)
	e.POST("/api/documents/validate/batch", documents.ValidateBatch)

	// Formatting
	e.POST("/api/format", formats.Format)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

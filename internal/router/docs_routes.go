package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"

	"github.com/obedtech/catalog-api/docs"
)

// RegisterDocs serves the interactive Swagger UI under /docs and the raw
// OpenAPI document at /swagger.json.
func RegisterDocs(e *echo.Echo) {
	e.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	e.GET("/docs/*", echoSwagger.EchoWrapHandler(
		echoSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		echoSwagger.DocExpansion("list"),
	))
	e.GET("/swagger.json", func(c echo.Context) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "documentation unavailable"})
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
	})
}

// Package router wires the HTTP surface: public form and catalog endpoints,
// the authenticated admin API, and operational probes.
package router

import (
	"net/http"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/handlers"
	"github.com/akshayraj-industries/website-backend/internal/auth"
	"github.com/akshayraj-industries/website-backend/middleware"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything SetupRouter needs.
type Dependencies struct {
	Config          *config.Config
	TokenIssuer     *auth.TokenIssuer
	InquiryHandler  *handlers.InquiryHandler
	ProductHandler  *handlers.ProductHandler
	SettingsHandler *handlers.SettingsHandler
	AdminHandler    *handlers.AdminHandler
	HealthHandler   *handlers.HealthHandler
}

// SetupRouter configures and returns the Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(&deps.Config.Server))

	// Form endpoints must answer a GET (or anything non-POST) with 405, not
	// fall through to the 404 handler.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, types.NewError("Invalid request method"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.NewError("Not found"))
	})

	r.GET("/health", deps.HealthHandler.Liveness)
	r.GET("/health/liveness", deps.HealthHandler.Liveness)
	r.GET("/health/readiness", deps.HealthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("/contact", deps.InquiryHandler.SubmitContact)
			inquiries.POST("/dealer", deps.InquiryHandler.SubmitPartner)
		}

		v1.GET("/products", deps.ProductHandler.List)
		v1.GET("/products/:id", deps.ProductHandler.Get)
		v1.GET("/settings", deps.SettingsHandler.List)

		admin := v1.Group("/admin")
		{
			admin.POST("/login", deps.AdminHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.RequireAdmin(deps.TokenIssuer))
			{
				protected.GET("/inquiries", deps.AdminHandler.ListInquiries)
				protected.GET("/inquiries/:id", deps.AdminHandler.GetInquiry)
				protected.PATCH("/inquiries/:id/read", deps.AdminHandler.MarkInquiryRead)
				protected.DELETE("/inquiries/:id", deps.AdminHandler.DeleteInquiry)

				protected.POST("/products", deps.ProductHandler.Create)
				protected.PUT("/products/:id", deps.ProductHandler.Update)
				protected.PATCH("/products/:id", deps.ProductHandler.Update)
				protected.DELETE("/products/:id", deps.ProductHandler.Delete)
				protected.POST("/products/:id/image", deps.ProductHandler.UploadImage)

				protected.GET("/settings", deps.SettingsHandler.ListAll)
				protected.PUT("/settings", deps.SettingsHandler.Upsert)
			}
		}
	}

	return r
}

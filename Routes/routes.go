package Routes

import (
	"MedicalSuite/Controllers"
	"MedicalSuite/Middleware"
	"MedicalSuite/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine, app *Controllers.App) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", app.Login)
	}

	// Page routes. The landing page bounces signed-in visitors to the
	// dashboard; every other page bounces anonymous visitors back to the
	// landing page.
	router.GET("/", Middleware.LandingRedirect(app.Sessions), servePage)
	pages := router.Group("/")
	pages.Use(Middleware.PageGate(app.Sessions))
	{
		pages.GET("/dashboard", servePage)
		pages.GET("/doctor-search", servePage)
		pages.GET("/quote-module", servePage)
		pages.GET("/profile", servePage)
		pages.GET("/marketing-plan", servePage)
		pages.GET("/images", servePage)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.SessionAuth(app.Sessions))
	{
		// User-related routes
		authorized.GET("/user", app.CurrentUser)
		authorized.POST("/logout", app.Logout)
		authorized.GET("/quotas", app.GetQuotas)

		// Doctor search routes
		authorized.GET("/Locate", app.Locate)
		authorized.POST("/SearchDoctors", app.SearchDoctors)

		// Quote-related routes
		authorized.GET("/FetchOfferings", app.FetchOfferings)
		authorized.POST("/GetQuote", app.GetQuote)

		// Marketing plan routes
		authorized.POST("/GenerateMarketingPlan", app.GenerateMarketingPlan)

		// Image transform routes
		authorized.POST("/TransformRoom", app.TransformRoom)

		// Support chat routes
		authorized.POST("/SendChat", app.SendChat)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.POST("/ExportQuotePDF", app.ExportQuotePDF)
		authorized.POST("/ExportQuoteExcel", app.ExportQuoteExcel)
		authorized.POST("/ExportMarketingPlanPDF", app.ExportMarketingPlanPDF)
	}

	// Static file serving
	router.Static("/assets", "./Static/assets")
}

// servePage hands every page route the SPA shell; the client router takes it
// from there.
func servePage(c *gin.Context) {
	c.File("./Static/index.html")
}

package routes

import (
	"github.com/adiwira/kasirpos/internal/config"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/adiwira/kasirpos/internal/presentation/http/handler"
	"github.com/adiwira/kasirpos/internal/presentation/http/middleware"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/adiwira/kasirpos/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Cart      *handler.CartHandler
	Checkout  *handler.CheckoutHandler
	Sales     *handler.SalesHandler
	Report    *handler.ReportHandler
	Backup    *handler.BackupHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.Error(c, apperror.ErrInternalServer)
	}))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateCfg := middleware.DefaultRateLimiterConfig()
	if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
		rateCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
		rateCfg.BurstSize = deps.Cfg.RateLimit.Requests
	}
	rateLimiter := middleware.NewUserRateLimiter(rateCfg)

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/auth/guest", h.Auth.LoginGuest)

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.JWTManager))
		authed.Use(rateLimiter.Middleware())

		registerAuthRoutes(authed, h)
		registerInventoryRoutes(authed, h)
		registerCheckoutRoutes(authed, h)
		registerSalesRoutes(authed, h)
		registerAdminRoutes(authed, h)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers) {
	auth := rg.Group("/auth")
	{
		auth.GET("/me", h.Auth.Me)
		auth.POST("/logout", h.Auth.Logout)
	}
}

func registerInventoryRoutes(rg *gin.RouterGroup, h *Handlers) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/:name", h.Inventory.Get)

		// Catalog mutations are admin only
		admin := inventory.Group("")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("", h.Inventory.Add)
			admin.PATCH("/:name/price", h.Inventory.UpdatePrice)
			admin.PATCH("/:name/stock", h.Inventory.AdjustStock)
			admin.DELETE("/:name", h.Inventory.Remove)
		}
	}
}

func registerCheckoutRoutes(rg *gin.RouterGroup, h *Handlers) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PATCH("/items/:name/qty", h.Cart.SetQuantity)
		cart.PATCH("/items/:name/note", h.Cart.SetNote)
		cart.DELETE("/items/:name", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/config", h.Checkout.GetConfig)
		checkout.PUT("/config", h.Checkout.SetConfig)
		checkout.GET("/preview", h.Checkout.Preview)
		checkout.POST("/pay", h.Checkout.Pay)
	}
}

func registerSalesRoutes(rg *gin.RouterGroup, h *Handlers) {
	sales := rg.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.GET("/:id/receipt", h.Sales.Receipt)
		sales.POST("/:id/void", middleware.RequireRole("admin", "kasir"), h.Sales.Void)
	}

	reports := rg.Group("/reports")
	reports.Use(middleware.RequireRole("admin", "kasir"))
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/sales.csv", h.Report.ExportCSV)
		reports.GET("/sales.xlsx", h.Report.ExportXLSX)
	}

	rg.GET("/dashboard", h.Dashboard.Stats)
}

func registerAdminRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/settings", h.Settings.Get)
	rg.GET("/settings/theme", h.Settings.GetTheme)
	rg.PUT("/settings/theme", h.Settings.SetTheme)

	admin := rg.Group("")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.PUT("/settings", h.Settings.Update)

		admin.GET("/users", h.Auth.ListUsers)
		admin.POST("/users", h.Auth.CreateUser)
		admin.PATCH("/users/:username/password", h.Auth.UpdatePassword)
		admin.DELETE("/users/:username", h.Auth.DeleteUser)

		admin.GET("/backup", h.Backup.Export)
		admin.POST("/restore", h.Backup.Restore)
	}
}

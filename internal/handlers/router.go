package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/harentsoaR/carewave-api/docs"
	"github.com/harentsoaR/carewave-api/internal/middleware"
	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

type RouterConfig struct {
	Tokens         *utils.TokenManager
	CORSOrigins    []string
	// TrustedProxies are the only peers whose X-Forwarded-For is honoured
	// when resolving the client address. Nil trusts none.
	TrustedProxies []string
	LoginRateLimit int
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		respondError(c, http.StatusInternalServerError, msgInternal)
	}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.NoRoute(h.NotFound)

	r.GET("/health", h.Health)
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)
	api.POST("/auth/login", loginLimiter.Middleware(), h.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.Tokens)) // Protect all remaining /api routes
	admin := middleware.RequireRole(models.RoleAdministrator)

	auth := protected.Group("/auth")
	{
		auth.GET("/verify", h.VerifyToken)
		auth.GET("/me", h.GetCurrentUser)
		auth.GET("/users", admin, h.ListUsers)
		auth.POST("/users", admin, h.CreateUser)
	}

	patients := protected.Group("/patients")
	{
		patients.GET("", h.GetPatients)
		patients.GET("/search", h.SearchPatients)
		patients.GET("/:id", h.GetPatient)
		patients.GET("/:id/with-appointments", h.GetPatientWithAppointments)
		patients.GET("/:id/appointments", h.GetPatientAppointments)
		patients.GET("/:id/billing", h.GetPatientBilling)
		patients.POST("", h.CreatePatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}

	appointments := protected.Group("/appointments")
	{
		appointments.GET("", h.GetAppointments)
		appointments.GET("/today", h.GetTodayAppointments)
		appointments.GET("/upcoming", h.GetUpcomingAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}

	staff := protected.Group("/staff")
	{
		staff.GET("", h.GetStaff)
		staff.GET("/:id", h.GetStaffMember)
		staff.POST("", admin, h.CreateStaffMember)
		staff.PUT("/:id", admin, h.UpdateStaffMember)
		staff.DELETE("/:id", admin, h.DeleteStaffMember)
	}

	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.GetInventory)
		inventory.GET("/low-stock", h.GetLowStock)
		inventory.GET("/:id", h.GetInventoryItem)
		inventory.POST("", h.CreateInventoryItem)
		inventory.PUT("/:id", h.UpdateInventoryItem)
		inventory.DELETE("/:id", h.DeleteInventoryItem)
	}

	billing := protected.Group("/billing")
	{
		billing.GET("", h.GetBillingRecords)
		billing.GET("/export", h.ExportBilling)
		billing.GET("/:id", h.GetBillingRecord)
		billing.GET("/:id/invoice", h.GetInvoice)
		billing.POST("/:id/email", h.EmailInvoice)
		billing.POST("", h.CreateBillingRecord)
		billing.PUT("/:id", h.UpdateBillingRecord)
		billing.DELETE("/:id", h.DeleteBillingRecord)
	}

	todos := protected.Group("/todos")
	{
		todos.GET("", h.GetTodos)
		todos.GET("/:id", h.GetTodo)
		todos.POST("", h.CreateTodo)
		todos.PUT("/:id", h.UpdateTodo)
		todos.DELETE("/:id", h.DeleteTodo)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/report", h.GetDashboardReport)
	}

	return r
}

package router

import (
	"net/http"

	"github.com/chandu2812/budget-plan/internal/config"
	"github.com/chandu2812/budget-plan/internal/handler"
	"github.com/chandu2812/budget-plan/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "Budget Plan - Login",
		})
	})

	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "Budget Plan - Login",
		})
	})

	r.GET("/register", func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"title": "Budget Plan - Register",
		})
	})

	r.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"title": "Budget Plan - Dashboard",
		})
	})

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// register/login do not require auth
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost, cfg.App.DemoLogin)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything below needs a live session
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", authHandler.GetMe)

	dataHandler := handler.NewDataHandler(db)
	protected.GET("/data", dataHandler.GetData)

	incomeHandler := handler.NewIncomeHandler(db)
	protected.POST("/income", incomeHandler.SetIncome)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.POST("/budget", budgetHandler.UpsertBudget)
	protected.POST("/budget/delete", budgetHandler.DeleteBudget)

	expenseHandler := handler.NewExpenseHandler(db)
	protected.POST("/expense", expenseHandler.AddExpense)

	goalHandler := handler.NewGoalHandler(db)
	protected.POST("/goal", goalHandler.AddGoal)
	protected.POST("/goal/delete", goalHandler.DeleteGoal)
	protected.POST("/saving", goalHandler.AddSaving)

	notificationHandler := handler.NewNotificationHandler(db)
	protected.GET("/notifications", notificationHandler.ListNotifications)

	analyticsHandler := handler.NewAnalyticsHandler(db)
	protected.GET("/analytics/trends", analyticsHandler.GetTrends)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

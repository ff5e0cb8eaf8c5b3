package router

import (
	"net/http"
	"time"

	"github.com/yu086868-ui/iFinance-app/internal/config"
	"github.com/yu086868-ui/iFinance-app/internal/handler"
	"github.com/yu086868-ui/iFinance-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  "SQLite",
		})
	})

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/auth/me", handler.GetMe)

	recordHandler := handler.NewRecordHandler(db, cfg.App.PageSize)
	protected.POST("/records", recordHandler.CreateRecord)
	protected.GET("/records", recordHandler.ListRecords)
	protected.DELETE("/records/:id", recordHandler.DeleteRecord)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.GET("/budgets", budgetHandler.ListBudgets)
	protected.POST("/budgets", budgetHandler.SetBudget)
	protected.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	analyticsHandler := handler.NewAnalyticsHandler(db)
	protected.GET("/analytics/overview", analyticsHandler.GetOverview)
	protected.GET("/budgets/usage", analyticsHandler.GetBudgetUsage)

	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

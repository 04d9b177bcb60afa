package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-soilhealth/config"
	"go-soilhealth/controllers"
	"go-soilhealth/middleware"
	"go-soilhealth/storage"
	"go-soilhealth/utils"
)

// SetupRouter 配置所有路由
func SetupRouter(db *sql.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	// 创建控制器实例
	authController := controllers.NewAuthController(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	analysisController := controllers.NewAnalysisController(storage.NewSQLStore(db), logger)

	// 公共路由
	public := r.Group("/")
	{
		public.GET("/health", func(c *gin.Context) {
			utils.Success(c, gin.H{"status": "ok"})
		})

		// 用户认证相关路由
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)

		// 无需保存的即时分析
		public.POST("/soil/analyze", analysisController.Analyze)
		public.POST("/soil/texture", analysisController.ClassifyTexture)
	}

	// 需要认证的路由
	protected := r.Group("/soil/analyses")
	protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	{
		protected.POST("", analysisController.CreateAnalysis)
		protected.GET("", analysisController.ListAnalyses)
		protected.GET("/search", analysisController.SearchAnalyses)
		protected.GET("/stats", analysisController.Stats)
		protected.GET("/:id", analysisController.GetAnalysis)
		protected.GET("/:id/compare/:otherId", analysisController.CompareAnalyses)
		protected.GET("/:id/report", analysisController.DownloadReport)
	}

	return r
}

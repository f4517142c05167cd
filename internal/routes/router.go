package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/student_support/internal/handlers"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 汇总各模块的处理器
type Handlers struct {
	Intake    *handlers.IntakeHandler
	Dashboard *handlers.DashboardHandler
	Share     *handlers.ShareHandler
}

// CORSConfig 允许前端入口地址跨域访问
func CORSConfig(frontendOrigin string) cors.Config {
	return cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, h Handlers, frontendOrigin string) {
	router.Use(cors.New(CORSConfig(frontendOrigin)))

	// Swagger UI: /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1") // 创建 /api/v1 路由组
	{
		apiV1.GET("/healthz", handlers.Healthz)
		SetupIntakeRoutes(apiV1, h.Intake)
		SetupDashboardRoutes(apiV1, h.Dashboard)
		SetupShareRoutes(apiV1, h.Share)
	}
}

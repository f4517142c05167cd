package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/student_support/configs"
	_ "github.com/student_support/docs"
	"github.com/student_support/internal/handlers"
	"github.com/student_support/internal/repositories"
	"github.com/student_support/internal/routes"
	"github.com/student_support/internal/services"
	"github.com/student_support/pkg/email"
	"github.com/student_support/pkg/qrcode"
	"github.com/student_support/pkg/utils"
)

// @title 学生心理求助服务 API
// @version 1.0
// @description 匿名求助提交、辅导员面板查询与入口二维码接口。
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configs.LoadConfig()
	cfg := configs.AppConfig
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("初始化存储失败: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("关闭存储失败: %v", err)
		}
	}()

	if err := utils.RegisterValidators(); err != nil {
		log.Fatalf("注册校验规则失败: %v", err)
	}

	var notifier email.Notifier = email.NopNotifier{}
	if smtpCfg, err := email.LoadSMTPConfigFromEnv(); err != nil {
		log.Printf("信息: 未配置 SMTP，危机提醒邮件不会发送 (%v)", err)
	} else {
		notifier = email.NewSMTPNotifier(smtpCfg)
	}

	frontend := strings.TrimRight(cfg.FrontendBaseURL, "/")
	submissionRepo := repositories.NewSubmissionRepository(store, repositories.WithKeyPrefix(cfg.StorageKeyPrefix))
	draftRepo := repositories.NewDraftRepository(store, cfg.StorageKeyPrefix)

	intakeService := services.NewIntakeService(draftRepo, submissionRepo, notifier,
		services.WithDashboardURL(qrcode.JoinPath(frontend, "/dashboard")))
	caseService := services.NewCaseService(submissionRepo)

	loc := handlers.NewLocalizer(cfg.DefaultLanguage)
	router := gin.Default()
	routes.SetupRoutes(router, routes.Handlers{
		Intake:    handlers.NewIntakeHandler(intakeService, loc),
		Dashboard: handlers.NewDashboardHandler(caseService, loc),
		Share:     handlers.NewShareHandler(frontend, loc),
	}, frontend)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Server starting on port %s...", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

package app

import (
	"context"
	"learning_path_backend/internal/config"
	"learning_path_backend/internal/controller"
	"learning_path_backend/internal/repository"
	"learning_path_backend/internal/service"
	"learning_path_backend/internal/util"
	"learning_path_backend/pkg/logger"
	"learning_path_backend/pkg/monitoring"
	"learning_path_backend/pkg/security"
	"learning_path_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services

	stopAutoSave  chan struct{}
	shutdownHooks []func()
}

type repositories struct {
	progress *repository.ProgressRepository
	chat     *repository.ChatRepository
	studyLog *repository.StudyLogRepository
	snapshot *repository.SnapshotRepository
}

type services struct {
	progress  *service.ProgressService
	responder *service.ResponderService
	chat      *service.ChatService
	dashboard *service.DashboardService
	export    *service.ExportService
	snapshot  *service.SnapshotService
}

type controllers struct {
	course    *controller.CourseController
	chat      *controller.ChatController
	dashboard *controller.DashboardController
	snapshot  *controller.SnapshotController
	health    *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		progress: repository.NewProgressRepository(),
		chat:     repository.NewChatRepository(cfg.Chat.MaxHistory),
		studyLog: repository.NewStudyLogRepository(),
		snapshot: repository.NewSnapshotRepository(cfg.Snapshot.Path),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.progress = service.NewProgressService(repos.progress)
	s.responder = service.NewResponderService()
	s.chat = service.NewChatService(repos.chat, s.responder, time.Duration(cfg.Chat.TypingDelayMs)*time.Millisecond)
	s.dashboard = service.NewDashboardService(s.progress, repos.studyLog)
	s.export = service.NewExportService(s.progress)
	s.snapshot = service.NewSnapshotService(repos.snapshot, repos.progress, repos.chat)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		course:    controller.NewCourseController(s.progress, s.export),
		chat:      controller.NewChatController(s.chat),
		dashboard: controller.NewDashboardController(s.dashboard),
		snapshot:  controller.NewSnapshotController(s.snapshot),
		health:    controller.NewHealthController(repos.snapshot),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startAutoSave 定时把当前状态落盘，间隔由配置决定
func (a *App) startAutoSave(s *services, cfg *config.Config) {
	if !cfg.Snapshot.AutoSave || cfg.Snapshot.SaveInterval <= 0 {
		return
	}

	a.stopAutoSave = make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Snapshot.SaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.snapshot.Save(util.DefaultSessionID); err != nil {
					logger.Log.Error("auto save failed", zap.Error(err))
				}
			case <-a.stopAutoSave:
				return
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories(cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos)

	// 启动即恢复状态，文件缺失或损坏时回到默认种子
	if seeded := services.snapshot.Load(); seeded {
		logger.Log.Info("progress store seeded with default courses")
	}

	// 仅种子模式：写一份默认快照后交还控制权
	if cfg.SeedOnly {
		if err := services.snapshot.Save(util.DefaultSessionID); err != nil {
			logger.Log.Fatal("failed to write seed snapshot", zap.Error(err))
		}
		return app
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learning-path-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.onShutdown(func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		})
	}

	app.registerRoutes(router, controllers)

	app.startAutoSave(services, cfg)

	return app
}

func (a *App) onShutdown(hook func()) {
	a.shutdownHooks = append(a.shutdownHooks, hook)
}

// Reload 应用热更新后的配置，目前只有打字延迟对后续请求即时生效
func (a *App) Reload(cfg *config.Config) {
	a.Config.Chat = cfg.Chat
	a.services.chat.TypingDelay = time.Duration(cfg.Chat.TypingDelayMs) * time.Millisecond
	logger.Log.Info("config reloaded", zap.Int("typing_delay_ms", cfg.Chat.TypingDelayMs))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.stopAutoSave != nil {
		close(a.stopAutoSave)
	}

	// 退出前保存一次状态
	if a.Config.Snapshot.AutoSave {
		if err := a.services.snapshot.Save(util.DefaultSessionID); err != nil {
			logger.Log.Error("final snapshot save failed", zap.Error(err))
		}
	}

	for _, hook := range a.shutdownHooks {
		hook()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

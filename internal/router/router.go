package router

import (
	"time"

	"github.com/Central-IR/contas-receber/internal/config"
	"github.com/Central-IR/contas-receber/internal/handler"
	"github.com/Central-IR/contas-receber/internal/infra"
	"github.com/Central-IR/contas-receber/internal/middleware"
	"github.com/Central-IR/contas-receber/internal/repository"
	"github.com/Central-IR/contas-receber/internal/service"
	"github.com/Central-IR/contas-receber/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, freteCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute)) // 600 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	contaRepo := repository.NewContaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	contaSvc := service.NewContaService(contaRepo)
	dashboardSvc := service.NewDashboardService(contaRepo, rdb)

	// Worker dispatcher — injected into handlers that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	contasH := handler.NewContasHandler(contaSvc, dispatcher)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	sincronizacaoH := handler.NewSincronizacaoHandler(dispatcher)
	relatorioH := handler.NewRelatorioHandler(contaRepo, cfg.ReportStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, freteCB))

	// Everything under /api requires the session token
	api := r.Group("/api", middleware.SessionAuth(cfg.SessionJWTSecret))
	{
		contas := api.Group("/contas")
		{
			contas.GET("", contasH.Listar)
			contas.POST("", contasH.Criar)
			contas.GET("/:id", contasH.ObterPorID)
			contas.PUT("/:id", contasH.Atualizar)
			contas.PATCH("/:id", contasH.RegistrarPagamento)
			contas.DELETE("/:id", contasH.Excluir)
			contas.POST("/:id/observacoes", contasH.AdicionarObservacao)
		}

		api.GET("/dashboard", dashboardH.Totais)
		api.POST("/sincronizar", sincronizacaoH.Sincronizar)
		api.GET("/relatorio", relatorioH.Gerar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

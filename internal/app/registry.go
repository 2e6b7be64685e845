package app

import (
	"database/sql"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/attendance"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/config"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/costrollup"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/labourrate"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/rbac"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/rbac/infra"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/wage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	labourRateRepo := labourrate.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	wageRepo := wage.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(infra.DefaultPolicies)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	costRollupService := costrollup.NewService(ledgerRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo)
	labourRateService := labourrate.NewService(db, labourRateRepo)
	ledgerService := ledger.NewServiceWithOutbox(db, ledgerRepo, outboxRepo, costRollupService)
	wageService := wage.NewServiceWithOutbox(
		db,
		wageRepo,
		attendanceRepo,
		labourRateRepo,
		ledgerService,
		outboxRepo,
		costRollupService,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	labourRateHandler := labourrate.NewHandler(labourRateService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	wageHandler := wage.NewHandler(wageService)
	costRollupHandler := costrollup.NewHandler(costRollupService)

	// --- Routes Registration ---
	router.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)

	idempotency := middleware.Idempotency(rdb, idempotencyTTL)

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RequireActor(),
		middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
		middleware.ContextLogger(zap.L()),
	)
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		labourrate.RegisterRoutes(api, labourRateHandler, rbacService)
		wage.RegisterRoutes(api, wageHandler, rbacService, idempotency, costRollupHandler.WeeklyCost)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService, idempotency)
	}

	return nil
}

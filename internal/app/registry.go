package app

import (
	"database/sql"

	"go-comp/internal/bonus"
	"go-comp/internal/config"
	"go-comp/internal/employee"
	"go-comp/internal/engine"
	"go-comp/internal/messaging/kafka"
	"go-comp/internal/middleware"
	"go-comp/internal/payrollrun"
	"go-comp/internal/salarystructure"
	"go-comp/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	salaryRepo := salarystructure.NewRepository(gormDB)
	payrollRunRepo := payrollrun.NewRepository(gormDB)

	// --- Services ---
	directory := employee.NewDirectory(employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, cfg.Engine.EmployeeCacheTTL, logger)
	bonusService := bonus.NewService(db, bonusRepo, directory, outboxRepo, bonus.Options{
		DefaultCurrency:    cfg.Engine.DefaultCurrency,
		StrictPlaceholders: cfg.Engine.StrictPlaceholders,
	}, logger)
	salaryService := salarystructure.NewService(db, salaryRepo, directory, logger)
	payrollRunService := payrollrun.NewService(db, payrollRunRepo, counterRepo, directory, salaryService, outboxRepo, logger)
	engineService := engine.NewService(logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	bonusHandler := bonus.NewHandler(bonusService, logger)
	salaryHandler := salarystructure.NewHandler(salaryService, logger)
	payrollRunHandler := payrollrun.NewHandler(payrollRunService, logger)
	engineHandler := engine.NewHandler(engineService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.Tenant(), middleware.ContextLogger(logger))
	{
		employee.RegisterRoutes(api, employeeHandler)
		bonus.RegisterRoutes(api, bonusHandler, rdb, logger)
		salarystructure.RegisterRoutes(api, salaryHandler)
		payrollrun.RegisterRoutes(api, payrollRunHandler, rdb, logger)
		engine.RegisterRoutes(api, engineHandler)
	}
}

package app

import (
	"database/sql"

	"go-leavehub/internal/adjustment"
	"go-leavehub/internal/balance"
	"go-leavehub/internal/calendar"
	"go-leavehub/internal/employee"
	"go-leavehub/internal/leave"
	"go-leavehub/internal/messaging/kafka"
	"go-leavehub/internal/middleware"
	"go-leavehub/internal/policy"
	"go-leavehub/internal/shared/counter"
	"go-leavehub/internal/supervisor"
	"go-leavehub/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	calendarRepo := calendar.NewRepository(gormDB)
	policyRepo := policy.NewRepository(gormDB)
	supervisorRepo := supervisor.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	adjustmentRepo := adjustment.NewRepository(gormDB)
	transferRepo := transfer.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Core engines ---
	resolver := calendar.NewResolver(calendarRepo)
	// the leave repository doubles as the ledger's usage source
	ledger := transfer.NewLedger(transferRepo, policyRepo, resolver, leaveRepo)

	// --- Services ---
	calendarService := calendar.NewService(db, calendarRepo)
	policyService := policy.NewService(db, policyRepo)
	supervisorService := supervisor.NewService(db, supervisorRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, policyRepo, ledger, outboxRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, policyRepo, supervisorRepo, resolver, outboxRepo)
	adjustmentService := adjustment.NewService(db, adjustmentRepo, employeeRepo, supervisorRepo)
	balanceService := balance.NewService(employeeRepo, policyRepo, leaveRepo, transferRepo, supervisorRepo, resolver, rdb)

	// --- Handlers ---
	calendarHandler := calendar.NewHandler(calendarService)
	policyHandler := policy.NewHandler(policyService)
	supervisorHandler := supervisor.NewHandler(supervisorService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	adjustmentHandler := adjustment.NewHandler(adjustmentService)
	transferHandler := transfer.NewHandler(ledger)
	balanceHandler := balance.NewHandler(balanceService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		calendar.RegisterRoutes(api, calendarHandler)
		policy.RegisterRoutes(api, policyHandler)
		supervisor.RegisterRoutes(api, supervisorHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
		adjustment.RegisterRoutes(api, adjustmentHandler)
		transfer.RegisterRoutes(api, transferHandler)
		balance.RegisterRoutes(api, balanceHandler)
	}

	return nil
}

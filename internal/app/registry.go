package app

import (
	"database/sql"

	"go-staffhub/internal/auth"
	"go-staffhub/internal/bank"
	"go-staffhub/internal/department"
	"go-staffhub/internal/designation"
	"go-staffhub/internal/employee"
	"go-staffhub/internal/messaging/kafka"
	"go-staffhub/internal/middleware"
	"go-staffhub/internal/region"
	"go-staffhub/internal/storage"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Platform ---
	tokens := token.NewManager(token.ConfigFromEnv())
	uploader, err := storage.NewCloudinaryUploader("employee-profiles")
	if err != nil {
		return err
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	bankRepo := bank.NewRepository(gormDB)
	regionRepo := region.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(employeeRepo, tokens)
	employeeService := employee.NewService(
		db,
		employeeRepo,
		departmentRepo,
		designationRepo,
		bankRepo,
		regionRepo,
		uploader,
		outboxRepo,
	)
	departmentService := department.NewService(db, departmentRepo, rdb)
	designationService := designation.NewService(db, designationRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	departmentHandler := department.NewHandler(departmentService)
	designationHandler := designation.NewHandler(designationService)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokens)
		employee.RegisterRoutes(api, employeeHandler, tokens, logger)
		department.RegisterRoutes(api, departmentHandler, tokens)
		designation.RegisterRoutes(api, designationHandler, tokens)
	}

	return nil
}

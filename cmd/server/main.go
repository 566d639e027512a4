package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	employeeapp "github.com/staffdir/backend/internal/application/employee"
	identityapp "github.com/staffdir/backend/internal/application/identity"
	"github.com/staffdir/backend/internal/application/organization"
	"github.com/staffdir/backend/internal/infrastructure/auth"
	"github.com/staffdir/backend/internal/infrastructure/config"
	"github.com/staffdir/backend/internal/infrastructure/logger"
	"github.com/staffdir/backend/internal/infrastructure/persistence"
	"github.com/staffdir/backend/internal/interfaces/http/handler"
	"github.com/staffdir/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting staffdir backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	positionRepo := persistence.NewGormPositionRepository(db.DB)
	areaRepo := persistence.NewGormAreaRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Auth infrastructure. Redis backs logout revocation; without it the
	// in-memory blacklist still works for a single instance.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() { _ = redisBlacklist.Close() }()
	}

	// Application services
	importService := employeeapp.NewImportService(employeeRepo, departmentRepo, positionRepo, areaRepo, cfg.Import, log)
	exportService := employeeapp.NewExportService(employeeRepo, departmentRepo, positionRepo, areaRepo, log)
	employeeService := employeeapp.NewService(employeeRepo, departmentRepo, positionRepo, areaRepo, log)
	departmentService := organization.NewDepartmentService(departmentRepo, log)
	positionService := organization.NewPositionService(positionRepo, log)
	areaService := organization.NewAreaService(areaRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)

	engine := router.New(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Handlers: router.Handlers{
			System:   handler.NewSystemHandler(db, version),
			Auth:     handler.NewAuthHandler(authService),
			Employee: handler.NewEmployeeHandler(employeeService),
			Import:   handler.NewEmployeeImportHandler(importService, exportService, cfg.Import, log),
			Dept:     handler.NewDepartmentHandler(departmentService),
			Position: handler.NewPositionHandler(positionService),
			Area:     handler.NewAreaHandler(areaService),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

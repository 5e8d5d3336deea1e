package main

import (
	"log"
	"net/http"
	"os"

	_ "coursehub/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"coursehub/internal/auth"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/handler"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
	"coursehub/internal/storage"
)

// @title CourseHub API
// @version 1.0
// @description Course marketplace API: admin-managed courses, user purchases, JWT authentication per principal type.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// best effort; env vars win over .env
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Purchase{},
			&model.Course{},
			&model.Admin{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models. This also creates the unique indexes
	// that back the email and purchase uniqueness invariants.
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.Course{},
		&model.Purchase{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	imageStore, err := storage.NewS3Store(storage.S3Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		UseSSL:        cfg.S3UseSSL,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("image storage init: %v", err)
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	purchaseRepo := repository.NewPurchaseRepository(gormDB)

	// Initialize auth components: one token service per principal variant
	adminTokens := auth.NewTokenService(auth.VariantAdmin, cfg.AdminJWTSecret, cfg.TokenTTL)
	userTokens := auth.NewTokenService(auth.VariantUser, cfg.UserJWTSecret, cfg.TokenTTL)

	// Initialize services
	adminAuthService := service.NewAuthService(adminRepo, adminTokens)
	userAuthService := service.NewAuthService(userRepo, userTokens)
	courseService := service.NewCourseService(courseRepo, imageStore, cacheClient)
	purchaseService := service.NewPurchaseService(purchaseRepo, courseRepo)

	// Initialize handlers
	adminHandler := handler.NewAdminHandler(adminAuthService, courseService, cfg)
	userHandler := handler.NewUserHandler(userAuthService, purchaseService, cfg)
	courseHandler := handler.NewCourseHandler(courseService, purchaseService)

	// Register routes
	router.Register(
		e,
		cfg,
		adminHandler,
		userHandler,
		courseHandler,
		auth.Guard(adminTokens),
		auth.Guard(userTokens),
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

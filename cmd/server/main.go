package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"health-records-service/internal/api/handlers"
	"health-records-service/internal/api/middleware"
	"health-records-service/internal/auth"
	"health-records-service/internal/config"
	"health-records-service/internal/crypto"
	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"
	"health-records-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := log.New(os.Stdout, "[health-records] ", log.LstdFlags)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("database error: %v", err)
	}

	cipher, err := crypto.NewEnvelopeCipher(cfg.EncryptionKey)
	if err != nil {
		logger.Fatalf("encryption key error: %v", err)
	}

	verifier := auth.NewTokenVerifier(cfg.JWTSecret)
	policy := auth.DefaultPolicy()

	userRepo := repositories.NewUserRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	recordRepo := repositories.NewMedicalRecordRepository(db)

	loader := auth.NewPrincipalLoader(userRepo)
	authenticate := middleware.Authenticate(verifier, loader, logger)

	authService := services.NewAuthService(userRepo, verifier, cfg.TokenTTL, logger)
	patientService := services.NewPatientService(patientRepo, logger)
	recordService := services.NewRecordService(recordRepo, patientRepo, userRepo, cipher, logger)

	app := fiber.New()
	app.Use(helmet.New())
	app.Use(cors.New()) // in production, configure allowed origins
	app.Use(fiberlogger.New())

	// Serve the static front-end from /public.
	app.Static("/", "./public")

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Healthcare cloud storage API running"})
	})

	handlers.RegisterAuthRoutes(app, handlers.NewAuthHandler(authService, logger))
	handlers.RegisterPatientRoutes(app, handlers.NewPatientHandler(patientService, logger), authenticate, policy)
	handlers.RegisterRecordRoutes(app, handlers.NewRecordHandler(recordService, logger), authenticate, policy)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatalf("server error: %v", err)
		}
	}()
	logger.Printf("server listening on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Println("shutting down...")
	if err := app.Shutdown(); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
}

// openDatabase opens the postgres connection through lib/pq and wraps it
// with GORM, then brings the schema up to date.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// uuid_generate_v4() defaults on the entity primary keys.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Patient{},
		&entities.MedicalRecord{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

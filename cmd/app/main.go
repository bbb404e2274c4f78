package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"courier/cmd"
	"courier/internal/adapters/out/postgres/carrierrepo"
	"courier/internal/adapters/out/postgres/orderrepo"
	"courier/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if jobManager := app.CreateJobManager(logger); jobManager != nil {
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// a missing .env file is fine in containerized deployments
	_ = godotenv.Load(".env")

	expMinutes, err := strconv.Atoi(envOrDefault("JWT_EXP_MINUTES", "60"))
	if err != nil {
		log.Fatalf("JWT_EXP_MINUTES must be an integer: %v", err)
	}

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         mustEnv("DB_HOST"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         mustEnv("DB_USER"),
		DBPassword:     mustEnv("DB_PASSWORD"),
		DBName:         mustEnv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:      mustEnv("JWT_SECRET"),
		JWTExpMinutes:  expMinutes,
		AutoAssignCron: os.Getenv("AUTO_ASSIGN_CRON"),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&carrierrepo.CarrierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

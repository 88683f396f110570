package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"grabngo/cmd"
	_ "grabngo/docs"
	adapterhttp "grabngo/internal/adapters/in/http"
	"grabngo/internal/adapters/out/postgres/itemrepo"
	"grabngo/internal/adapters/out/postgres/orderrepo"
	"grabngo/internal/adapters/out/redisstats"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title						GrabnGo Delivery API
// @version					1.0
// @description				Order lifecycle, driver assignment, and catalog API for the GrabnGo delivery backend.
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	createDatabaseIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB := mustConnectToDatabase(configs)
	migrateDatabase(gormDB)

	stats, err := redisstats.NewRedisStatsRepository(configs.RedisAddr, configs.RedisPass, configs.RedisDB)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer stats.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, stats, logger)

	if configs.SeedCatalog {
		seedCatalog(&app, logger)
	}

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:   goDotEnvVariable("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     envInt("REDIS_DB", 0),
		OpenAPIPath: envDefault("OPENAPI_PATH", "api/openapi.yml"),
		SeedCatalog: envBool("SEED_CATALOG", true),

		PendingOrdersIntervalSeconds:  envInt("PENDING_ORDERS_INTERVAL_SECONDS", 3),
		DriverOrdersIntervalSeconds:   envInt("DRIVER_ORDERS_INTERVAL_SECONDS", 3),
		CustomerOrdersIntervalSeconds: envInt("CUSTOMER_ORDERS_INTERVAL_SECONDS", 5),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return value
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return value
}

func createDatabaseIfNotExists(host, port, user, password, dbName, sslMode string) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking database existence: %v", err)
	}

	if !exists {
		_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", dbName))
		if err != nil {
			log.Fatalf("Error creating database %s: %v", dbName, err)
		}
	}
}

func mustConnectToDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func seedCatalog(app *cmd.CompositionRoot, logger *slog.Logger) {
	handler := app.CreateSeedCatalogCommandHandler()

	seeded, err := handler.Handle(context.Background())
	if err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}
	if seeded > 0 {
		logger.Info("Catalog seeded", "items", seeded)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	validator, err := adapterhttp.NewOpenAPIValidationMiddleware(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	e.Use(validator)

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateItemCommandHandler(),
		app.CreateGetItemsQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetDriverOrdersQueryHandler(),
		app.CreateGetDriverStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"repuestos/cmd"
	httpadapter "repuestos/internal/adapters/in/http"
	"repuestos/internal/adapters/out/postgres/catalogrepo"
	"repuestos/internal/adapters/out/postgres/orderrepo"
	"repuestos/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = migrateDatabase(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = seedCatalog(db); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	staleDraftAfterHours, err := strconv.Atoi(goDotEnvVariable("STALE_DRAFT_AFTER_HOURS"))
	if err != nil {
		staleDraftAfterHours = 48
	}

	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		StaleDraftAfterHours: staleDraftAfterHours,
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&catalogrepo.CustomerDTO{},
		&catalogrepo.ProductDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers START 1").Error
}

// seedCatalog loads a starter set of customers and products on first boot so
// the API is usable against an empty database. Existing rows are left alone.
func seedCatalog(db *gorm.DB) error {
	var repo ports.CatalogRepository = catalogrepo.NewGormCatalogRepository(db)
	existing, err := repo.ListProducts(context.Background())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	customers := []catalogrepo.CustomerDTO{
		{ID: "CUST-001", Name: "Autopartes Rivera"},
		{ID: "CUST-002", Name: "Taller Gomez"},
		{ID: "CUST-003", Name: "Repuestos del Norte"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	products := []catalogrepo.ProductDTO{
		{ID: "PROD-001", Code: "FLT-OIL-204", Name: "Oil filter", BasePrice: decimal.RequireFromString("9.99")},
		{ID: "PROD-002", Code: "BAT-12V-60A", Name: "Battery 12V 60Ah", BasePrice: decimal.RequireFromString("120.50")},
		{ID: "PROD-003", Code: "BRK-PAD-310", Name: "Brake pad set", BasePrice: decimal.RequireFromString("45.00")},
		{ID: "PROD-004", Code: "SPK-PLG-NGK", Name: "Spark plug", BasePrice: decimal.RequireFromString("7.25")},
	}
	return db.Create(&products).Error
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListCustomersQueryHandler(),
		app.CreateListProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"thesis-progress-dashboard/app/repository"
	"thesis-progress-dashboard/app/repository/appsscript"
	repoMongo "thesis-progress-dashboard/app/repository/mongodb"
	repoPostgre "thesis-progress-dashboard/app/repository/postgresql"
	"thesis-progress-dashboard/app/service"
	"thesis-progress-dashboard/app/store"
	"thesis-progress-dashboard/config"
	"thesis-progress-dashboard/database"
	"thesis-progress-dashboard/route"
)

func main() {

	// 1. Load .env file
	config.LoadEnv()

	// 2. Pilih sumber data
	source, err := buildSource()
	if err != nil {
		log.Fatalf("Setup sumber data gagal: %v", err)
	}

	// 3. Setup Fiber app + services
	app := fiber.New()
	st := store.New()
	dashboardService := service.NewDashboardService(source, st)
	reportService := service.NewReportService(st)

	// 4. Setup route
	route.SetupRoutes(app, dashboardService, reportService)

	// 5. Muat data awal. Gagal di sini tidak fatal; dashboard jalan
	// dengan data kosong sampai /refresh berhasil.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := dashboardService.LoadData(loadCtx); err != nil {
		log.Printf("Gagal memuat data awal: %v", err)
	}
	cancelLoad()

	// 6. Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("Server running on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

// buildSource wires the record source selected by DATA_SOURCE:
// appsscript (default), postgres, atau mongo.
func buildSource() (repository.RecordSource, error) {
	switch kind := config.Get("DATA_SOURCE", "appsscript"); kind {
	case "appsscript":
		url := os.Getenv("APPS_SCRIPT_URL")
		if url == "" {
			return nil, fmt.Errorf("APPS_SCRIPT_URL belum diisi")
		}
		return appsscript.NewSource(url), nil
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL belum diisi")
		}
		if err := database.ConnectPostgres(dsn); err != nil {
			return nil, err
		}
		return repoPostgre.NewStudentSource(database.PostgresDB), nil
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			return nil, fmt.Errorf("MONGO_URI belum diisi")
		}
		if err := database.ConnectMongo(uri, config.Get("MONGO_DB", "thesis_dashboard")); err != nil {
			return nil, err
		}
		return repoMongo.NewStudentSource(database.MongoDB), nil
	default:
		return nil, fmt.Errorf("DATA_SOURCE tidak dikenali: %s", kind)
	}
}

package main

import (
	"context"
	"log"

	"subhub-be/internal/bootstrap"
	"subhub-be/internal/config"
	"subhub-be/internal/server"
	"subhub-be/internal/tracer"
	"subhub-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Receipt Consumer...")
		if err := container.ReceiptService.Consume(context.Background()); err != nil {
			log.Printf("Background Receipt Consumer Error: %v", err)
		}
	}()

	go func() {
		log.Println("Background: Starting Billing Event Consumer...")
		if err := container.BillingEventService.Consume(context.Background()); err != nil {
			log.Printf("Background Billing Event Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"subhub-be/internal/bootstrap"
	"subhub-be/internal/config"
	"subhub-be/internal/model"
	"subhub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Batch entrypoint for cron: runs the billing cycle for one business or for
// every registered business.
func main() {
	var (
		businessFlag = flag.String("business", "", "business id to bill (default: all businesses)")
		dateFlag     = flag.String("date", "", "run date as YYYY-MM-DD (default: today)")
	)
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	today := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			color.Red("Invalid -date: %v", err)
			os.Exit(1)
		}
		today = parsed
	}

	container := bootstrap.NewContainer(db, cfg)
	ctx := context.Background()

	var businessIds []uuid.UUID
	if *businessFlag != "" {
		id, err := uuid.Parse(*businessFlag)
		if err != nil {
			color.Red("Invalid -business: %v", err)
			os.Exit(1)
		}
		businessIds = append(businessIds, id)
	} else {
		var businesses []model.Business
		if err := db.WithContext(ctx).Find(&businesses).Error; err != nil {
			color.Red("Failed to list businesses: %v", err)
			os.Exit(1)
		}
		for _, b := range businesses {
			businessIds = append(businessIds, b.Id)
		}
	}

	color.Cyan("🚀 Billing run for %s (%d businesses)\n", today.Format("2006-01-02"), len(businessIds))

	totalProcessed := 0
	totalFailed := 0
	for _, id := range businessIds {
		res, err := container.BillingService.RunBillingCycle(ctx, id, today)
		if err != nil {
			color.Red("Business %s: %v", id, err)
			totalFailed++
			continue
		}
		color.Green("Business %s: processed=%d failed=%d", id, res.Processed, res.Failed)
		totalProcessed += res.Processed
		totalFailed += res.Failed
	}

	color.Cyan("\n✅ Done. Payments recorded: %d, failures: %d", totalProcessed, totalFailed)
	if totalFailed > 0 {
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"
	"time"

	"subhub-be/internal/model"
	"subhub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds one demo business with three plans, three customers and a mix of
// active, due and canceled subscriptions so the dashboard has data to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🌱 Seeding demo data\n")

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	business := model.Business{
		Id:           uuid.New(),
		Name:         "Acme SaaS",
		OwnerEmail:   "owner@acme.test",
		PasswordHash: string(hash),
	}
	if err := db.Create(&business).Error; err != nil {
		color.Red("Failed to create business: %v", err)
		os.Exit(1)
	}
	color.Green("Business: %s (%s)", business.Name, business.OwnerEmail)

	plans := []model.Plan{
		{Id: uuid.New(), BusinessId: business.Id, Name: "Basic", Price: decimal.RequireFromString("9.99"), BillingInterval: "monthly"},
		{Id: uuid.New(), BusinessId: business.Id, Name: "Pro", Price: decimal.RequireFromString("29.99"), BillingInterval: "monthly"},
		{Id: uuid.New(), BusinessId: business.Id, Name: "Enterprise", Price: decimal.RequireFromString("299.00"), BillingInterval: "yearly"},
	}
	if err := db.Create(&plans).Error; err != nil {
		color.Red("Failed to create plans: %v", err)
		os.Exit(1)
	}
	color.Green("Plans: Basic, Pro, Enterprise")

	customers := []model.Customer{
		{Id: uuid.New(), BusinessId: business.Id, FullName: "Ada Lovelace", Email: "ada@example.test"},
		{Id: uuid.New(), BusinessId: business.Id, FullName: "Alan Turing", Email: "alan@example.test"},
		{Id: uuid.New(), BusinessId: business.Id, FullName: "Grace Hopper", Email: "grace@example.test"},
	}
	if err := db.Create(&customers).Error; err != nil {
		color.Red("Failed to create customers: %v", err)
		os.Exit(1)
	}
	color.Green("Customers: %d", len(customers))

	today := time.Now()
	monthAgo := today.AddDate(0, 0, -30)
	yesterday := today.AddDate(0, 0, -1)

	canceledAt := datatypes.Date(yesterday)
	subscriptions := []model.Subscription{
		{
			// Active, not yet due.
			Id: uuid.New(), CustomerId: customers[0].Id, PlanId: plans[0].Id,
			Status:    "active",
			StartDate: datatypes.Date(today), NextBillingDate: datatypes.Date(today.AddDate(0, 0, 30)),
		},
		{
			// Active and due: the next billing run charges it.
			Id: uuid.New(), CustomerId: customers[1].Id, PlanId: plans[1].Id,
			Status:    "active",
			StartDate: datatypes.Date(monthAgo), NextBillingDate: datatypes.Date(yesterday),
		},
		{
			// Canceled this month: shows up in churn.
			Id: uuid.New(), CustomerId: customers[2].Id, PlanId: plans[2].Id,
			Status:    "canceled",
			StartDate: datatypes.Date(monthAgo), NextBillingDate: datatypes.Date(monthAgo.AddDate(0, 0, 365)),
			CancellationDate: &canceledAt,
		},
	}
	if err := db.Create(&subscriptions).Error; err != nil {
		color.Red("Failed to create subscriptions: %v", err)
		os.Exit(1)
	}
	color.Green("Subscriptions: %d (1 active, 1 due, 1 canceled)", len(subscriptions))

	color.Cyan("\n✅ Seed complete. Login with owner@acme.test / demo-password")
}

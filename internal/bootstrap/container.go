package bootstrap

import (
	"log"
	"time"

	"subhub-be/internal/config"
	"subhub-be/internal/controller"
	"subhub-be/internal/pkg/logger"
	"subhub-be/internal/pkg/mailer"
	"subhub-be/internal/repository/unitofwork"
	"subhub-be/internal/service"
	pkgNats "subhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	PlanController         controller.IPlanController
	CustomerController     controller.ICustomerController
	SubscriptionController controller.ISubscriptionController
	MetricsController      controller.IMetricsController
	BillingController      controller.IBillingController

	// Background services (exposed for main.go to run)
	ReceiptService      service.IReceiptService
	BillingEventService service.IBillingEventService

	// Services reused by the CLI entrypoints
	BillingService service.IBillingService
	MetricsService service.IMetricsService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// The billing audit trail goes to its own file so charge history survives
	// log rotation of the main application log.
	billingLogger := logger.NewIsolatedLogger(cfg.App.BillingLogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure. Billing runs proceed without it and
	// only skip the cross-process notifications.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	var natsSub service.EventSubscriber
	if sub, err := pkgNats.NewSubscriber(cfg.App.NatsURL); err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		natsSub = sub
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory)
	planService := service.NewPlanService(uowFactory)
	customerService := service.NewCustomerService(uowFactory)

	metricsService := service.NewMetricsService(
		uowFactory,
		time.Duration(cfg.Billing.MetricsCacheTTLSeconds)*time.Second,
		cfg.Billing.StrictChurnWindow,
	)

	subscriptionService := service.NewSubscriptionService(uowFactory, metricsService, natsPub)
	billingService := service.NewBillingService(uowFactory, metricsService, pubSub, natsPub, billingLogger)
	receiptService := service.NewReceiptService(pubSub, emailService, cfg.Billing.ReceiptEmails)
	billingEventService := service.NewBillingEventService(natsSub, billingLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		PlanController:         controller.NewPlanController(planService),
		CustomerController:     controller.NewCustomerController(customerService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		MetricsController:      controller.NewMetricsController(metricsService),
		BillingController:      controller.NewBillingController(billingService),

		ReceiptService:      receiptService,
		BillingEventService: billingEventService,

		BillingService: billingService,
		MetricsService: metricsService,
		Logger:         sysLogger,
	}
}

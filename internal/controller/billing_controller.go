package controller

import (
	"time"

	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/pkg/serverutils"
	"subhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	GetPayments(ctx *fiber.Ctx) error
}

type billingController struct {
	service service.IBillingService
}

func NewBillingController(service service.IBillingService) IBillingController {
	return &billingController{service: service}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/run", c.Run)
	h.Get("/payments", c.GetPayments)
}

// Run triggers one billing cycle for the authenticated business. An optional
// ?date=YYYY-MM-DD overrides the run date for backfills and testing.
func (c *billingController) Run(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	today := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperrors.NewValidation("date", "must be YYYY-MM-DD")
		}
		today = parsed
	}

	res, err := c.service.RunBillingCycle(ctx.Context(), businessId, today)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Billing cycle completed", res))
}

func (c *billingController) GetPayments(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListPayments(ctx.Context(), businessId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get payments", res))
}

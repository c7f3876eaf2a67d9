package controller

import (
	"time"

	"subhub-be/internal/pkg/serverutils"
	"subhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMetricsController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type metricsController struct {
	service service.IMetricsService
}

func NewMetricsController(service service.IMetricsService) IMetricsController {
	return &metricsController{service: service}
}

func (c *metricsController) RegisterRoutes(r fiber.Router) {
	dash := r.Group("/dashboard")
	dash.Use(serverutils.JwtMiddleware)
	dash.Get("", c.Dashboard)

	api := r.Group("/api/v1")
	api.Use(serverutils.JwtMiddleware)
	api.Get("/metrics", c.Metrics)
}

func (c *metricsController) Dashboard(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ComputeMetrics(ctx.Context(), businessId, time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

// Metrics returns the raw metrics object without the response envelope. This
// shape is consumed by external monitoring integrations, so it stays flat.
func (c *metricsController) Metrics(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ComputeMetrics(ctx.Context(), businessId, time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

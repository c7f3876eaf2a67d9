package controller

import (
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/serverutils"
	"subhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/cancel", c.Cancel)
	// DELETE is an alias for cancel; subscriptions are never hard deleted.
	h.Delete(":id", c.Cancel)
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	var req dto.SubscriptionCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSubscription(ctx.Context(), businessId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", res))
}

func (c *subscriptionController) Show(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSubscription(ctx.Context(), businessId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscription", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CancelSubscription(ctx.Context(), businessId, id, time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription canceled", res))
}

func (c *subscriptionController) GetAll(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSubscriptions(ctx.Context(), businessId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all subscriptions", res))
}

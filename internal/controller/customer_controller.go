package controller

import (
	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/serverutils"
	"subhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
}

func NewCustomerController(service service.ICustomerService) ICustomerController {
	return &customerController{service: service}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	var req dto.CustomerCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateCustomer(ctx.Context(), businessId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Customer created", res))
}

func (c *customerController) Show(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetCustomer(ctx.Context(), businessId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customer", res))
}

func (c *customerController) Update(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req dto.CustomerUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateCustomer(ctx.Context(), businessId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Customer updated", res))
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteCustomer(ctx.Context(), businessId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Customer deleted", nil))
}

func (c *customerController) GetAll(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListCustomers(ctx.Context(), businessId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all customers", res))
}

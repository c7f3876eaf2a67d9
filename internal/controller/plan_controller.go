package controller

import (
	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/pkg/serverutils"
	"subhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type planController struct {
	service service.IPlanService
}

func NewPlanController(service service.IPlanService) IPlanController {
	return &planController{service: service}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plans")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func pathID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation("id", "must be a uuid")
	}
	return id, nil
}

func (c *planController) Create(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	var req dto.PlanCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePlan(ctx.Context(), businessId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *planController) Show(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetPlan(ctx.Context(), businessId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get plan", res))
}

func (c *planController) Update(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req dto.PlanUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdatePlan(ctx.Context(), businessId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *planController) Delete(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeletePlan(ctx.Context(), businessId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Plan deleted", nil))
}

func (c *planController) GetAll(ctx *fiber.Ctx) error {
	businessId, err := serverutils.BusinessID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListPlans(ctx.Context(), businessId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all plans", res))
}

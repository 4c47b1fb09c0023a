package controller

import (
	"github.com/gofiber/fiber/v2"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/pkg/serverutils"
	"fashion-buddy-be/internal/service"
)

type ITryOnController interface {
	RegisterRoutes(r fiber.Router)
	TryOn(ctx *fiber.Ctx) error
}

type tryOnController struct {
	service service.ITryOnService
}

func NewTryOnController(service service.ITryOnService) ITryOnController {
	return &tryOnController{service: service}
}

func (c *tryOnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tryon")
	h.Post("/", c.TryOn)
}

func (c *tryOnController) TryOn(ctx *fiber.Ctx) error {
	var req dto.TryOnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.TryOn(ctx.Context(), req.UserId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    res,
	})
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/service"
)

type ICleanupController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
}

type cleanupController struct {
	imageService service.IImageService
}

func NewCleanupController(imageService service.IImageService) ICleanupController {
	return &cleanupController{imageService: imageService}
}

func (c *cleanupController) RegisterRoutes(r fiber.Router) {
	r.Post("/cleanup", c.Run)
}

func (c *cleanupController) Run(ctx *fiber.Ctx) error {
	reclaimed, err := c.imageService.ReclaimExpired(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    dto.CleanupResponse{Reclaimed: reclaimed},
	})
}

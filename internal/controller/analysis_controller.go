package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/pkg/serverutils"
	"fashion-buddy-be/internal/service"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	LatestBySession(ctx *fiber.Ctx) error
	SearchProducts(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IColorAnalysisService
}

func NewAnalysisController(service service.IColorAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis")
	h.Post("/color", c.Analyze)
	h.Get("/sessions/:sessionId", c.LatestBySession)
	h.Post("/products", c.SearchProducts)
}

func (c *analysisController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeColorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.AnalyzeUploaded(ctx.Context(), req.UserId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    res,
	})
}

func (c *analysisController) LatestBySession(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.service.LatestBySession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    res,
	})
}

func (c *analysisController) SearchProducts(ctx *fiber.Ctx) error {
	var req dto.SearchProductsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.SearchProducts(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    res,
	})
}

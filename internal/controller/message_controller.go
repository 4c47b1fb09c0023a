package controller

import (
	"github.com/gofiber/fiber/v2"

	"fashion-buddy-be/internal/dto"
	"fashion-buddy-be/internal/pkg/serverutils"
	"fashion-buddy-be/internal/service"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	SendText(ctx *fiber.Ctx) error
	SendMedia(ctx *fiber.Ctx) error
	Initiate(ctx *fiber.Ctx) error
}

type messageController struct {
	conversation service.IConversationService
}

func NewMessageController(conversation service.IConversationService) IMessageController {
	return &messageController{conversation: conversation}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Post("/text", c.SendText)
	h.Post("/media", c.SendMedia)
	h.Post("/initiate", c.Initiate)
}

func (c *messageController) SendText(ctx *fiber.Ctx) error {
	var req dto.SendTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.conversation.SendText(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Message queued",
	})
}

func (c *messageController) SendMedia(ctx *fiber.Ctx) error {
	var req dto.SendMediaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.conversation.SendMedia(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Message queued",
	})
}

func (c *messageController) Initiate(ctx *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.conversation.Initiate(ctx.Context(), req.PhoneNumber, req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"data":    res,
	})
}

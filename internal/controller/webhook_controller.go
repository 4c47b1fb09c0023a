package controller

import (
	"github.com/gofiber/fiber/v2"

	"fashion-buddy-be/internal/pkg/logger"
	"fashion-buddy-be/internal/service"
	"fashion-buddy-be/pkg/whatsapp"
)

const twimlEmptyResponse = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleWhatsApp(ctx *fiber.Ctx) error
}

type webhookController struct {
	conversation service.IConversationService
	log          logger.ILogger
}

func NewWebhookController(conversation service.IConversationService, log logger.ILogger) IWebhookController {
	return &webhookController{
		conversation: conversation,
		log:          log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook")
	h.Post("/whatsapp", c.HandleWhatsApp)
}

// HandleWhatsApp always acks with an empty TwiML response. Processing
// errors are logged and swallowed: a non-200 would make the transport
// retry and show the user a delivery failure.
func (c *webhookController) HandleWhatsApp(ctx *fiber.Ctx) error {
	var payload whatsapp.Payload
	if err := ctx.BodyParser(&payload); err != nil {
		c.log.Warn("webhook", "Unparseable webhook payload", map[string]interface{}{
			"error": err.Error(),
		})
		return c.ack(ctx)
	}

	if err := c.conversation.HandleInbound(ctx.Context(), payload); err != nil {
		c.log.Error("webhook", "Failed to handle inbound message", map[string]interface{}{
			"from":  payload.From,
			"error": err.Error(),
		})
	}

	return c.ack(ctx)
}

func (c *webhookController) ack(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, "text/xml")
	return ctx.Status(fiber.StatusOK).SendString(twimlEmptyResponse)
}

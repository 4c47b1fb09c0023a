package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fashion-buddy-be/pkg/apperrors"
)

// ErrorHandlerMiddleware converts errors escaping controllers into the
// shared JSON envelope, mapping application error codes to HTTP status.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusFor(err)
		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": err.Error(),
		})
	}
}

func statusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidMessageFormat, apperrors.CodeValidation:
		return fiber.StatusBadRequest
	case apperrors.CodeNotFound:
		return fiber.StatusNotFound
	case apperrors.CodeFetch, apperrors.CodeReasoning, apperrors.CodeSearchProvider, apperrors.CodeUpload:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

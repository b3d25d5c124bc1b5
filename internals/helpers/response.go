package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ApiResponse is the generic failure/acknowledgement envelope:
// {"success": bool, "message": string}
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JsonError writes the envelope with success=false.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ApiResponse{Success: false, Message: message})
}

// JsonSuccess writes the envelope with success=true (used by deletes).
func JsonSuccess(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(ApiResponse{Success: true, Message: message})
}

// ErrorHandler maps uncaught errors (incl. fiber.NewError) to the envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return JsonError(c, code, msg)
}

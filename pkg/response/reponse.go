package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseOKModel struct {
	Code         int    `json:"code"`
	ErrorMessage string `json:"errorMessage"`
}

type ResponseErrorModel struct {
	Code         int         `json:"code"`
	ErrorMessage interface{} `json:"errorMessage"`
}

type ResponseValidationModel struct {
	Code         int               `json:"code"`
	ErrorMessage string            `json:"errorMessage"`
	Fields       map[string]string `json:"fields"`
}

func ResponseOK(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(ResponseOKModel{
		Code:         fiber.StatusOK,
		ErrorMessage: message,
	})
}

// ResponseData writes data as the whole body. The mobile client reads
// movie payloads without an envelope.
func ResponseData(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	return c.Status(code).JSON(ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	})
}

func ResponseValidation(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ResponseValidationModel{
		Code:         fiber.StatusBadRequest,
		ErrorMessage: message,
		Fields:       fields,
	})
}

package response

import (
	"github.com/gofiber/fiber/v2"
)

// ResponseModel is the envelope every successful endpoint answers with. Code
// mirrors the http status, Data is null when the operation has no payload
// (plain acks, saved-movie lookups that found nothing).
type ResponseModel struct {
	Code         int         `json:"code"`
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"errorMessage"`
}

type ResponseErrorModel struct {
	Code         int         `json:"code"`
	ErrorMessage interface{} `json:"errorMessage"`
}

func send(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(ResponseModel{
		Code: code,
		Data: data,
	})
}

func ResponseOKWithData(c *fiber.Ctx, data interface{}) error {
	return send(c, fiber.StatusOK, data)
}

func ResponseOK(c *fiber.Ctx) error {
	return send(c, fiber.StatusOK, nil)
}

func ResponseCreated(c *fiber.Ctx, data interface{}) error {
	return send(c, fiber.StatusCreated, data)
}

func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	return c.Status(code).JSON(ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	})
}

package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the JSON body into out and checks its validate tags.
// An empty body is accepted and leaves out untouched.
func BindAndValidate(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(out); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if err := validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

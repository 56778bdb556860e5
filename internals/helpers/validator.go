// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct valida um DTO com validator.v10; em caso de erro responde
// 422 com o mapa campo → tags e devolve true (request já respondida).
func ValidateStruct(c *fiber.Ctx, payload any) (handled bool, err error) {
	if vErr := validate.Struct(payload); vErr != nil {
		ve, ok := vErr.(validator.ValidationErrors)
		if !ok {
			return true, JsonError(c, fiber.StatusBadRequest, "Invalid input")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return true, JsonValidationError(c, fieldErrors)
	}
	return false, nil
}

// file: internals/helpers/validate.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate applique les tags `validate` d'une struct DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidationJSON transforme les erreurs validator.v10 en réponse 422 par
// champ ; tout autre type d'erreur retombe en 400 générique.
func ValidationJSON(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, fields)
}

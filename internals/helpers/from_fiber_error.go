// file: internals/helpers/from_fiber_error.go
package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError convertit une erreur sortie d'une closure Transaction
// (souvent un *fiber.Error) en réponse JSON cohérente.
// Tout autre type d'erreur retombe en 500 avec le message d'origine.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

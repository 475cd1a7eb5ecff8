// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const LocUserID = "user_id"

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // cookie access_token si pas de Bearer
}

// AuthJWT vérifie le jeton porteur et hydrate user_id dans les locals —
// l'identité de l'acteur est requise pour l'engagement d'une liquidation.
// Le contrôle fin des permissions reste hors périmètre de ce sous-système.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret obligatoire")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		if sub, ok := claims["user_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(sub)); err == nil {
				c.Locals(LocUserID, id)
			}
		}
		return c.Next()
	}
}

// UserIDFromContext retourne l'acteur hydraté par AuthJWT.
func UserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(LocUserID).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "acteur inconnu")
}

// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tgimmo_backend/internals/configs"
	authmw "tgimmo_backend/internals/middlewares/auth"
	routeDetails "tgimmo_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN (gestion) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up ImmobilierRoutes...")
	routeDetails.ImmobilierRoutes(admin, db)

	log.Println("[INFO] Setting up LiquidationRoutes...")
	routeDetails.LiquidationRoutes(admin, db)
}

// file: internals/route/details/liquidation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	liqcontroller "tgimmo_backend/internals/features/liquidations/controller"
)

// LiquidationRoutes : deux lectures (preview, en-attente) + un write (commit)
// + consultation du registre immuable.
func LiquidationRoutes(r fiber.Router, db *gorm.DB) {
	h := liqcontroller.NewLiquidationHandler(db)

	liq := r.Group("/liquidations")
	liq.Get("/preview", h.Preview)
	liq.Get("/en-attente", h.ScanPending)
	liq.Get("/", h.List)
	liq.Get("/:id", h.Get)
	liq.Post("/", h.Commit)
}

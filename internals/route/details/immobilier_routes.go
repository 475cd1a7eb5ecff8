// file: internals/route/details/immobilier_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ownershipcontroller "tgimmo_backend/internals/features/immobilier/ownership/controller"
)

// ImmobilierRoutes : registre de propriété (répartition versionnée).
func ImmobilierRoutes(r fiber.Router, db *gorm.DB) {
	h := ownershipcontroller.NewUniteProprietaireHandler(db)

	unites := r.Group("/unites")
	unites.Get("/:id/proprietaires", h.GetCurrentShares)
	unites.Get("/:id/proprietaires/historique", h.GetHistory)
	unites.Post("/:id/proprietaires/supersede", h.Supersede)
}

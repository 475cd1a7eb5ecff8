// file: internals/features/immobilier/ownership/controller/unite_proprietaire_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tgimmo_backend/internals/features/immobilier/ownership/dto"
	ownershipservice "tgimmo_backend/internals/features/immobilier/ownership/service"
	helper "tgimmo_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type UniteProprietaireHandler struct {
	Registry *ownershipservice.OwnershipRegistry
}

func NewUniteProprietaireHandler(db *gorm.DB) *UniteProprietaireHandler {
	return &UniteProprietaireHandler{
		Registry: &ownershipservice.OwnershipRegistry{DB: db},
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

/* =======================================================
   GET /api/a/unites/:id/proprietaires?as_of=YYYY-MM-DD
   Répartition valable à une date (défaut : aujourd'hui)
======================================================= */

func (h *UniteProprietaireHandler) GetCurrentShares(c *fiber.Ctx) error {
	uniteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id d'unité invalide")
	}

	asOf := time.Now()
	if raw := strings.TrimSpace(c.Query("as_of")); raw != "" {
		asOf, err = time.Parse(dto.DateLayout, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "as_of doit être au format YYYY-MM-DD")
		}
	}

	lignes, err := h.Registry.CurrentShares(uniteID, asOf)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "répartition de propriété", fiber.Map{
		"unite_id": uniteID,
		"as_of":    asOf.Format(dto.DateLayout),
		"parts":    dto.ToUniteProprietaireResponses(lignes),
	})
}

/* =======================================================
   GET /api/a/unites/:id/proprietaires/historique
======================================================= */

func (h *UniteProprietaireHandler) GetHistory(c *fiber.Ctx) error {
	uniteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id d'unité invalide")
	}

	lignes, err := h.Registry.History(uniteID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "historique des quote-parts", dto.ToUniteProprietaireResponses(lignes))
}

/* =======================================================
   POST /api/a/unites/:id/proprietaires/supersede
   Remplace une répartition sans rien supprimer
======================================================= */

func (h *UniteProprietaireHandler) Supersede(c *fiber.Ctx) error {
	uniteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id d'unité invalide")
	}

	var in dto.SupersedeDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationJSON(c, err)
	}

	dateRemplacee, _ := time.Parse(dto.DateLayout, in.DateDebutRemplacee)
	dateEffet, _ := time.Parse(dto.DateLayout, in.DateEffet)

	inserees, err := h.Registry.Supersede(uniteID, dateRemplacee, in.VersParts(), dateEffet, in.Motif)
	if err != nil {
		switch {
		case errors.Is(err, ownershipservice.ErrUniteInconnue):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, ownershipservice.ErrPartsVides),
			errors.Is(err, ownershipservice.ErrFractionInvalide),
			errors.Is(err, ownershipservice.ErrSommeExcessive):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonCreated(c, "répartition remplacée", dto.ToUniteProprietaireResponses(inserees))
}

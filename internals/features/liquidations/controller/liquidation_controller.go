// file: internals/features/liquidations/controller/liquidation_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bailservice "tgimmo_backend/internals/features/immobilier/baux/service"
	chargeservice "tgimmo_backend/internals/features/immobilier/charges/service"
	ownershipservice "tgimmo_backend/internals/features/immobilier/ownership/service"
	paiementservice "tgimmo_backend/internals/features/immobilier/paiements/service"
	proprietaireservice "tgimmo_backend/internals/features/immobilier/proprietaires/service"
	dto "tgimmo_backend/internals/features/liquidations/dto"
	liqservice "tgimmo_backend/internals/features/liquidations/service"
	helper "tgimmo_backend/internals/helpers"
	authmw "tgimmo_backend/internals/middlewares/auth"
)

/* =======================================================
   BOOTSTRAP — câblage des services GORM
======================================================= */

type LiquidationHandler struct {
	Calculateur *liqservice.Calculateur
	Registre    *liqservice.Registre
	Scanner     *liqservice.Scanner
	Store       liqservice.LiquidationStore
}

func NewLiquidationHandler(db *gorm.DB) *LiquidationHandler {
	calc := &liqservice.Calculateur{
		Proprietaires: &proprietaireservice.AnnuaireProprietaires{DB: db},
		Parts:         &ownershipservice.OwnershipRegistry{DB: db},
		Baux:          &bailservice.BailService{DB: db},
		Paiements:     &paiementservice.PaiementService{DB: db},
		Charges:       &chargeservice.ChargeService{DB: db},
	}
	store := &liqservice.GormLiquidationStore{DB: db}
	return &LiquidationHandler{
		Calculateur: calc,
		Registre:    &liqservice.Registre{Store: store, Calculateur: calc},
		Scanner:     &liqservice.Scanner{Source: &liqservice.GormSourceEnAttente{DB: db}, Calculateur: calc},
		Store:       store,
	}
}

func parsePeriode(c *fiber.Ctx) (int, int, error) {
	mois, err1 := strconv.Atoi(strings.TrimSpace(c.Query("mois")))
	annee, err2 := strconv.Atoi(strings.TrimSpace(c.Query("annee")))
	if err1 != nil || err2 != nil || !liqservice.PeriodeValide(mois, annee) {
		return 0, 0, liqservice.ErrPeriodeInvalide
	}
	return mois, annee, nil
}

/* =======================================================
   GET /api/a/liquidations/preview?proprietaire_id&mois&annee
   Lecture seule — rejouable, aucun effet de bord
======================================================= */

func (h *LiquidationHandler) Preview(c *fiber.Ctx) error {
	proprietaireID, err := uuid.Parse(strings.TrimSpace(c.Query("proprietaire_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "proprietaire_id invalide")
	}
	mois, annee, err := parsePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Propriétaire inconnu → aperçu à zéro, 200 : choix assumé pour garder
	// le traitement en lot trivial côté appelant
	ap, err := h.Calculateur.Compute(proprietaireID, mois, annee)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "aperçu de liquidation", ap)
}

/* =======================================================
   GET /api/a/liquidations/en-attente?mois&annee&details=1
======================================================= */

func (h *LiquidationHandler) ScanPending(c *fiber.Ctx) error {
	mois, annee, err := parsePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	avecDetails := c.Query("details") == "1" || strings.EqualFold(c.Query("details"), "true")

	res, err := h.Scanner.ScanEnAttente(mois, annee, avecDetails)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "liquidations en attente", res)
}

/* =======================================================
   POST /api/a/liquidations
   Commit transactionnel — 409 si déjà liquidé
======================================================= */

func (h *LiquidationHandler) Commit(c *fiber.Ctx) error {
	acteurID, err := authmw.UserIDFromContext(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.LiquidationCommitDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationJSON(c, err)
	}

	m, err := h.Registre.Commit(in.ProprietaireID, in.Mois, in.Annee, acteurID)
	if err != nil {
		switch {
		case errors.Is(err, liqservice.ErrDejaLiquidee):
			// erreur métier attendue — "déjà fait", pas "réessayez"
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, liqservice.ErrPeriodeInvalide),
			errors.Is(err, liqservice.ErrRienALiquider):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonCreated(c, "liquidation établie", dto.ToLiquidationResponse(*m))
}

/* =======================================================
   GET /api/a/liquidations?mois&annee&page&per_page
======================================================= */

func (h *LiquidationHandler) List(c *fiber.Ctx) error {
	// filtres optionnels — 0 = pas de filtre
	mois, _ := strconv.Atoi(strings.TrimSpace(c.Query("mois")))
	annee, _ := strconv.Atoi(strings.TrimSpace(c.Query("annee")))

	p := helper.ResolvePaging(c, 25, 200)
	rows, total, err := h.Store.Lister(mois, annee, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "liquidations", dto.ToLiquidationResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =======================================================
   GET /api/a/liquidations/:id
======================================================= */

func (h *LiquidationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id invalide")
	}
	m, err := h.Store.Trouver(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "liquidation introuvable")
	}
	return helper.JsonOK(c, "liquidation", dto.ToLiquidationResponse(*m))
}

// file: internals/features/liquidations/service/collaborators.go
package service

import (
	"time"

	"github.com/google/uuid"

	bailmodel "tgimmo_backend/internals/features/immobilier/baux/model"
	chargemodel "tgimmo_backend/internals/features/immobilier/charges/model"
	ownershipmodel "tgimmo_backend/internals/features/immobilier/ownership/model"
	paiementmodel "tgimmo_backend/internals/features/immobilier/paiements/model"
	proprietairemodel "tgimmo_backend/internals/features/immobilier/proprietaires/model"
)

/* ==============================================
   COLLABORATEURS — le calculateur ne touche jamais
   la DB directement ; il lit via ces interfaces,
   implémentées par les services immobilier (GORM)
   et par des doublures dans les tests.
============================================== */

// AnnuaireProprietaires : annuaire simple par ID.
// Find retourne (nil, nil) quand le propriétaire n'existe pas —
// le calculateur en fait un aperçu à zéro, pas une erreur.
type AnnuaireProprietaires interface {
	Find(proprietaireID uuid.UUID) (*proprietairemodel.ProprietaireModel, error)
}

// LecteurParts : quote-parts actives d'un propriétaire à une date donnée
// (lignes statut=actif dont la fenêtre couvre asOf).
type LecteurParts interface {
	PartsActives(proprietaireID uuid.UUID, asOf time.Time) ([]ownershipmodel.UniteProprietaireModel, error)
}

// LecteurBaux : tous les baux d'une unité, quel que soit leur statut —
// un bail résilié peut encore porter un paiement à liquider.
type LecteurBaux interface {
	BauxPourUnite(uniteID uuid.UUID) ([]bailmodel.BailModel, error)
}

// LecteurPaiements : échéances au statut valide pour (bail, mois, année).
type LecteurPaiements interface {
	PaiementsValides(bailID uuid.UUID, mois, annee int) ([]paiementmodel.BailPaiementModel, error)
}

// LecteurCharges : charges non payées de la période atteignables par ce
// propriétaire — imputées à lui OU payables par lui, sans doublon.
type LecteurCharges interface {
	ChargesNonPayees(proprietaireID uuid.UUID, mois, annee int) ([]chargemodel.ImputationChargeModel, error)
}

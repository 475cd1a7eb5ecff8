// file: internals/features/immobilier/ownership/dto/unite_proprietaire_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ownershipmodel "tgimmo_backend/internals/features/immobilier/ownership/model"
	ownershipservice "tgimmo_backend/internals/features/immobilier/ownership/service"
)

const DateLayout = "2006-01-02"

/* ==============================================
   SUPERSEDE — remplacement d'une répartition
============================================== */

type PartDTO struct {
	ProprietaireID uuid.UUID `json:"proprietaire_id" validate:"required"`
	Numerateur     int64     `json:"numerateur" validate:"min=0"`
	Denominateur   int64     `json:"denominateur" validate:"required,min=1"`
}

type SupersedeDTO struct {
	// date_debut de la fenêtre visée — l'appariement se fait par
	// (unité, date_debut), jamais "toutes les lignes actives"
	DateDebutRemplacee string    `json:"date_debut_remplacee" validate:"required,datetime=2006-01-02"`
	DateEffet          string    `json:"date_effet" validate:"required,datetime=2006-01-02"`
	Motif              string    `json:"motif,omitempty"`
	Parts              []PartDTO `json:"parts" validate:"required,min=1,dive"`
}

func (d SupersedeDTO) VersParts() []ownershipservice.NouvellePart {
	parts := make([]ownershipservice.NouvellePart, 0, len(d.Parts))
	for _, p := range d.Parts {
		parts = append(parts, ownershipservice.NouvellePart{
			ProprietaireID: p.ProprietaireID,
			Numerateur:     p.Numerateur,
			Denominateur:   p.Denominateur,
		})
	}
	return parts
}

/* ==============================================
   RÉPONSES
============================================== */

type UniteProprietaireResponse struct {
	UniteProprietaireID uuid.UUID       `json:"unite_proprietaire_id"`
	UniteID             uuid.UUID       `json:"unite_id"`
	ProprietaireID      uuid.UUID       `json:"proprietaire_id"`
	Numerateur          int64           `json:"numerateur"`
	Denominateur        int64           `json:"denominateur"`
	Pourcentage         decimal.Decimal `json:"pourcentage"`
	DateDebut           string          `json:"date_debut"`
	DateFin             *string         `json:"date_fin,omitempty"`
	Statut              string          `json:"statut"`
	RemplaceParID       *uuid.UUID      `json:"remplace_par_id,omitempty"`
	Motif               *string         `json:"motif,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func ToUniteProprietaireResponse(m ownershipmodel.UniteProprietaireModel) UniteProprietaireResponse {
	var fin *string
	if m.UniteProprietaireDateFin != nil {
		s := m.UniteProprietaireDateFin.Format(DateLayout)
		fin = &s
	}
	return UniteProprietaireResponse{
		UniteProprietaireID: m.UniteProprietaireID,
		UniteID:             m.UniteProprietaireUniteID,
		ProprietaireID:      m.UniteProprietaireProprietaireID,
		Numerateur:          m.UniteProprietaireNumerateur,
		Denominateur:        m.UniteProprietaireDenominateur,
		Pourcentage:         m.UniteProprietairePourcentage,
		DateDebut:           m.UniteProprietaireDateDebut.Format(DateLayout),
		DateFin:             fin,
		Statut:              string(m.UniteProprietaireStatut),
		RemplaceParID:       m.UniteProprietaireRemplaceParID,
		Motif:               m.UniteProprietaireMotif,
		CreatedAt:           m.UniteProprietaireCreatedAt,
	}
}

func ToUniteProprietaireResponses(ms []ownershipmodel.UniteProprietaireModel) []UniteProprietaireResponse {
	out := make([]UniteProprietaireResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToUniteProprietaireResponse(m))
	}
	return out
}

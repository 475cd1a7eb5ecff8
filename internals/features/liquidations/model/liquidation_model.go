// file: internals/features/liquidations/model/liquidation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — liquidation propriétaire
   Une ligne par (propriétaire, mois, année) —
   unicité imposée par index au stockage pour que
   deux commits concurrents ne passent jamais
   tous les deux. Jamais mise à jour après création.
============================================== */

type LiquidationModel struct {
	// PK
	LiquidationID uuid.UUID `gorm:"column:liquidation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"liquidation_id"`

	// FK + période
	LiquidationProprietaireID uuid.UUID `gorm:"column:liquidation_proprietaire_id;type:uuid;not null;uniqueIndex:uniq_liquidation_periode,priority:1" json:"liquidation_proprietaire_id"`
	LiquidationMois           int16     `gorm:"column:liquidation_mois;type:smallint;not null;check:liquidation_mois BETWEEN 1 AND 12;uniqueIndex:uniq_liquidation_periode,priority:2" json:"liquidation_mois"`
	LiquidationAnnee          int16     `gorm:"column:liquidation_annee;type:smallint;not null;uniqueIndex:uniq_liquidation_periode,priority:3" json:"liquidation_annee"`

	// Totaux (2 décimales)
	LiquidationTotalRevenu     decimal.Decimal `gorm:"column:liquidation_total_revenu;type:numeric(14,2);not null" json:"liquidation_total_revenu"`
	LiquidationTotalCharges    decimal.Decimal `gorm:"column:liquidation_total_charges;type:numeric(14,2);not null" json:"liquidation_total_charges"`
	LiquidationTotalHonoraires decimal.Decimal `gorm:"column:liquidation_total_honoraires;type:numeric(14,2);not null" json:"liquidation_total_honoraires"`
	// Peut être négatif — aucun plancher appliqué
	LiquidationNetAPayer decimal.Decimal `gorm:"column:liquidation_net_a_payer;type:numeric(14,2);not null" json:"liquidation_net_a_payer"`

	// Pièces justificatives : IDs des paiements/charges/unités/baux considérés
	LiquidationDetails datatypes.JSON `gorm:"column:liquidation_details;type:jsonb" json:"liquidation_details"`

	// Pas d'état brouillon — une liquidation naît validée
	LiquidationStatut string `gorm:"column:liquidation_statut;type:varchar(20);not null;default:'valide'" json:"liquidation_statut"`

	LiquidationCreatedBy uuid.UUID `gorm:"column:liquidation_created_by;type:uuid;not null" json:"liquidation_created_by"`
	LiquidationCreatedAt time.Time `gorm:"column:liquidation_created_at;type:timestamptz;not null;default:now();index" json:"liquidation_created_at"`
}

func (LiquidationModel) TableName() string { return "liquidations" }

func (m *LiquidationModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiquidationStatut == "" {
		m.LiquidationStatut = "valide"
	}
	if m.LiquidationCreatedAt.IsZero() {
		m.LiquidationCreatedAt = time.Now()
	}
	return nil
}

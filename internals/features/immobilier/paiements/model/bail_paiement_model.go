// file: internals/features/immobilier/paiements/model/bail_paiement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — statut du paiement
============================== */

type BailPaiementStatut string

const (
	BailPaiementStatutEnValidation BailPaiementStatut = "en_validation"
	BailPaiementStatutValide       BailPaiementStatut = "valide"
)

/* ==============================================
   MODEL — échéance de loyer
   Une ligne par (bail, mois, année) — unique.
============================================== */

type BailPaiementModel struct {
	// PK
	BailPaiementID uuid.UUID `gorm:"column:bail_paiement_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bail_paiement_id"`

	// FK + période (unicité imposée au stockage)
	BailPaiementBailID uuid.UUID `gorm:"column:bail_paiement_bail_id;type:uuid;not null;uniqueIndex:uniq_bail_periode,priority:1" json:"bail_paiement_bail_id"`
	BailPaiementMois   int16     `gorm:"column:bail_paiement_mois;type:smallint;not null;check:bail_paiement_mois BETWEEN 1 AND 12;uniqueIndex:uniq_bail_periode,priority:2" json:"bail_paiement_mois"`
	BailPaiementAnnee  int16     `gorm:"column:bail_paiement_annee;type:smallint;not null;uniqueIndex:uniq_bail_periode,priority:3" json:"bail_paiement_annee"`

	// Montants — montant_paye reste nul tant que rien n'est encaissé explicitement ;
	// un paiement peut être validé sans montant payé (le dû est alors réputé encaissé)
	BailPaiementMontantDu   decimal.Decimal  `gorm:"column:bail_paiement_montant_du;type:numeric(14,2);not null" json:"bail_paiement_montant_du"`
	BailPaiementMontantPaye *decimal.Decimal `gorm:"column:bail_paiement_montant_paye;type:numeric(14,2)" json:"bail_paiement_montant_paye,omitempty"`

	BailPaiementStatut BailPaiementStatut `gorm:"column:bail_paiement_statut;type:varchar(20);not null;default:'en_validation';index" json:"bail_paiement_statut"`

	// Métadonnées d'encaissement
	BailPaiementMode      *string    `gorm:"column:bail_paiement_mode;type:varchar(40)" json:"bail_paiement_mode,omitempty"`
	BailPaiementReference *string    `gorm:"column:bail_paiement_reference;type:varchar(80)" json:"bail_paiement_reference,omitempty"`
	BailPaiementRecuURL   *string    `gorm:"column:bail_paiement_recu_url;type:text" json:"bail_paiement_recu_url,omitempty"`
	BailPaiementPaidAt    *time.Time `gorm:"column:bail_paiement_paid_at;type:timestamptz" json:"bail_paiement_paid_at,omitempty"`

	// Audit
	BailPaiementCreatedAt time.Time `gorm:"column:bail_paiement_created_at;type:timestamptz;not null;default:now()" json:"bail_paiement_created_at"`
	BailPaiementUpdatedAt time.Time `gorm:"column:bail_paiement_updated_at;type:timestamptz;not null;default:now()" json:"bail_paiement_updated_at"`
}

func (BailPaiementModel) TableName() string { return "bail_paiements" }

func (m *BailPaiementModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BailPaiementStatut == "" {
		m.BailPaiementStatut = BailPaiementStatutEnValidation
	}
	if m.BailPaiementCreatedAt.IsZero() {
		m.BailPaiementCreatedAt = now
	}
	m.BailPaiementUpdatedAt = now
	return nil
}

func (m *BailPaiementModel) BeforeUpdate(tx *gorm.DB) error {
	m.BailPaiementUpdatedAt = time.Now()
	return nil
}

// MontantEncaisse retourne le montant à retenir pour une liquidation :
// le montant payé s'il est renseigné, sinon le montant dû.
func (m *BailPaiementModel) MontantEncaisse() decimal.Decimal {
	if m.BailPaiementMontantPaye != nil {
		return *m.BailPaiementMontantPaye
	}
	return m.BailPaiementMontantDu
}

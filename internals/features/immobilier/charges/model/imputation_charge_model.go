// file: internals/features/immobilier/charges/model/imputation_charge_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUMS — imputation & paiement
============================== */

// Entité à laquelle la charge est imputée (impute_a + id_impute)
type ChargeImputeA string

const (
	ChargeImputeAProprietaire ChargeImputeA = "proprietaire"
	ChargeImputeALocataire    ChargeImputeA = "locataire"
	ChargeImputeAUnite        ChargeImputeA = "unite"
	ChargeImputeABail         ChargeImputeA = "bail"
)

// Qui doit régler la charge
type ChargePayerType string

const (
	ChargePayerProprietaire ChargePayerType = "proprietaire"
	ChargePayerLocataire    ChargePayerType = "locataire"
	ChargePayerSociete      ChargePayerType = "societe"
)

type ChargeStatut string

const (
	ChargeStatutNonPaye ChargeStatut = "non_paye"
	ChargeStatutPaye    ChargeStatut = "paye"
)

/* ==============================================
   MODEL — imputation de charge
   Le passage non_paye → paye n'arrive que par
   l'engagement d'une liquidation (write-back).
============================================== */

type ImputationChargeModel struct {
	// PK
	ImputationChargeID uuid.UUID `gorm:"column:imputation_charge_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"imputation_charge_id"`

	ImputationChargeLibelle string          `gorm:"column:imputation_charge_libelle;type:varchar(160);not null" json:"imputation_charge_libelle"`
	ImputationChargeMontant decimal.Decimal `gorm:"column:imputation_charge_montant;type:numeric(14,2);not null" json:"imputation_charge_montant"`

	// Imputation (à qui la charge est rattachée)
	ImputationChargeImputeA  ChargeImputeA `gorm:"column:imputation_charge_impute_a;type:varchar(20);not null;index:idx_charge_impute,priority:1" json:"imputation_charge_impute_a"`
	ImputationChargeIDImpute uuid.UUID     `gorm:"column:imputation_charge_id_impute;type:uuid;not null;index:idx_charge_impute,priority:2" json:"imputation_charge_id_impute"`

	// Payeur (qui règle)
	ImputationChargePayerType *ChargePayerType `gorm:"column:imputation_charge_payer_type;type:varchar(20);index:idx_charge_payer,priority:1" json:"imputation_charge_payer_type,omitempty"`
	ImputationChargePayerID   *uuid.UUID       `gorm:"column:imputation_charge_payer_id;type:uuid;index:idx_charge_payer,priority:2" json:"imputation_charge_payer_id,omitempty"`

	ImputationChargeStatut       ChargeStatut `gorm:"column:imputation_charge_statut;type:varchar(20);not null;default:'non_paye';index" json:"imputation_charge_statut"`
	ImputationChargeDatePaiement *time.Time   `gorm:"column:imputation_charge_date_paiement;type:timestamptz" json:"imputation_charge_date_paiement,omitempty"`

	// Audit — created_at sert d'ancrage de période pour la liquidation
	ImputationChargeCreatedAt time.Time `gorm:"column:imputation_charge_created_at;type:timestamptz;not null;default:now();index" json:"imputation_charge_created_at"`
	ImputationChargeUpdatedAt time.Time `gorm:"column:imputation_charge_updated_at;type:timestamptz;not null;default:now()" json:"imputation_charge_updated_at"`
}

func (ImputationChargeModel) TableName() string { return "imputation_charges" }

func (m *ImputationChargeModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ImputationChargeStatut == "" {
		m.ImputationChargeStatut = ChargeStatutNonPaye
	}
	if m.ImputationChargeCreatedAt.IsZero() {
		m.ImputationChargeCreatedAt = now
	}
	m.ImputationChargeUpdatedAt = now
	return nil
}

func (m *ImputationChargeModel) BeforeUpdate(tx *gorm.DB) error {
	m.ImputationChargeUpdatedAt = time.Now()
	return nil
}

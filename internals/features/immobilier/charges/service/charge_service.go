// file: internals/features/immobilier/charges/service/charge_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	chargemodel "tgimmo_backend/internals/features/immobilier/charges/model"
)

// ChargeService : sélection des charges déductibles d'une liquidation et
// write-back une fois consommées.
type ChargeService struct {
	DB *gorm.DB
}

// ChargesNonPayees retourne les charges non payées créées dans la période et
// atteignables par ce propriétaire : imputées à lui OU payables par lui. Une
// ligne qui satisfait les deux chemins ne sort qu'une fois (même ligne SQL).
func (s *ChargeService) ChargesNonPayees(proprietaireID uuid.UUID, mois, annee int) ([]chargemodel.ImputationChargeModel, error) {
	debut := time.Date(annee, time.Month(mois), 1, 0, 0, 0, 0, time.UTC)
	fin := debut.AddDate(0, 1, 0)

	var charges []chargemodel.ImputationChargeModel
	err := s.DB.
		Where(`
			imputation_charge_statut = ?
			AND imputation_charge_created_at >= ?
			AND imputation_charge_created_at < ?
			AND (
				(imputation_charge_impute_a = ? AND imputation_charge_id_impute = ?)
				OR (imputation_charge_payer_type = ? AND imputation_charge_payer_id = ?)
			)
		`,
			chargemodel.ChargeStatutNonPaye,
			debut, fin,
			chargemodel.ChargeImputeAProprietaire, proprietaireID,
			chargemodel.ChargePayerProprietaire, proprietaireID,
		).
		Order("imputation_charge_created_at ASC").
		Find(&charges).Error
	return charges, err
}

// MarquerPayees passe un lot de charges en paye. Le registre de liquidation
// l'appelle dans sa propre transaction — c'est l'unique transition
// non_paye → paye du système.
func (s *ChargeService) MarquerPayees(tx *gorm.DB, chargeIDs []uuid.UUID, quand time.Time) error {
	if len(chargeIDs) == 0 {
		return nil
	}
	return tx.Model(&chargemodel.ImputationChargeModel{}).
		Where("imputation_charge_id IN ?", chargeIDs).
		Updates(map[string]any{
			"imputation_charge_statut":        chargemodel.ChargeStatutPaye,
			"imputation_charge_date_paiement": quand,
			"imputation_charge_updated_at":    quand,
		}).Error
}

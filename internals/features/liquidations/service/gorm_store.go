// file: internals/features/liquidations/service/gorm_store.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	chargeservice "tgimmo_backend/internals/features/immobilier/charges/service"
	liqmodel "tgimmo_backend/internals/features/liquidations/model"
)

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

/* ==============================================
   STORE GORM
============================================== */

type GormLiquidationStore struct {
	DB *gorm.DB
}

type gormLiquidationTx struct {
	tx *gorm.DB
}

func (s *GormLiquidationStore) DansTransaction(fn func(tx LiquidationTx) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&gormLiquidationTx{tx: tx})
	})
}

func (s *GormLiquidationStore) Trouver(liquidationID uuid.UUID) (*liqmodel.LiquidationModel, error) {
	var m liqmodel.LiquidationModel
	if err := s.DB.First(&m, "liquidation_id = ?", liquidationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormLiquidationStore) Lister(mois, annee int, offset, limit int) ([]liqmodel.LiquidationModel, int64, error) {
	q := s.DB.Model(&liqmodel.LiquidationModel{})
	if mois > 0 {
		q = q.Where("liquidation_mois = ?", mois)
	}
	if annee > 0 {
		q = q.Where("liquidation_annee = ?", annee)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []liqmodel.LiquidationModel
	if err := q.Order("liquidation_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (t *gormLiquidationTx) Existe(proprietaireID uuid.UUID, mois, annee int) (bool, error) {
	var cnt int64
	err := t.tx.Model(&liqmodel.LiquidationModel{}).
		Where(`
			liquidation_proprietaire_id = ?
			AND liquidation_mois = ?
			AND liquidation_annee = ?
		`, proprietaireID, mois, annee).
		Count(&cnt).Error
	return cnt > 0, err
}

func (t *gormLiquidationTx) Inserer(m *liqmodel.LiquidationModel) error {
	if err := t.tx.Create(m).Error; err != nil {
		// l'index unique tranche la course entre deux commits concurrents
		if isUniqueViolation(err) {
			return ErrDejaLiquidee
		}
		return err
	}
	return nil
}

func (t *gormLiquidationTx) MarquerChargesPayees(chargeIDs []uuid.UUID, quand time.Time) error {
	// la transition non_paye → paye est portée par le service charges,
	// exécutée ici sur la transaction du commit
	svc := chargeservice.ChargeService{DB: t.tx}
	return svc.MarquerPayees(t.tx, chargeIDs, quand)
}

/* ==============================================
   SOURCE DE DÉCOUVERTE GORM
   Jointure paiement → bail → unité → quote-part,
   indépendante de l'itération par parts du
   calculateur.
============================================== */

type GormSourceEnAttente struct {
	DB *gorm.DB
}

func (s *GormSourceEnAttente) ProprietairesAvecPaiementsValides(mois, annee int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.Raw(`
		SELECT DISTINCT up.unite_proprietaire_proprietaire_id
		FROM bail_paiements bp
		JOIN baux b  ON b.bail_id = bp.bail_paiement_bail_id
		JOIN unite_proprietaires up ON up.unite_proprietaire_unite_id = b.bail_unite_id
		WHERE bp.bail_paiement_statut = 'valide'
		  AND bp.bail_paiement_mois = ?
		  AND bp.bail_paiement_annee = ?
		  AND up.unite_proprietaire_statut = 'actif'
		  AND up.unite_proprietaire_pourcentage > 0
	`, mois, annee).Scan(&ids).Error
	return ids, err
}

func (s *GormSourceEnAttente) ProprietairesDejaLiquides(mois, annee int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&liqmodel.LiquidationModel{}).
		Where("liquidation_mois = ? AND liquidation_annee = ?", mois, annee).
		Pluck("liquidation_proprietaire_id", &ids).Error
	return ids, err
}

func (s *GormSourceEnAttente) LignesDiagnostic(mois, annee int) ([]LigneDiagnostic, error) {
	var rows []struct {
		PaiementID     uuid.UUID  `gorm:"column:paiement_id"`
		BailID         uuid.UUID  `gorm:"column:bail_id"`
		UniteID        uuid.UUID  `gorm:"column:unite_id"`
		ProprietaireID *uuid.UUID `gorm:"column:proprietaire_id"`
	}
	// LEFT JOIN volontaire : un paiement validé sans quote-part active sort
	// avec proprietaire_id NULL — exactement le cas que le support cherche
	err := s.DB.Raw(`
		SELECT bp.bail_paiement_id AS paiement_id,
		       b.bail_id           AS bail_id,
		       b.bail_unite_id     AS unite_id,
		       up.unite_proprietaire_proprietaire_id AS proprietaire_id
		FROM bail_paiements bp
		JOIN baux b ON b.bail_id = bp.bail_paiement_bail_id
		LEFT JOIN unite_proprietaires up
		       ON up.unite_proprietaire_unite_id = b.bail_unite_id
		      AND up.unite_proprietaire_statut = 'actif'
		      AND up.unite_proprietaire_pourcentage > 0
		WHERE bp.bail_paiement_statut = 'valide'
		  AND bp.bail_paiement_mois = ?
		  AND bp.bail_paiement_annee = ?
		ORDER BY bp.bail_paiement_id
	`, mois, annee).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]LigneDiagnostic, 0, len(rows))
	for _, r := range rows {
		out = append(out, LigneDiagnostic{
			PaiementID:     r.PaiementID,
			BailID:         r.BailID,
			UniteID:        r.UniteID,
			ProprietaireID: r.ProprietaireID,
		})
	}
	return out, nil
}

// file: internals/features/immobilier/baux/service/bail_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	bailmodel "tgimmo_backend/internals/features/immobilier/baux/model"
)

var (
	ErrBailInconnu = errors.New("bail inconnu")
	// Deux fenêtres de franchise d'un même bail ne peuvent pas se chevaucher
	ErrFranchiseChevauchante = errors.New("fenêtres de franchise chevauchantes")
)

var cent = decimal.NewFromInt(100)

/* ==============================================
   LOGIQUE PURE
============================================== */

// LoyerRemise applique la remise de franchise au loyer mensuel.
func LoyerRemise(loyer, remisePct decimal.Decimal) decimal.Decimal {
	return loyer.Mul(cent.Sub(remisePct)).Div(cent).Round(2)
}

// FenetresChevauchent détecte un chevauchement entre une fenêtre candidate
// et des franchises existantes (bornes incluses).
func FenetresChevauchent(debut, fin time.Time, existantes []bailmodel.BailFranchiseModel) bool {
	for _, f := range existantes {
		if !debut.After(f.BailFranchiseDateFin) && !fin.Before(f.BailFranchiseDateDebut) {
			return true
		}
	}
	return false
}

/* ==============================================
   SERVICE (GORM)
============================================== */

type BailService struct {
	DB *gorm.DB
}

// BauxPourUnite : tous les baux d'une unité, statut indifférent — un bail
// résilié peut encore porter un paiement d'un mois passé à liquider.
func (s *BailService) BauxPourUnite(uniteID uuid.UUID) ([]bailmodel.BailModel, error) {
	var baux []bailmodel.BailModel
	err := s.DB.
		Where("bail_unite_id = ?", uniteID).
		Order("bail_date_debut ASC").
		Find(&baux).Error
	return baux, err
}

// LoyerPourDate résout le loyer dû à une date en appliquant la franchise
// couvrant cette date, s'il y en a une.
func (s *BailService) LoyerPourDate(bailID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var bail bailmodel.BailModel
	if err := s.DB.First(&bail, "bail_id = ?", bailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ErrBailInconnu
		}
		return decimal.Zero, err
	}

	var franchises []bailmodel.BailFranchiseModel
	if err := s.DB.
		Where("bail_franchise_bail_id = ?", bailID).
		Find(&franchises).Error; err != nil {
		return decimal.Zero, err
	}
	for _, f := range franchises {
		if f.CouvreDate(date) {
			return LoyerRemise(bail.BailLoyerMensuel, f.BailFranchiseRemisePct), nil
		}
	}
	return bail.BailLoyerMensuel, nil
}

// AjouterFranchise enregistre une fenêtre de remise après contrôle de
// non-chevauchement avec les fenêtres existantes du bail.
func (s *BailService) AjouterFranchise(bailID uuid.UUID, debut, fin time.Time, remisePct decimal.Decimal) (*bailmodel.BailFranchiseModel, error) {
	var out *bailmodel.BailFranchiseModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var bail bailmodel.BailModel
		if err := tx.First(&bail, "bail_id = ?", bailID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBailInconnu
			}
			return err
		}

		var existantes []bailmodel.BailFranchiseModel
		if err := tx.
			Where("bail_franchise_bail_id = ?", bailID).
			Find(&existantes).Error; err != nil {
			return err
		}
		if FenetresChevauchent(debut, fin, existantes) {
			return ErrFranchiseChevauchante
		}

		f := bailmodel.BailFranchiseModel{
			BailFranchiseBailID:    bailID,
			BailFranchiseDateDebut: debut,
			BailFranchiseDateFin:   fin,
			BailFranchiseRemisePct: remisePct,
		}
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		out = &f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

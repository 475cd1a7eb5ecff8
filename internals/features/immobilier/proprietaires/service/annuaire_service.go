// file: internals/features/immobilier/proprietaires/service/annuaire_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	proprietairemodel "tgimmo_backend/internals/features/immobilier/proprietaires/model"
)

// AnnuaireProprietaires : consultation simple par ID.
// Un propriétaire inconnu rend (nil, nil) — le calculateur de liquidation
// en tire un aperçu à zéro sans cas d'erreur.
type AnnuaireProprietaires struct {
	DB *gorm.DB
}

func (a *AnnuaireProprietaires) Find(proprietaireID uuid.UUID) (*proprietairemodel.ProprietaireModel, error) {
	var m proprietairemodel.ProprietaireModel
	if err := a.DB.First(&m, "proprietaire_id = ?", proprietaireID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

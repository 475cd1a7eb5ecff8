// file: internals/features/immobilier/paiements/service/paiement_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	paiementmodel "tgimmo_backend/internals/features/immobilier/paiements/model"
)

// PaiementService : lecture des échéances pour la liquidation. La création
// et la validation des paiements se font ailleurs dans le back office — ce
// sous-système ne lit que des lignes déjà au statut valide.
type PaiementService struct {
	DB *gorm.DB
}

func (s *PaiementService) PaiementsValides(bailID uuid.UUID, mois, annee int) ([]paiementmodel.BailPaiementModel, error) {
	var paiements []paiementmodel.BailPaiementModel
	err := s.DB.
		Where(`
			bail_paiement_bail_id = ?
			AND bail_paiement_mois = ?
			AND bail_paiement_annee = ?
			AND bail_paiement_statut = ?
		`, bailID, mois, annee, paiementmodel.BailPaiementStatutValide).
		Find(&paiements).Error
	return paiements, err
}

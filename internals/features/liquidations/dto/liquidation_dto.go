// file: internals/features/liquidations/dto/liquidation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	liqmodel "tgimmo_backend/internals/features/liquidations/model"
)

/* ==============================================
   COMMIT
============================================== */

type LiquidationCommitDTO struct {
	ProprietaireID uuid.UUID `json:"proprietaire_id" validate:"required"`
	Mois           int       `json:"mois" validate:"required,min=1,max=12"`
	Annee          int       `json:"annee" validate:"required,min=2000,max=2100"`
}

/* ==============================================
   RÉPONSE
============================================== */

type LiquidationResponse struct {
	LiquidationID   uuid.UUID       `json:"liquidation_id"`
	ProprietaireID  uuid.UUID       `json:"proprietaire_id"`
	Mois            int16           `json:"mois"`
	Annee           int16           `json:"annee"`
	TotalRevenu     decimal.Decimal `json:"total_revenu"`
	TotalCharges    decimal.Decimal `json:"total_charges"`
	TotalHonoraires decimal.Decimal `json:"total_honoraires"`
	NetAPayer       decimal.Decimal `json:"net_a_payer"`
	Details         datatypes.JSON  `json:"details"`
	Statut          string          `json:"statut"`
	CreatedBy       uuid.UUID       `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ToLiquidationResponse(m liqmodel.LiquidationModel) LiquidationResponse {
	return LiquidationResponse{
		LiquidationID:   m.LiquidationID,
		ProprietaireID:  m.LiquidationProprietaireID,
		Mois:            m.LiquidationMois,
		Annee:           m.LiquidationAnnee,
		TotalRevenu:     m.LiquidationTotalRevenu,
		TotalCharges:    m.LiquidationTotalCharges,
		TotalHonoraires: m.LiquidationTotalHonoraires,
		NetAPayer:       m.LiquidationNetAPayer,
		Details:         m.LiquidationDetails,
		Statut:          m.LiquidationStatut,
		CreatedBy:       m.LiquidationCreatedBy,
		CreatedAt:       m.LiquidationCreatedAt,
	}
}

func ToLiquidationResponses(ms []liqmodel.LiquidationModel) []LiquidationResponse {
	out := make([]LiquidationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLiquidationResponse(m))
	}
	return out
}

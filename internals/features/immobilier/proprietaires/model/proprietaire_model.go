// file: internals/features/immobilier/proprietaires/model/proprietaire_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — propriétaire (bailleur)
============================================== */

type ProprietaireModel struct {
	// PK
	ProprietaireID uuid.UUID `gorm:"column:proprietaire_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"proprietaire_id"`

	// Identité
	ProprietaireNom   string  `gorm:"column:proprietaire_nom;type:varchar(120);not null" json:"proprietaire_nom"`
	ProprietaireEmail *string `gorm:"column:proprietaire_email;type:varchar(120)" json:"proprietaire_email,omitempty"`

	// Taux d'honoraires de gestion (% du loyer brut encaissé)
	ProprietaireTauxHonoraires decimal.Decimal `gorm:"column:proprietaire_taux_honoraires;type:numeric(5,2);not null;default:0" json:"proprietaire_taux_honoraires"`

	// Audit
	ProprietaireCreatedAt time.Time      `gorm:"column:proprietaire_created_at;type:timestamptz;not null;default:now()" json:"proprietaire_created_at"`
	ProprietaireUpdatedAt time.Time      `gorm:"column:proprietaire_updated_at;type:timestamptz;not null;default:now()" json:"proprietaire_updated_at"`
	ProprietaireDeletedAt gorm.DeletedAt `gorm:"column:proprietaire_deleted_at;type:timestamptz;index" json:"-"`
}

func (ProprietaireModel) TableName() string { return "proprietaires" }

func (m *ProprietaireModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ProprietaireCreatedAt.IsZero() {
		m.ProprietaireCreatedAt = now
	}
	m.ProprietaireUpdatedAt = now
	return nil
}

func (m *ProprietaireModel) BeforeUpdate(tx *gorm.DB) error {
	m.ProprietaireUpdatedAt = time.Now()
	return nil
}

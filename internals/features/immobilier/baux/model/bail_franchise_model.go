// file: internals/features/immobilier/baux/model/bail_franchise_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — franchise de loyer (remise temporaire)
   Invariant : les fenêtres d'un même bail ne se
   chevauchent pas (contrôlé au service).
============================================== */

type BailFranchiseModel struct {
	// PK
	BailFranchiseID uuid.UUID `gorm:"column:bail_franchise_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bail_franchise_id"`

	// FK
	BailFranchiseBailID uuid.UUID `gorm:"column:bail_franchise_bail_id;type:uuid;not null;index" json:"bail_franchise_bail_id"`

	BailFranchiseDateDebut time.Time       `gorm:"column:bail_franchise_date_debut;type:date;not null" json:"bail_franchise_date_debut"`
	BailFranchiseDateFin   time.Time       `gorm:"column:bail_franchise_date_fin;type:date;not null" json:"bail_franchise_date_fin"`
	BailFranchiseRemisePct decimal.Decimal `gorm:"column:bail_franchise_remise_pct;type:numeric(5,2);not null;check:bail_franchise_remise_pct>=0" json:"bail_franchise_remise_pct"`

	// Audit
	BailFranchiseCreatedAt time.Time `gorm:"column:bail_franchise_created_at;type:timestamptz;not null;default:now()" json:"bail_franchise_created_at"`
}

func (BailFranchiseModel) TableName() string { return "bail_franchises" }

func (m *BailFranchiseModel) BeforeCreate(tx *gorm.DB) error {
	if m.BailFranchiseCreatedAt.IsZero() {
		m.BailFranchiseCreatedAt = time.Now()
	}
	return nil
}

// CouvreDate indique si la fenêtre de franchise contient d (bornes incluses).
func (m *BailFranchiseModel) CouvreDate(d time.Time) bool {
	return !m.BailFranchiseDateDebut.After(d) && !m.BailFranchiseDateFin.Before(d)
}

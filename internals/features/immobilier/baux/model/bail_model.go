// file: internals/features/immobilier/baux/model/bail_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — statut du bail
============================== */

type BailStatut string

const (
	BailStatutActif     BailStatut = "actif"
	BailStatutEnAttente BailStatut = "en_attente"
	BailStatutResilie   BailStatut = "resilie"
)

/* ==============================================
   MODEL — bail (exactement une unité, un locataire)
============================================== */

type BailModel struct {
	// PK
	BailID uuid.UUID `gorm:"column:bail_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bail_id"`

	// FK
	BailUniteID uuid.UUID `gorm:"column:bail_unite_id;type:uuid;not null;index" json:"bail_unite_id"`
	// La gestion des locataires est hors périmètre ici — référence opaque
	BailLocataireID uuid.UUID `gorm:"column:bail_locataire_id;type:uuid;not null;index" json:"bail_locataire_id"`

	BailStatut       BailStatut      `gorm:"column:bail_statut;type:varchar(20);not null;default:'en_attente';index" json:"bail_statut"`
	BailLoyerMensuel decimal.Decimal `gorm:"column:bail_loyer_mensuel;type:numeric(14,2);not null" json:"bail_loyer_mensuel"`
	BailDateDebut    time.Time       `gorm:"column:bail_date_debut;type:date;not null" json:"bail_date_debut"`
	BailDateFin      *time.Time      `gorm:"column:bail_date_fin;type:date" json:"bail_date_fin,omitempty"`

	// Audit
	BailCreatedAt time.Time      `gorm:"column:bail_created_at;type:timestamptz;not null;default:now()" json:"bail_created_at"`
	BailUpdatedAt time.Time      `gorm:"column:bail_updated_at;type:timestamptz;not null;default:now()" json:"bail_updated_at"`
	BailDeletedAt gorm.DeletedAt `gorm:"column:bail_deleted_at;type:timestamptz;index" json:"-"`
}

func (BailModel) TableName() string { return "baux" }

func (m *BailModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BailStatut == "" {
		m.BailStatut = BailStatutEnAttente
	}
	if m.BailCreatedAt.IsZero() {
		m.BailCreatedAt = now
	}
	m.BailUpdatedAt = now
	return nil
}

func (m *BailModel) BeforeUpdate(tx *gorm.DB) error {
	m.BailUpdatedAt = time.Now()
	return nil
}

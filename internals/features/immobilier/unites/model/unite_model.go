// file: internals/features/immobilier/unites/model/unite_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — statut d'occupation
============================== */

type UniteStatut string

const (
	UniteStatutVacante     UniteStatut = "vacante"
	UniteStatutLouee       UniteStatut = "louee"
	UniteStatutMaintenance UniteStatut = "maintenance"
)

/* ==============================================
   MODEL — unité locative
   (la propriété passe par unite_proprietaires)
============================================== */

type UniteModel struct {
	// PK
	UniteID uuid.UUID `gorm:"column:unite_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"unite_id"`

	UniteLibelle string  `gorm:"column:unite_libelle;type:varchar(160);not null" json:"unite_libelle"`
	UniteAdresse *string `gorm:"column:unite_adresse;type:text" json:"unite_adresse,omitempty"`

	// Statut d'occupation — indépendant de la structure de propriété
	UniteStatut UniteStatut `gorm:"column:unite_statut;type:varchar(20);not null;default:'vacante';index" json:"unite_statut"`

	// Audit
	UniteCreatedAt time.Time      `gorm:"column:unite_created_at;type:timestamptz;not null;default:now()" json:"unite_created_at"`
	UniteUpdatedAt time.Time      `gorm:"column:unite_updated_at;type:timestamptz;not null;default:now()" json:"unite_updated_at"`
	UniteDeletedAt gorm.DeletedAt `gorm:"column:unite_deleted_at;type:timestamptz;index" json:"-"`
}

func (UniteModel) TableName() string { return "unites" }

func (m *UniteModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.UniteStatut == "" {
		m.UniteStatut = UniteStatutVacante
	}
	if m.UniteCreatedAt.IsZero() {
		m.UniteCreatedAt = now
	}
	m.UniteUpdatedAt = now
	return nil
}

func (m *UniteModel) BeforeUpdate(tx *gorm.DB) error {
	m.UniteUpdatedAt = time.Now()
	return nil
}

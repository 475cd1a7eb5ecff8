// file: internals/features/immobilier/ownership/model/unite_proprietaire_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — statut de version
============================== */

// actif    : fait partie de la répartition courante pour sa fenêtre de validité
// modifier : remplacé par une version plus récente (trace d'audit, jamais supprimé)
// archive  : sorti du périmètre (vente, fusion) — conservé en historique
type UniteProprietaireStatut string

const (
	UniteProprietaireStatutActif    UniteProprietaireStatut = "actif"
	UniteProprietaireStatutModifier UniteProprietaireStatut = "modifier"
	UniteProprietaireStatutArchive  UniteProprietaireStatut = "archive"
)

/* ==============================================
   MODEL — quote-part de propriété (versionnée)
============================================== */

type UniteProprietaireModel struct {
	// PK
	UniteProprietaireID uuid.UUID `gorm:"column:unite_proprietaire_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"unite_proprietaire_id"`

	// FK
	UniteProprietaireUniteID        uuid.UUID `gorm:"column:unite_proprietaire_unite_id;type:uuid;not null;index:idx_up_unite_statut,priority:1" json:"unite_proprietaire_unite_id"`
	UniteProprietaireProprietaireID uuid.UUID `gorm:"column:unite_proprietaire_proprietaire_id;type:uuid;not null;index" json:"unite_proprietaire_proprietaire_id"`

	// Fraction exacte + pourcentage dérivé (2 décimales)
	UniteProprietaireNumerateur   int64           `gorm:"column:unite_proprietaire_numerateur;type:bigint;not null" json:"unite_proprietaire_numerateur"`
	UniteProprietaireDenominateur int64           `gorm:"column:unite_proprietaire_denominateur;type:bigint;not null;check:unite_proprietaire_denominateur>0" json:"unite_proprietaire_denominateur"`
	UniteProprietairePourcentage  decimal.Decimal `gorm:"column:unite_proprietaire_pourcentage;type:numeric(5,2);not null" json:"unite_proprietaire_pourcentage"`

	// Fenêtre de validité — date_debut figée une fois la ligne remplacée
	UniteProprietaireDateDebut time.Time  `gorm:"column:unite_proprietaire_date_debut;type:date;not null" json:"unite_proprietaire_date_debut"`
	UniteProprietaireDateFin   *time.Time `gorm:"column:unite_proprietaire_date_fin;type:date" json:"unite_proprietaire_date_fin,omitempty"`

	// Versionnage
	UniteProprietaireStatut UniteProprietaireStatut `gorm:"column:unite_proprietaire_statut;type:varchar(20);not null;default:'actif';index:idx_up_unite_statut,priority:2" json:"unite_proprietaire_statut"`
	// Renvoi vers la ligne qui remplace celle-ci (statut=modifier uniquement)
	UniteProprietaireRemplaceParID *uuid.UUID `gorm:"column:unite_proprietaire_remplace_par_id;type:uuid" json:"unite_proprietaire_remplace_par_id,omitempty"`
	UniteProprietaireMotif         *string    `gorm:"column:unite_proprietaire_motif;type:text" json:"unite_proprietaire_motif,omitempty"`

	// Audit
	UniteProprietaireCreatedAt time.Time `gorm:"column:unite_proprietaire_created_at;type:timestamptz;not null;default:now()" json:"unite_proprietaire_created_at"`
	UniteProprietaireUpdatedAt time.Time `gorm:"column:unite_proprietaire_updated_at;type:timestamptz;not null;default:now()" json:"unite_proprietaire_updated_at"`
}

func (UniteProprietaireModel) TableName() string { return "unite_proprietaires" }

func (m *UniteProprietaireModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.UniteProprietaireStatut == "" {
		m.UniteProprietaireStatut = UniteProprietaireStatutActif
	}
	if m.UniteProprietaireCreatedAt.IsZero() {
		m.UniteProprietaireCreatedAt = now
	}
	m.UniteProprietaireUpdatedAt = now
	return nil
}

func (m *UniteProprietaireModel) BeforeUpdate(tx *gorm.DB) error {
	m.UniteProprietaireUpdatedAt = time.Now()
	return nil
}

/* ==============================================
   HELPERS — fenêtre de validité
============================================== */

// CouvreDate indique si la fenêtre de validité contient asOf
// (date_fin nulle = fenêtre ouverte).
func (m *UniteProprietaireModel) CouvreDate(asOf time.Time) bool {
	if m.UniteProprietaireDateDebut.After(asOf) {
		return false
	}
	if m.UniteProprietaireDateFin == nil {
		return true
	}
	return !m.UniteProprietaireDateFin.Before(asOf)
}

// file: internals/features/immobilier/ownership/service/registry_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	ownershipmodel "tgimmo_backend/internals/features/immobilier/ownership/model"
	unitemodel "tgimmo_backend/internals/features/immobilier/unites/model"
)

/* ==============================================
   ERREURS — validations faites avant toute écriture
============================================== */

var (
	ErrUniteInconnue    = errors.New("unité inconnue")
	ErrPartsVides       = errors.New("la liste des quote-parts est vide")
	ErrFractionInvalide = errors.New("fraction invalide : dénominateur non positif ou numérateur négatif")
	// La somme des pourcentages d'une fenêtre ne peut pas dépasser 100
	// (une sous-allocation reste permise : gestion partielle en propre)
	ErrSommeExcessive = errors.New("la somme des quote-parts dépasse 100%")
)

/* ==============================================
   ENTRÉES
============================================== */

type NouvellePart struct {
	ProprietaireID uuid.UUID
	Numerateur     int64
	Denominateur   int64
}

// Pourcentage dérivé de la fraction, 2 décimales.
func (p NouvellePart) Pourcentage() decimal.Decimal {
	return decimal.NewFromInt(p.Numerateur).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(p.Denominateur)).
		Round(2)
}

/* ==============================================
   LOGIQUE PURE — testable sans base
============================================== */

// ValiderParts contrôle la forme d'un jeu de quote-parts entrant.
func ValiderParts(parts []NouvellePart) error {
	if len(parts) == 0 {
		return ErrPartsVides
	}
	somme := decimal.Zero
	for _, p := range parts {
		if p.Denominateur <= 0 || p.Numerateur < 0 {
			return ErrFractionInvalide
		}
		somme = somme.Add(p.Pourcentage())
	}
	if somme.GreaterThan(decimal.NewFromInt(100)) {
		return ErrSommeExcessive
	}
	return nil
}

// PartitionAt sélectionne la répartition valable à asOf parmi des lignes
// chargées : les lignes actif couvrant la date priment ; à défaut, les
// lignes modifier couvrant la date (l'historique remplacé). Les lignes
// archive ne participent jamais.
func PartitionAt(lignes []ownershipmodel.UniteProprietaireModel, asOf time.Time) []ownershipmodel.UniteProprietaireModel {
	var actives, remplacees []ownershipmodel.UniteProprietaireModel
	for _, l := range lignes {
		if !l.CouvreDate(asOf) {
			continue
		}
		switch l.UniteProprietaireStatut {
		case ownershipmodel.UniteProprietaireStatutActif:
			actives = append(actives, l)
		case ownershipmodel.UniteProprietaireStatutModifier:
			remplacees = append(remplacees, l)
		}
	}
	if len(actives) > 0 {
		return actives
	}
	return remplacees
}

// EnPartsParProprietaire projette une partition en {propriétaire: pourcentage}.
func EnPartsParProprietaire(lignes []ownershipmodel.UniteProprietaireModel) map[uuid.UUID]decimal.Decimal {
	out := make(map[uuid.UUID]decimal.Decimal, len(lignes))
	for _, l := range lignes {
		out[l.UniteProprietaireProprietaireID] = out[l.UniteProprietaireProprietaireID].
			Add(l.UniteProprietairePourcentage)
	}
	return out
}

// ClotureAncienne : mise à jour calculée d'une ligne remplacée.
// NouvelleFin nil = la fenêtre d'origine reste telle quelle.
type ClotureAncienne struct {
	LigneID     uuid.UUID
	NouvelleFin *time.Time
}

// PreparerSupersede construit, sans toucher à la base, les lignes du nouveau
// jeu et les clôtures des lignes remplacées :
//   - les nouvelles lignes héritent de la borne de fin de la fenêtre
//     remplacée (la plus tardive si elles divergent ; nil si l'une au moins
//     était ouverte) — remplacer une fenêtre historique close ne doit jamais
//     produire des lignes ouvertes qui chevauchent une fenêtre ultérieure ;
//   - une ligne remplacée n'est close à la veille de dateEffet que si cette
//     veille tombe dans sa fenêtre : jamais de date_fin antérieure à
//     date_debut, qui rendrait l'historique inatteignable.
func PreparerSupersede(
	uniteID uuid.UUID,
	anciennes []ownershipmodel.UniteProprietaireModel,
	parts []NouvellePart,
	dateEffet time.Time,
	motif string,
) (nouvelles []ownershipmodel.UniteProprietaireModel, clotures []ClotureAncienne) {
	var finHeritee *time.Time
	for i := range anciennes {
		fin := anciennes[i].UniteProprietaireDateFin
		if fin == nil {
			finHeritee = nil
			break
		}
		if finHeritee == nil || fin.After(*finHeritee) {
			f := *fin
			finHeritee = &f
		}
	}

	var motifPtr *string
	if motif != "" {
		motifPtr = &motif
	}

	nouvelles = make([]ownershipmodel.UniteProprietaireModel, 0, len(parts))
	for _, p := range parts {
		nouvelles = append(nouvelles, ownershipmodel.UniteProprietaireModel{
			UniteProprietaireID:             uuid.New(),
			UniteProprietaireUniteID:        uniteID,
			UniteProprietaireProprietaireID: p.ProprietaireID,
			UniteProprietaireNumerateur:     p.Numerateur,
			UniteProprietaireDenominateur:   p.Denominateur,
			UniteProprietairePourcentage:    p.Pourcentage(),
			UniteProprietaireDateDebut:      dateEffet,
			UniteProprietaireDateFin:        finHeritee,
			UniteProprietaireStatut:         ownershipmodel.UniteProprietaireStatutActif,
			UniteProprietaireMotif:          motifPtr,
		})
	}

	finAncienne := dateEffet.AddDate(0, 0, -1)
	clotures = make([]ClotureAncienne, 0, len(anciennes))
	for i := range anciennes {
		cl := ClotureAncienne{LigneID: anciennes[i].UniteProprietaireID}
		fin := anciennes[i].UniteProprietaireDateFin
		if (fin == nil || fin.After(finAncienne)) &&
			!finAncienne.Before(anciennes[i].UniteProprietaireDateDebut) {
			f := finAncienne
			cl.NouvelleFin = &f
		}
		clotures = append(clotures, cl)
	}
	return nouvelles, clotures
}

/* ==============================================
   REGISTRE (GORM)
============================================== */

type OwnershipRegistry struct {
	DB *gorm.DB
}

// CurrentShares retourne la répartition de propriété d'une unité à une date.
// Une date passée rend la répartition alors en vigueur, même remplacée depuis.
func (r *OwnershipRegistry) CurrentShares(uniteID uuid.UUID, asOf time.Time) ([]ownershipmodel.UniteProprietaireModel, error) {
	var lignes []ownershipmodel.UniteProprietaireModel
	if err := r.DB.
		Where("unite_proprietaire_unite_id = ? AND unite_proprietaire_statut <> ?",
			uniteID, ownershipmodel.UniteProprietaireStatutArchive).
		Order("unite_proprietaire_date_debut ASC, unite_proprietaire_created_at ASC").
		Find(&lignes).Error; err != nil {
		return nil, err
	}
	return PartitionAt(lignes, asOf), nil
}

// History retourne toutes les versions d'une unité, anciennes comprises.
func (r *OwnershipRegistry) History(uniteID uuid.UUID) ([]ownershipmodel.UniteProprietaireModel, error) {
	var lignes []ownershipmodel.UniteProprietaireModel
	err := r.DB.
		Where("unite_proprietaire_unite_id = ?", uniteID).
		Order("unite_proprietaire_date_debut ASC, unite_proprietaire_created_at ASC").
		Find(&lignes).Error
	return lignes, err
}

// PartsActives satisfait l'interface LecteurParts du calculateur de
// liquidation : lignes actif du propriétaire couvrant asOf.
func (r *OwnershipRegistry) PartsActives(proprietaireID uuid.UUID, asOf time.Time) ([]ownershipmodel.UniteProprietaireModel, error) {
	var lignes []ownershipmodel.UniteProprietaireModel
	err := r.DB.
		Where(`
			unite_proprietaire_proprietaire_id = ?
			AND unite_proprietaire_statut = ?
			AND unite_proprietaire_date_debut <= ?
			AND (unite_proprietaire_date_fin IS NULL OR unite_proprietaire_date_fin >= ?)
		`, proprietaireID, ownershipmodel.UniteProprietaireStatutActif, asOf, asOf).
		Find(&lignes).Error
	return lignes, err
}

// Supersede remplace la répartition ouverte à dateDebutRemplacee par un
// nouveau jeu de quote-parts effectif à dateEffet, sans rien supprimer :
//   - les lignes actif de la fenêtre visée — appariées par (unité, date_debut),
//     jamais "toutes les lignes actives", pour ne pas écraser une fenêtre
//     future sans rapport — passent en modifier, avec renvoi vers la ligne
//     de tête du nouveau jeu ;
//   - les nouvelles lignes naissent actif à dateEffet, bornes de fenêtre
//     calculées par PreparerSupersede.
func (r *OwnershipRegistry) Supersede(
	uniteID uuid.UUID,
	dateDebutRemplacee time.Time,
	parts []NouvellePart,
	dateEffet time.Time,
	motif string,
) ([]ownershipmodel.UniteProprietaireModel, error) {
	if err := ValiderParts(parts); err != nil {
		return nil, err
	}

	var inserees []ownershipmodel.UniteProprietaireModel
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var unite unitemodel.UniteModel
		if err := tx.First(&unite, "unite_id = ?", uniteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUniteInconnue
			}
			return err
		}

		var anciennes []ownershipmodel.UniteProprietaireModel
		if err := tx.
			Where(`
				unite_proprietaire_unite_id = ?
				AND unite_proprietaire_statut = ?
				AND unite_proprietaire_date_debut = ?
			`, uniteID, ownershipmodel.UniteProprietaireStatutActif, dateDebutRemplacee).
			Find(&anciennes).Error; err != nil {
			return err
		}

		nouvelles, clotures := PreparerSupersede(uniteID, anciennes, parts, dateEffet, motif)

		inserees = make([]ownershipmodel.UniteProprietaireModel, 0, len(nouvelles))
		for i := range nouvelles {
			if err := tx.Create(&nouvelles[i]).Error; err != nil {
				return err
			}
			inserees = append(inserees, nouvelles[i])
		}

		// Tête du nouveau jeu : cible du renvoi d'audit des lignes remplacées
		teteID := inserees[0].UniteProprietaireID
		for _, cl := range clotures {
			maj := map[string]any{
				"unite_proprietaire_statut":          ownershipmodel.UniteProprietaireStatutModifier,
				"unite_proprietaire_remplace_par_id": teteID,
				"unite_proprietaire_updated_at":      time.Now(),
			}
			// date_debut reste figée ; la fin ne bouge que si PreparerSupersede
			// a calculé une clôture valable
			if cl.NouvelleFin != nil {
				maj["unite_proprietaire_date_fin"] = *cl.NouvelleFin
			}
			if err := tx.Model(&ownershipmodel.UniteProprietaireModel{}).
				Where("unite_proprietaire_id = ?", cl.LigneID).
				Updates(maj).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserees, nil
}

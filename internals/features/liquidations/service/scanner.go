// file: internals/features/liquidations/service/scanner.go
package service

import (
	"github.com/google/uuid"
)

/* ==============================================
   DÉCOUVERTE — "qui a peut-être de l'argent ici"
   via la jointure paiement → bail → unité →
   quote-part, structurellement différente de
   l'itération par parts du calculateur. Quand les
   deux divergent (quote-parts manquantes), c'est
   un symptôme à exposer, pas à masquer.
============================================== */

type SourceEnAttente interface {
	// Propriétaires atteints par au moins un paiement valide de la période.
	ProprietairesAvecPaiementsValides(mois, annee int) ([]uuid.UUID, error)
	// Propriétaires déjà liquidés pour la période.
	ProprietairesDejaLiquides(mois, annee int) ([]uuid.UUID, error)
	// Lignes brutes de la jointure, pour le diagnostic support.
	LignesDiagnostic(mois, annee int) ([]LigneDiagnostic, error)
}

// LigneDiagnostic : une ligne brute paiement/quote-part. ProprietaireID nul
// = paiement validé dont l'unité n'a aucune quote-part active (orphelin).
type LigneDiagnostic struct {
	PaiementID     uuid.UUID  `json:"paiement_id"`
	BailID         uuid.UUID  `json:"bail_id"`
	UniteID        uuid.UUID  `json:"unite_id"`
	ProprietaireID *uuid.UUID `json:"proprietaire_id,omitempty"`
}

type ElementEnAttente struct {
	ProprietaireID uuid.UUID         `json:"proprietaire_id"`
	Apercu         Apercu            `json:"apercu"`
	Diagnostics    []LigneDiagnostic `json:"diagnostics,omitempty"`
}

type ResultatScan struct {
	Elements []ElementEnAttente `json:"elements"`
	// Paiements validés sans quote-part active — uniquement avec avecDetails
	Orphelins []LigneDiagnostic `json:"orphelins,omitempty"`
}

/* ==============================================
   SCANNER
============================================== */

type Scanner struct {
	Source      SourceEnAttente
	Calculateur *Calculateur
}

// ScanEnAttente liste les propriétaires ayant une activité liquidable sur la
// période : découverts par la jointure paiements, moins ceux déjà liquidés,
// chacun passé au calculateur. Un candidat sans aucun justificatif (ni
// paiement ni charge) est écarté ; un net à zéro mais justifié reste inclus.
// avecDetails attache les lignes brutes de jointure — toujours un paramètre
// explicite, jamais déduit de l'état de la requête.
func (s *Scanner) ScanEnAttente(mois, annee int, avecDetails bool) (ResultatScan, error) {
	if !PeriodeValide(mois, annee) {
		return ResultatScan{}, ErrPeriodeInvalide
	}

	candidats, err := s.Source.ProprietairesAvecPaiementsValides(mois, annee)
	if err != nil {
		return ResultatScan{}, err
	}
	dejaFaits, err := s.Source.ProprietairesDejaLiquides(mois, annee)
	if err != nil {
		return ResultatScan{}, err
	}
	exclus := make(map[uuid.UUID]bool, len(dejaFaits))
	for _, id := range dejaFaits {
		exclus[id] = true
	}

	var diagnostics []LigneDiagnostic
	parProprietaire := map[uuid.UUID][]LigneDiagnostic{}
	var orphelins []LigneDiagnostic
	if avecDetails {
		diagnostics, err = s.Source.LignesDiagnostic(mois, annee)
		if err != nil {
			return ResultatScan{}, err
		}
		for _, l := range diagnostics {
			if l.ProprietaireID == nil {
				orphelins = append(orphelins, l)
				continue
			}
			parProprietaire[*l.ProprietaireID] = append(parProprietaire[*l.ProprietaireID], l)
		}
	}

	res := ResultatScan{}
	vus := make(map[uuid.UUID]bool, len(candidats))
	for _, id := range candidats {
		if vus[id] || exclus[id] {
			continue
		}
		vus[id] = true

		ap, err := s.Calculateur.Compute(id, mois, annee)
		if err != nil {
			return ResultatScan{}, err
		}
		if ap.Justificatifs.Vide() {
			continue
		}

		el := ElementEnAttente{ProprietaireID: id, Apercu: ap}
		if avecDetails {
			el.Diagnostics = parProprietaire[id]
		}
		res.Elements = append(res.Elements, el)
	}
	if avecDetails {
		res.Orphelins = orphelins
	}
	return res, nil
}

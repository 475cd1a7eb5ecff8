// file: internals/features/liquidations/service/scanner_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ==============================================
   DOUBLURE — source de découverte
============================================== */

type fauxSource struct {
	candidats   []uuid.UUID
	dejaFaits   []uuid.UUID
	diagnostics []LigneDiagnostic
}

func (s *fauxSource) ProprietairesAvecPaiementsValides(mois, annee int) ([]uuid.UUID, error) {
	return s.candidats, nil
}

func (s *fauxSource) ProprietairesDejaLiquides(mois, annee int) ([]uuid.UUID, error) {
	return s.dejaFaits, nil
}

func (s *fauxSource) LignesDiagnostic(mois, annee int) ([]LigneDiagnostic, error) {
	return s.diagnostics, nil
}

/* ==============================================
   TESTS
============================================== */

func TestScanExclutLesProprietairesDejaLiquides(t *testing.T) {
	f := nouvellesDonnees()
	proprioA := f.ajouteProprietaire("10")
	proprioB := f.ajouteProprietaire("10")
	for _, p := range []uuid.UUID{proprioA, proprioB} {
		unite := uuid.New()
		f.ajoutePart(p, unite, "100")
		bail := f.ajouteBail(unite)
		f.ajoutePaiement(bail, 5, 2024, "1000", nil)
	}

	sc := &Scanner{
		Source:      &fauxSource{candidats: []uuid.UUID{proprioA, proprioB}, dejaFaits: []uuid.UUID{proprioB}},
		Calculateur: calculateur(f),
	}

	res, err := sc.ScanEnAttente(5, 2024, false)
	require.NoError(t, err)
	require.Len(t, res.Elements, 1)
	assert.Equal(t, proprioA, res.Elements[0].ProprietaireID)
}

func TestScanEcarteLesCandidatsSansJustificatif(t *testing.T) {
	f := nouvellesDonnees()
	// découvert par la jointure mais sans quote-part côté calcul :
	// aucun paiement, aucune charge → écarté
	fantome := f.ajouteProprietaire("10")

	sc := &Scanner{
		Source:      &fauxSource{candidats: []uuid.UUID{fantome}},
		Calculateur: calculateur(f),
	}

	res, err := sc.ScanEnAttente(5, 2024, false)
	require.NoError(t, err)
	assert.Empty(t, res.Elements)
}

func TestScanGardeUnNetZeroJustifie(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("0")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	// encaissement intégralement absorbé par une charge : net zéro, mais justifié
	f.ajoutePaiement(bail, 5, 2024, "100", nil)
	f.ajouteCharge(proprio, "100")

	sc := &Scanner{
		Source:      &fauxSource{candidats: []uuid.UUID{proprio}},
		Calculateur: calculateur(f),
	}

	res, err := sc.ScanEnAttente(5, 2024, false)
	require.NoError(t, err)
	require.Len(t, res.Elements, 1, "un zéro légitime ne doit pas être caché")
	assert.True(t, res.Elements[0].Apercu.NetAPayer.IsZero())
}

func TestScanDetailsExplicites(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	paiementID := f.ajoutePaiement(bail, 5, 2024, "1000", nil)

	ligne := LigneDiagnostic{PaiementID: paiementID, BailID: bail, UniteID: unite, ProprietaireID: &proprio}
	orphelin := LigneDiagnostic{PaiementID: uuid.New(), BailID: uuid.New(), UniteID: uuid.New()}

	src := &fauxSource{
		candidats:   []uuid.UUID{proprio},
		diagnostics: []LigneDiagnostic{ligne, orphelin},
	}
	sc := &Scanner{Source: src, Calculateur: calculateur(f)}

	// sans le drapeau : aucun diagnostic attaché
	res, err := sc.ScanEnAttente(5, 2024, false)
	require.NoError(t, err)
	require.Len(t, res.Elements, 1)
	assert.Empty(t, res.Elements[0].Diagnostics)
	assert.Empty(t, res.Orphelins)

	// avec le drapeau : lignes brutes + orphelins (paiement sans quote-part)
	res, err = sc.ScanEnAttente(5, 2024, true)
	require.NoError(t, err)
	require.Len(t, res.Elements, 1)
	assert.Equal(t, []LigneDiagnostic{ligne}, res.Elements[0].Diagnostics)
	assert.Equal(t, []LigneDiagnostic{orphelin}, res.Orphelins)
}

func TestScanPeriodeInvalide(t *testing.T) {
	sc := &Scanner{Source: &fauxSource{}, Calculateur: calculateur(nouvellesDonnees())}
	_, err := sc.ScanEnAttente(13, 2024, false)
	assert.ErrorIs(t, err, ErrPeriodeInvalide)
}

// file: internals/features/liquidations/service/calculator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bailmodel "tgimmo_backend/internals/features/immobilier/baux/model"
	chargemodel "tgimmo_backend/internals/features/immobilier/charges/model"
	ownershipmodel "tgimmo_backend/internals/features/immobilier/ownership/model"
	paiementmodel "tgimmo_backend/internals/features/immobilier/paiements/model"
	proprietairemodel "tgimmo_backend/internals/features/immobilier/proprietaires/model"
)

/* ==============================================
   DOUBLURES — collaborateurs en mémoire
============================================== */

type fauxDonnees struct {
	proprietaires map[uuid.UUID]*proprietairemodel.ProprietaireModel
	parts         map[uuid.UUID][]ownershipmodel.UniteProprietaireModel
	baux          map[uuid.UUID][]bailmodel.BailModel
	paiements     map[uuid.UUID][]paiementmodel.BailPaiementModel
	charges       map[uuid.UUID][]chargemodel.ImputationChargeModel
}

func nouvellesDonnees() *fauxDonnees {
	return &fauxDonnees{
		proprietaires: map[uuid.UUID]*proprietairemodel.ProprietaireModel{},
		parts:         map[uuid.UUID][]ownershipmodel.UniteProprietaireModel{},
		baux:          map[uuid.UUID][]bailmodel.BailModel{},
		paiements:     map[uuid.UUID][]paiementmodel.BailPaiementModel{},
		charges:       map[uuid.UUID][]chargemodel.ImputationChargeModel{},
	}
}

func (f *fauxDonnees) Find(id uuid.UUID) (*proprietairemodel.ProprietaireModel, error) {
	return f.proprietaires[id], nil
}

func (f *fauxDonnees) PartsActives(id uuid.UUID, asOf time.Time) ([]ownershipmodel.UniteProprietaireModel, error) {
	var out []ownershipmodel.UniteProprietaireModel
	for _, p := range f.parts[id] {
		if p.UniteProprietaireStatut == ownershipmodel.UniteProprietaireStatutActif && p.CouvreDate(asOf) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fauxDonnees) BauxPourUnite(uniteID uuid.UUID) ([]bailmodel.BailModel, error) {
	return f.baux[uniteID], nil
}

func (f *fauxDonnees) PaiementsValides(bailID uuid.UUID, mois, annee int) ([]paiementmodel.BailPaiementModel, error) {
	var out []paiementmodel.BailPaiementModel
	for _, p := range f.paiements[bailID] {
		if p.BailPaiementStatut == paiementmodel.BailPaiementStatutValide &&
			int(p.BailPaiementMois) == mois && int(p.BailPaiementAnnee) == annee {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fauxDonnees) ChargesNonPayees(id uuid.UUID, mois, annee int) ([]chargemodel.ImputationChargeModel, error) {
	return f.charges[id], nil
}

/* ==============================================
   CONSTRUCTION DE SCÉNARIOS
============================================== */

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func (f *fauxDonnees) ajouteProprietaire(taux string) uuid.UUID {
	id := uuid.New()
	f.proprietaires[id] = &proprietairemodel.ProprietaireModel{
		ProprietaireID:             id,
		ProprietaireNom:            "Propriétaire " + id.String()[:8],
		ProprietaireTauxHonoraires: dec(taux),
	}
	return id
}

func (f *fauxDonnees) ajoutePart(proprietaireID, uniteID uuid.UUID, pct string) {
	f.parts[proprietaireID] = append(f.parts[proprietaireID], ownershipmodel.UniteProprietaireModel{
		UniteProprietaireID:             uuid.New(),
		UniteProprietaireUniteID:        uniteID,
		UniteProprietaireProprietaireID: proprietaireID,
		UniteProprietairePourcentage:    dec(pct),
		UniteProprietaireDateDebut:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		UniteProprietaireStatut:         ownershipmodel.UniteProprietaireStatutActif,
	})
}

func (f *fauxDonnees) ajouteBail(uniteID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.baux[uniteID] = append(f.baux[uniteID], bailmodel.BailModel{
		BailID:           id,
		BailUniteID:      uniteID,
		BailStatut:       bailmodel.BailStatutActif,
		BailLoyerMensuel: dec("1000"),
	})
	return id
}

func (f *fauxDonnees) ajoutePaiement(bailID uuid.UUID, mois, annee int, du string, paye *decimal.Decimal) uuid.UUID {
	id := uuid.New()
	f.paiements[bailID] = append(f.paiements[bailID], paiementmodel.BailPaiementModel{
		BailPaiementID:          id,
		BailPaiementBailID:      bailID,
		BailPaiementMois:        int16(mois),
		BailPaiementAnnee:       int16(annee),
		BailPaiementMontantDu:   dec(du),
		BailPaiementMontantPaye: paye,
		BailPaiementStatut:      paiementmodel.BailPaiementStatutValide,
	})
	return id
}

func (f *fauxDonnees) ajouteCharge(proprietaireID uuid.UUID, montant string) uuid.UUID {
	id := uuid.New()
	f.charges[proprietaireID] = append(f.charges[proprietaireID], chargemodel.ImputationChargeModel{
		ImputationChargeID:       id,
		ImputationChargeLibelle:  "charge test",
		ImputationChargeMontant:  dec(montant),
		ImputationChargeImputeA:  chargemodel.ChargeImputeAProprietaire,
		ImputationChargeIDImpute: proprietaireID,
		ImputationChargeStatut:   chargemodel.ChargeStatutNonPaye,
	})
	return id
}

func calculateur(f *fauxDonnees) *Calculateur {
	return &Calculateur{
		Proprietaires: f,
		Parts:         f,
		Baux:          f,
		Paiements:     f,
		Charges:       f,
		Now:           func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) },
	}
}

/* ==============================================
   TESTS
============================================== */

func TestComputeScenarioComplet(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	paiementID := f.ajoutePaiement(bail, 5, 2024, "1000", nil)
	chargeID := f.ajouteCharge(proprio, "100")

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)

	assert.True(t, ap.TotalRevenu.Equal(dec("1000")), "revenu = %s", ap.TotalRevenu)
	assert.True(t, ap.TotalHonoraires.Equal(dec("100")), "honoraires = %s", ap.TotalHonoraires)
	assert.True(t, ap.TotalCharges.Equal(dec("100")), "charges = %s", ap.TotalCharges)
	assert.True(t, ap.NetAPayer.Equal(dec("800")), "net = %s", ap.NetAPayer)

	assert.Contains(t, ap.Justificatifs.PaiementIDs, paiementID)
	assert.Contains(t, ap.Justificatifs.ChargeIDs, chargeID)
	assert.Contains(t, ap.Justificatifs.UniteIDs, unite)
	assert.Contains(t, ap.Justificatifs.BailIDs, bail)
}

func TestComputeProportionnaliteDesParts(t *testing.T) {
	f := nouvellesDonnees()
	proprioA := f.ajouteProprietaire("0")
	proprioB := f.ajouteProprietaire("0")
	unite := uuid.New()
	f.ajoutePart(proprioA, unite, "60")
	f.ajoutePart(proprioB, unite, "40")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)

	c := calculateur(f)
	apA, err := c.Compute(proprioA, 5, 2024)
	require.NoError(t, err)
	apB, err := c.Compute(proprioB, 5, 2024)
	require.NoError(t, err)

	assert.True(t, apA.TotalRevenu.Equal(dec("600")), "part A = %s", apA.TotalRevenu)
	assert.True(t, apB.TotalRevenu.Equal(dec("400")), "part B = %s", apB.TotalRevenu)
	// les contributions recomposent exactement le paiement
	assert.True(t, apA.TotalRevenu.Add(apB.TotalRevenu).Equal(dec("1000")))
}

func TestComputeExclutQuotePartNulle(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "0")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)

	assert.True(t, ap.TotalRevenu.IsZero())
	assert.Empty(t, ap.Justificatifs.UniteIDs, "une part nulle exclut l'unité entière")
	assert.Empty(t, ap.Justificatifs.PaiementIDs)
}

func TestComputeMontantPayePrimeSurDu(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("0")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	// montant payé renseigné → il prime ; absent → le dû est réputé encaissé
	f.ajoutePaiement(bail, 5, 2024, "1000", decPtr("900"))
	f.ajoutePaiement(bail, 5, 2024, "500", nil)

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)
	assert.True(t, ap.TotalRevenu.Equal(dec("1400")), "revenu = %s", ap.TotalRevenu)
}

func TestComputeChargeNonDoubleeEntreLesDeuxChemins(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("0")
	chargeID := f.ajouteCharge(proprio, "80")
	// la même ligne ressort par le chemin payeur : elle ne compte qu'une fois
	doublon := f.charges[proprio][0]
	f.charges[proprio] = append(f.charges[proprio], doublon)

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)

	assert.True(t, ap.TotalCharges.Equal(dec("80")), "charges = %s", ap.TotalCharges)
	assert.Equal(t, []uuid.UUID{chargeID}, ap.Justificatifs.ChargeIDs)
}

func TestComputeArrondiHonorairesDemiSuperieur(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("5")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000.50", nil)

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)
	// 1000.50 × 5% = 50.025 → 50.03 (demi vers le haut, 2 décimales)
	assert.True(t, ap.TotalHonoraires.Equal(dec("50.03")), "honoraires = %s", ap.TotalHonoraires)
}

func TestComputeProprietaireInconnuApercuZero(t *testing.T) {
	f := nouvellesDonnees()

	ap, err := calculateur(f).Compute(uuid.New(), 5, 2024)
	require.NoError(t, err, "inconnu n'est pas une erreur — le scanner en dépend")

	assert.True(t, ap.TotalRevenu.IsZero())
	assert.True(t, ap.NetAPayer.IsZero())
	assert.True(t, ap.Justificatifs.Vide())
}

func TestComputePeriodeInvalide(t *testing.T) {
	f := nouvellesDonnees()
	_, err := calculateur(f).Compute(uuid.New(), 13, 2024)
	assert.ErrorIs(t, err, ErrPeriodeInvalide)

	_, err = calculateur(f).Compute(uuid.New(), 5, 1887)
	assert.ErrorIs(t, err, ErrPeriodeInvalide)
}

func TestComputePaiementZeroResteJustificatif(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	paiementID := f.ajoutePaiement(bail, 5, 2024, "0", nil)

	ap, err := calculateur(f).Compute(proprio, 5, 2024)
	require.NoError(t, err)

	assert.True(t, ap.TotalRevenu.IsZero())
	// contribution nulle mais la période a été examinée : l'ID reste une preuve
	assert.Contains(t, ap.Justificatifs.PaiementIDs, paiementID)
	assert.False(t, ap.Justificatifs.Vide())
}

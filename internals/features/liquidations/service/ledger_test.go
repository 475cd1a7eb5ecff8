// file: internals/features/liquidations/service/ledger_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liqmodel "tgimmo_backend/internals/features/liquidations/model"
)

/* ==============================================
   DOUBLURE — store transactionnel en mémoire
   avec rollback réel et pannes injectables
============================================== */

type fauxStore struct {
	liquidations  []liqmodel.LiquidationModel
	chargesPayees map[uuid.UUID]time.Time

	panneInserer error
	panneMarquer error
}

func nouveauFauxStore() *fauxStore {
	return &fauxStore{chargesPayees: map[uuid.UUID]time.Time{}}
}

func (s *fauxStore) DansTransaction(fn func(tx LiquidationTx) error) error {
	// instantané avant transaction — restauré si fn échoue
	avantLiq := make([]liqmodel.LiquidationModel, len(s.liquidations))
	copy(avantLiq, s.liquidations)
	avantCharges := make(map[uuid.UUID]time.Time, len(s.chargesPayees))
	for k, v := range s.chargesPayees {
		avantCharges[k] = v
	}

	if err := fn(&fauxTx{store: s}); err != nil {
		s.liquidations = avantLiq
		s.chargesPayees = avantCharges
		return err
	}
	return nil
}

func (s *fauxStore) Trouver(id uuid.UUID) (*liqmodel.LiquidationModel, error) {
	for i := range s.liquidations {
		if s.liquidations[i].LiquidationID == id {
			return &s.liquidations[i], nil
		}
	}
	return nil, nil
}

func (s *fauxStore) Lister(mois, annee, offset, limit int) ([]liqmodel.LiquidationModel, int64, error) {
	return s.liquidations, int64(len(s.liquidations)), nil
}

type fauxTx struct {
	store *fauxStore
}

func (t *fauxTx) Existe(proprietaireID uuid.UUID, mois, annee int) (bool, error) {
	for _, l := range t.store.liquidations {
		if l.LiquidationProprietaireID == proprietaireID &&
			int(l.LiquidationMois) == mois && int(l.LiquidationAnnee) == annee {
			return true, nil
		}
	}
	return false, nil
}

func (t *fauxTx) Inserer(m *liqmodel.LiquidationModel) error {
	if t.store.panneInserer != nil {
		return t.store.panneInserer
	}
	deja, _ := t.Existe(m.LiquidationProprietaireID, int(m.LiquidationMois), int(m.LiquidationAnnee))
	if deja {
		return ErrDejaLiquidee
	}
	if m.LiquidationID == uuid.Nil {
		m.LiquidationID = uuid.New()
	}
	t.store.liquidations = append(t.store.liquidations, *m)
	return nil
}

func (t *fauxTx) MarquerChargesPayees(ids []uuid.UUID, quand time.Time) error {
	if t.store.panneMarquer != nil {
		return t.store.panneMarquer
	}
	for _, id := range ids {
		t.store.chargesPayees[id] = quand
	}
	return nil
}

/* ==============================================
   TESTS
============================================== */

func registreDeTest(f *fauxDonnees, store *fauxStore) *Registre {
	return &Registre{Store: store, Calculateur: calculateur(f)}
}

func TestCommitEtablitLaLiquidationEtSoldeLesCharges(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)
	chargeID := f.ajouteCharge(proprio, "100")

	store := nouveauFauxStore()
	m, err := registreDeTest(f, store).Commit(proprio, 5, 2024, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.True(t, m.LiquidationTotalRevenu.Equal(dec("1000")))
	assert.True(t, m.LiquidationTotalHonoraires.Equal(dec("100")))
	assert.True(t, m.LiquidationTotalCharges.Equal(dec("100")))
	assert.True(t, m.LiquidationNetAPayer.Equal(dec("800")))
	assert.Equal(t, "valide", m.LiquidationStatut)
	assert.NotEmpty(t, m.LiquidationDetails)

	// write-back : la charge consommée est soldée
	_, payee := store.chargesPayees[chargeID]
	assert.True(t, payee, "la charge doit passer en paye au commit")
}

func TestCommitIdempotent(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)

	store := nouveauFauxStore()
	r := registreDeTest(f, store)

	_, err := r.Commit(proprio, 5, 2024, uuid.New())
	require.NoError(t, err)

	_, err = r.Commit(proprio, 5, 2024, uuid.New())
	assert.ErrorIs(t, err, ErrDejaLiquidee)
	assert.Len(t, store.liquidations, 1, "exactement une ligne, jamais d'upsert")
}

func TestCommitAtomique(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)
	f.ajouteCharge(proprio, "100")

	store := nouveauFauxStore()
	store.panneMarquer = errors.New("panne après insertion")

	_, err := registreDeTest(f, store).Commit(proprio, 5, 2024, uuid.New())
	require.Error(t, err)

	// ni liquidation ni write-back : tout ou rien
	assert.Empty(t, store.liquidations)
	assert.Empty(t, store.chargesPayees)
}

func TestCommitRecalculePlutotQueReutiliserUnApercu(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("0")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	bail := f.ajouteBail(unite)
	f.ajoutePaiement(bail, 5, 2024, "1000", nil)

	r := registreDeTest(f, nouveauFauxStore())

	// aperçu pris, puis l'état bouge avant le commit
	ap, err := r.Calculateur.Compute(proprio, 5, 2024)
	require.NoError(t, err)
	require.True(t, ap.TotalRevenu.Equal(dec("1000")))

	f.ajoutePaiement(bail, 5, 2024, "250", nil)

	m, err := r.Commit(proprio, 5, 2024, uuid.New())
	require.NoError(t, err)
	assert.True(t, m.LiquidationTotalRevenu.Equal(dec("1250")),
		"le commit doit refléter l'état courant, pas l'aperçu périmé")
}

func TestCommitPeriodeInvalide(t *testing.T) {
	r := registreDeTest(nouvellesDonnees(), nouveauFauxStore())
	_, err := r.Commit(uuid.New(), 0, 2024, uuid.New())
	assert.ErrorIs(t, err, ErrPeriodeInvalide)
}

func TestCommitRefuseProprietaireInconnu(t *testing.T) {
	// L'aperçu à zéro reste consultable, mais engager un UUID inconnu
	// écrirait une ligne vide qui verrouillerait la période
	store := nouveauFauxStore()
	r := registreDeTest(nouvellesDonnees(), store)

	_, err := r.Commit(uuid.New(), 5, 2024, uuid.New())
	assert.ErrorIs(t, err, ErrRienALiquider)
	assert.Empty(t, store.liquidations)
}

func TestCommitRefuseUnePeriodeSansJustificatif(t *testing.T) {
	f := nouvellesDonnees()
	proprio := f.ajouteProprietaire("10")
	unite := uuid.New()
	f.ajoutePart(proprio, unite, "100")
	f.ajouteBail(unite) // bail sans aucun paiement validé ni charge

	store := nouveauFauxStore()
	_, err := registreDeTest(f, store).Commit(proprio, 5, 2024, uuid.New())
	assert.ErrorIs(t, err, ErrRienALiquider)
	assert.Empty(t, store.liquidations)
}

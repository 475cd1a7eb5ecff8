// file: internals/features/liquidations/service/ledger.go
package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	liqmodel "tgimmo_backend/internals/features/liquidations/model"
)

/* ==============================================
   STORE — frontière transactionnelle du registre.
   L'implémentation GORM (gorm_store.go) adosse
   l'unicité (propriétaire, mois, année) à l'index
   unique : deux commits concurrents se départagent
   au stockage, pas en mémoire.
============================================== */

type LiquidationStore interface {
	// DansTransaction exécute fn atomiquement : toute erreur annule tout
	// (insertion ET write-back des charges).
	DansTransaction(fn func(tx LiquidationTx) error) error

	Trouver(liquidationID uuid.UUID) (*liqmodel.LiquidationModel, error)
	Lister(mois, annee int, offset, limit int) ([]liqmodel.LiquidationModel, int64, error)
}

type LiquidationTx interface {
	// Existe vérifie l'unicité (propriétaire, mois, année).
	Existe(proprietaireID uuid.UUID, mois, annee int) (bool, error)
	// Inserer retourne ErrDejaLiquidee sur violation de l'index unique.
	Inserer(m *liqmodel.LiquidationModel) error
	// MarquerChargesPayees passe les charges en paye avec date_paiement.
	MarquerChargesPayees(chargeIDs []uuid.UUID, quand time.Time) error
}

/* ==============================================
   REGISTRE — commit en une transaction
============================================== */

type Registre struct {
	Store       LiquidationStore
	Calculateur *Calculateur

	Now func() time.Time
}

func (r *Registre) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Commit établit la liquidation de (propriétaire, mois, année) :
//  1. refuse si une liquidation existe déjà (ErrDejaLiquidee, jamais d'upsert) ;
//  2. refuse un propriétaire inconnu de l'annuaire (ErrRienALiquider) ;
//  3. recalcule — un aperçu antérieur peut être périmé — et refuse un résultat
//     sans le moindre justificatif : une ligne vide verrouillerait la période ;
//  4. insère la ligne immuable avec justificatifs, acteur et horodatage ;
//  5. marque payées les charges consommées, dans la même transaction.
//
// Un échec n'importe où annule tout : jamais de liquidation sans write-back
// ni de write-back sans liquidation.
func (r *Registre) Commit(proprietaireID uuid.UUID, mois, annee int, acteurID uuid.UUID) (*liqmodel.LiquidationModel, error) {
	if !PeriodeValide(mois, annee) {
		return nil, ErrPeriodeInvalide
	}

	var out *liqmodel.LiquidationModel
	err := r.Store.DansTransaction(func(tx LiquidationTx) error {
		deja, err := tx.Existe(proprietaireID, mois, annee)
		if err != nil {
			return err
		}
		if deja {
			return ErrDejaLiquidee
		}

		prop, err := r.Calculateur.Proprietaires.Find(proprietaireID)
		if err != nil {
			return err
		}
		if prop == nil {
			return ErrRienALiquider
		}

		ap, err := r.Calculateur.Compute(proprietaireID, mois, annee)
		if err != nil {
			return err
		}
		if ap.Justificatifs.Vide() {
			return ErrRienALiquider
		}

		details, err := sonic.Marshal(ap.Justificatifs)
		if err != nil {
			return err
		}

		quand := r.now()
		m := &liqmodel.LiquidationModel{
			LiquidationProprietaireID:  proprietaireID,
			LiquidationMois:            int16(mois),
			LiquidationAnnee:           int16(annee),
			LiquidationTotalRevenu:     ap.TotalRevenu.Round(2),
			LiquidationTotalCharges:    ap.TotalCharges.Round(2),
			LiquidationTotalHonoraires: ap.TotalHonoraires,
			LiquidationNetAPayer:       ap.NetAPayer.Round(2),
			LiquidationDetails:         details,
			LiquidationStatut:          "valide",
			LiquidationCreatedBy:       acteurID,
			LiquidationCreatedAt:       quand,
		}
		if err := tx.Inserer(m); err != nil {
			return err
		}

		if len(ap.Justificatifs.ChargeIDs) > 0 {
			if err := tx.MarquerChargesPayees(ap.Justificatifs.ChargeIDs, quand); err != nil {
				return err
			}
		}

		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

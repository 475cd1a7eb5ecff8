// file: internals/features/liquidations/service/calculator.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cent = decimal.NewFromInt(100)

/* ==============================================
   JUSTIFICATIFS — l'ensemble de preuves qui
   fonde le calcul : tout ID examiné y figure,
   même pour une contribution nulle.
============================================== */

type Justificatifs struct {
	UniteIDs    []uuid.UUID `json:"unite_ids"`
	BailIDs     []uuid.UUID `json:"bail_ids"`
	PaiementIDs []uuid.UUID `json:"paiement_ids"`
	ChargeIDs   []uuid.UUID `json:"charge_ids"`
}

// Vide : aucun paiement ni charge examiné. Les unités/baux seuls ne comptent
// pas comme activité — un propriétaire sans encaissement ni charge n'a rien
// à liquider.
func (j Justificatifs) Vide() bool {
	return len(j.PaiementIDs) == 0 && len(j.ChargeIDs) == 0
}

/* ==============================================
   APERÇU — résultat du calcul, utilisé tel quel
   pour la prévisualisation ET recalculé au moment
   du commit (jamais de réutilisation d'un aperçu
   périmé).
============================================== */

type Apercu struct {
	ProprietaireID  uuid.UUID       `json:"proprietaire_id"`
	ProprietaireNom string          `json:"proprietaire_nom,omitempty"`
	Mois            int             `json:"mois"`
	Annee           int             `json:"annee"`
	TauxHonoraires  decimal.Decimal `json:"taux_honoraires"`

	TotalRevenu     decimal.Decimal `json:"total_revenu"`
	TotalCharges    decimal.Decimal `json:"total_charges"`
	TotalHonoraires decimal.Decimal `json:"total_honoraires"`
	// Peut être négatif — aucun plancher
	NetAPayer decimal.Decimal `json:"net_a_payer"`

	Justificatifs Justificatifs `json:"justificatifs"`
}

func apercuZero(proprietaireID uuid.UUID, mois, annee int) Apercu {
	return Apercu{
		ProprietaireID:  proprietaireID,
		Mois:            mois,
		Annee:           annee,
		TauxHonoraires:  decimal.Zero,
		TotalRevenu:     decimal.Zero,
		TotalCharges:    decimal.Zero,
		TotalHonoraires: decimal.Zero,
		NetAPayer:       decimal.Zero,
	}
}

/* ==============================================
   CALCULATEUR
============================================== */

type Calculateur struct {
	Proprietaires AnnuaireProprietaires
	Parts         LecteurParts
	Baux          LecteurBaux
	Paiements     LecteurPaiements
	Charges       LecteurCharges

	// Horloge injectable — les parts "actives" s'évaluent à maintenant
	Now func() time.Time
}

func (c *Calculateur) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// PeriodeValide borne mois/année avant tout accès DB.
func PeriodeValide(mois, annee int) bool {
	return mois >= 1 && mois <= 12 && annee >= 2000 && annee <= 2100
}

// Compute agrège les loyers validés de la période au prorata des quote-parts
// actives du propriétaire, déduit charges et honoraires, et retourne l'aperçu
// avec ses justificatifs. Lecture seule, rejouable à volonté.
//
// Propriétaire inconnu → aperçu à zéro, pas d'erreur : le scanner s'appuie
// dessus pour traiter en lot sans cas particulier.
func (c *Calculateur) Compute(proprietaireID uuid.UUID, mois, annee int) (Apercu, error) {
	if !PeriodeValide(mois, annee) {
		return Apercu{}, ErrPeriodeInvalide
	}

	proprio, err := c.Proprietaires.Find(proprietaireID)
	if err != nil {
		return Apercu{}, err
	}
	if proprio == nil {
		return apercuZero(proprietaireID, mois, annee), nil
	}

	ap := apercuZero(proprietaireID, mois, annee)
	ap.ProprietaireNom = proprio.ProprietaireNom
	ap.TauxHonoraires = proprio.ProprietaireTauxHonoraires

	parts, err := c.Parts.PartsActives(proprietaireID, c.now())
	if err != nil {
		return Apercu{}, err
	}

	for _, part := range parts {
		pct := part.UniteProprietairePourcentage
		// Quote-part nulle = aucun droit : l'unité est ignorée entièrement
		if !pct.IsPositive() {
			continue
		}
		ap.Justificatifs.UniteIDs = append(ap.Justificatifs.UniteIDs, part.UniteProprietaireUniteID)

		baux, err := c.Baux.BauxPourUnite(part.UniteProprietaireUniteID)
		if err != nil {
			return Apercu{}, err
		}
		for _, bail := range baux {
			ap.Justificatifs.BailIDs = append(ap.Justificatifs.BailIDs, bail.BailID)

			paiements, err := c.Paiements.PaiementsValides(bail.BailID, mois, annee)
			if err != nil {
				return Apercu{}, err
			}
			for _, p := range paiements {
				// L'ID est enregistré même pour une contribution nulle :
				// il prouve que la période a été examinée
				ap.Justificatifs.PaiementIDs = append(ap.Justificatifs.PaiementIDs, p.BailPaiementID)

				contribution := p.MontantEncaisse().Mul(pct).Div(cent)
				ap.TotalRevenu = ap.TotalRevenu.Add(contribution)
			}
		}
	}

	charges, err := c.Charges.ChargesNonPayees(proprietaireID, mois, annee)
	if err != nil {
		return Apercu{}, err
	}
	vues := make(map[uuid.UUID]bool, len(charges))
	for _, ch := range charges {
		// Une charge atteignable par les deux chemins (imputation ET payeur)
		// n'est comptée qu'une fois
		if vues[ch.ImputationChargeID] {
			continue
		}
		vues[ch.ImputationChargeID] = true
		ap.Justificatifs.ChargeIDs = append(ap.Justificatifs.ChargeIDs, ch.ImputationChargeID)
		ap.TotalCharges = ap.TotalCharges.Add(ch.ImputationChargeMontant)
	}

	// Seul point d'arrondi du calcul : honoraires à 2 décimales, demi vers le haut
	ap.TotalHonoraires = ap.TotalRevenu.Mul(ap.TauxHonoraires).Div(cent).Round(2)
	ap.NetAPayer = ap.TotalRevenu.Sub(ap.TotalHonoraires).Sub(ap.TotalCharges)

	return ap, nil
}

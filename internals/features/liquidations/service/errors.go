// file: internals/features/liquidations/service/errors.go
package service

import "errors"

// Erreurs métier attendues — à distinguer des pannes d'infrastructure
// pour que le contrôleur puisse rendre un statut HTTP parlant.
var (
	// ErrDejaLiquidee : une liquidation existe déjà pour (propriétaire, mois, année).
	ErrDejaLiquidee = errors.New("liquidation déjà établie pour cette période")

	// ErrPeriodeInvalide : mois hors 1..12 ou année hors bornes — rejeté avant tout accès DB.
	ErrPeriodeInvalide = errors.New("période invalide")

	// ErrRienALiquider : propriétaire inconnu ou aucun paiement/charge sur la
	// période. Un aperçu à zéro reste consultable, mais l'engager écrirait une
	// ligne vide qui verrouillerait la période — refusé.
	ErrRienALiquider = errors.New("rien à liquider pour cette période")
)

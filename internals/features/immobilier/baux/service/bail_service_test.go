// file: internals/features/immobilier/baux/service/bail_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	bailmodel "tgimmo_backend/internals/features/immobilier/baux/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLoyerRemise(t *testing.T) {
	assert.Equal(t, "500.00", LoyerRemise(dec("1000"), dec("50")).StringFixed(2))
	assert.Equal(t, "1000.00", LoyerRemise(dec("1000"), dec("0")).StringFixed(2))
	assert.Equal(t, "0.00", LoyerRemise(dec("1000"), dec("100")).StringFixed(2))
	// 850 × (100−12.5)% = 743.75
	assert.Equal(t, "743.75", LoyerRemise(dec("850"), dec("12.5")).StringFixed(2))
}

func TestFenetresChevauchent(t *testing.T) {
	existantes := []bailmodel.BailFranchiseModel{{
		BailFranchiseDateDebut: date(2024, 3, 1),
		BailFranchiseDateFin:   date(2024, 4, 30),
	}}

	// disjointe après
	assert.False(t, FenetresChevauchent(date(2024, 5, 1), date(2024, 6, 30), existantes))
	// disjointe avant
	assert.False(t, FenetresChevauchent(date(2024, 1, 1), date(2024, 2, 29), existantes))
	// recouvrement partiel
	assert.True(t, FenetresChevauchent(date(2024, 4, 15), date(2024, 5, 15), existantes))
	// englobante
	assert.True(t, FenetresChevauchent(date(2024, 2, 1), date(2024, 6, 1), existantes))
	// contact sur une borne (bornes incluses)
	assert.True(t, FenetresChevauchent(date(2024, 4, 30), date(2024, 5, 31), existantes))
}

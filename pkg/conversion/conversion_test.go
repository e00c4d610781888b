package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKnownPairs(t *testing.T) {
	tests := []struct {
		name     string
		category string
		unit     string
		quantity float64
		want     float64
	}{
		{"blankets in units", "Cobertores", "unidades", 10, 20},
		{"food in boxes", "Alimentos não perecíveis", "caixas", 2, 10},
		{"clothes in bags", "Roupas", "sacos", 3, 6},
		{"hygiene in kg", "Produtos de higiene", "kg", 4, 2},
		{"toys in liters", "Brinquedos", "litros", 2, 1},
		{"other in units", "Outros", "unidades", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.category, tt.unit, tt.quantity))
		})
	}
}

func TestNormalizeUnknownCategoryDefaultsToNeutral(t *testing.T) {
	// Unknown category keeps the unit factor: 1.0 * 5 * 5 = 25.
	assert.Equal(t, 25.0, Normalize("Unknown", "caixas", 5))
}

func TestNormalizeUnknownUnitDefaultsToOne(t *testing.T) {
	assert.Equal(t, 4.0, Normalize("Cobertores", "paletes", 2))
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"10", 10},
		{"2.5", 2.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"1e2", 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseQuantity(tt.raw), "raw=%q", tt.raw)
	}
}

func TestFactorTablesStayAligned(t *testing.T) {
	// Every entry in the exposed tables must be the factor Normalize uses.
	for category, factor := range CategoryFactors {
		assert.Equal(t, factor, CategoryFactor(category))
	}
	for unit, factor := range UnitFactors {
		assert.Equal(t, factor, UnitFactor(unit))
	}
}

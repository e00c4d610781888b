// Package conversion holds the stock-equivalence table used to normalize
// donations of different categories and units onto one scale. The maps below
// are the single definition consumed both by intake and by the read-only
// /conversions endpoint; keeping one copy is a correctness requirement.
package conversion

import "strconv"

// StockUnitLabel names the unit-less equivalence scale in client responses.
const StockUnitLabel = "unidades equivalentes"

// CategoryFactors weights each donation category. Bulky or high-need items
// (blankets) count double, small sundries count half.
var CategoryFactors = map[string]float64{
	"Alimentos não perecíveis": 1.0,
	"Roupas":                   0.5,
	"Calçados":                 0.5,
	"Produtos de higiene":      0.5,
	"Brinquedos":               0.5,
	"Cobertores":               2.0,
	"Outros":                   1.0,
}

// UnitFactors maps a unit of measure to how many base units it holds.
var UnitFactors = map[string]int{
	"unidades": 1,
	"kg":       1,
	"litros":   1,
	"caixas":   5,
	"sacos":    4,
}

// CategoryFactor returns the weight for a category, falling back to a
// neutral 1.0 for unrecognized categories. Unknown input never fails intake.
func CategoryFactor(category string) float64 {
	if f, ok := CategoryFactors[category]; ok {
		return f
	}
	return 1.0
}

// UnitFactor returns the multiplier for a unit, defaulting to 1.
func UnitFactor(unit string) int {
	if f, ok := UnitFactors[unit]; ok {
		return f
	}
	return 1
}

// ParseQuantity coerces raw client input to a non-negative decimal. Anything
// that does not parse as a non-negative number counts as zero.
func ParseQuantity(raw string) float64 {
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || q < 0 {
		return 0
	}
	return q
}

// Normalize computes the stock value recorded at intake:
// categoryFactor × unitFactor × quantity.
func Normalize(category, unit string, quantity float64) float64 {
	return CategoryFactor(category) * float64(UnitFactor(unit)) * quantity
}

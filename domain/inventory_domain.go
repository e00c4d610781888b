package domain

import "errors"

const (
	// InventoryBasisNormalized marks results summed over the normalized
	// stock value column; InventoryBasisRaw marks the fallback shape summing
	// raw quantities per unit. Consumers must branch on the basis, the two
	// shapes are never mixed in one response.
	InventoryBasisNormalized = "normalized"
	InventoryBasisRaw        = "raw"
)

var (
	MessageSuccessGetInventory   = "inventory retrieved successfully"
	MessageSuccessGetConversions = "conversion table retrieved successfully"

	MessageFailedGetInventory = "failed to retrieve inventory"

	ErrInventoryUnavailable = errors.New("inventory unavailable")
)

type (
	InventoryItem struct {
		Category        string   `json:"category"`
		TotalStockValue *float64 `json:"total_stock_value,omitempty"`
		Quantity        *float64 `json:"quantity,omitempty"`
		Unit            string   `json:"unit,omitempty"`
	}

	InventorySummary struct {
		Basis string           `json:"basis"`
		Items []*InventoryItem `json:"items"`
	}

	// NormalizedStockRow and RawStockRow are the two grouped-query shapes the
	// repository can return, matching the primary and fallback read paths.
	NormalizedStockRow struct {
		Category        string  `gorm:"column:tipo_item"`
		TotalStockValue float64 `gorm:"column:quantidade_total"`
	}

	RawStockRow struct {
		Category string  `gorm:"column:tipo_item"`
		Quantity float64 `gorm:"column:quantidade_total"`
		Unit     string  `gorm:"column:unidade_medida"`
	}

	ConversionTableResponse struct {
		Categories map[string]float64 `json:"categories"`
		Units      map[string]int     `json:"units"`
	}
)

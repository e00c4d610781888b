package inventory

import (
	"context"

	"rotasol-backend/domain"
	"rotasol-backend/pkg/conversion"

	"github.com/gofiber/fiber/v2/log"
)

type (
	InventoryService interface {
		ListAvailable(ctx context.Context) (*domain.InventorySummary, error)
		ConversionTable() domain.ConversionTableResponse
	}

	inventoryService struct {
		stockRepository StockRepository
	}
)

func NewInventoryService(stockRepository StockRepository) InventoryService {
	return &inventoryService{stockRepository: stockRepository}
}

// ListAvailable returns per-category available stock. The primary path sums
// the normalized stock value; when it fails (schema mismatch on older
// installs) the result is rebuilt from raw quantities grouped per unit. The
// basis field tells consumers which shape they got.
func (s *inventoryService) ListAvailable(ctx context.Context) (*domain.InventorySummary, error) {
	rows, err := s.stockRepository.ListAvailableByValue(ctx)
	if err == nil {
		items := make([]*domain.InventoryItem, 0, len(rows))
		for _, row := range rows {
			total := row.TotalStockValue
			items = append(items, &domain.InventoryItem{
				Category:        row.Category,
				TotalStockValue: &total,
			})
		}
		return &domain.InventorySummary{
			Basis: domain.InventoryBasisNormalized,
			Items: items,
		}, nil
	}

	log.Warnf("normalized inventory query failed, falling back to raw quantities: %v", err)

	rawRows, err := s.stockRepository.ListAvailableByQuantity(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.InventoryItem, 0, len(rawRows))
	for _, row := range rawRows {
		quantity := row.Quantity
		items = append(items, &domain.InventoryItem{
			Category: row.Category,
			Quantity: &quantity,
			Unit:     row.Unit,
		})
	}
	return &domain.InventorySummary{
		Basis: domain.InventoryBasisRaw,
		Items: items,
	}, nil
}

// ConversionTable exposes the exact mapping intake computes with.
func (s *inventoryService) ConversionTable() domain.ConversionTableResponse {
	return domain.ConversionTableResponse{
		Categories: conversion.CategoryFactors,
		Units:      conversion.UnitFactors,
	}
}

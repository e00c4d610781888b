package donation

import (
	"context"
	"errors"
	"fmt"

	"rotasol-backend/domain"
	"rotasol-backend/entities"
	"rotasol-backend/pkg/conversion"
	"rotasol-backend/pkg/inventory"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		Submit(ctx context.Context, req domain.DonationRequest, userID string) (*domain.SubmitDonationResponse, error)
		Confirm(ctx context.Context, donationID uint) (*domain.RemovedDonation, error)
		GetUserDonations(ctx context.Context, userID string) (*domain.MyDonationsResponse, error)
		ListDonations(ctx context.Context) ([]*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		stockRepository    inventory.StockRepository
	}
)

func NewDonationService(donationRepository DonationRepository, stockRepository inventory.StockRepository) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		stockRepository:    stockRepository,
	}
}

// DonationCode renders the human-readable sequential code shown to donors.
func DonationCode(id uint) string {
	return fmt.Sprintf("D%06d", id)
}

// Submit records a donation and feeds the inventory aggregate. The record
// insert is the primary write and aborts the request on failure; the
// aggregate upsert is secondary and must not fail the submission — the
// record stands and the failure is logged as a warning. Record retention
// wins over aggregate freshness here.
func (s *donationService) Submit(ctx context.Context, req domain.DonationRequest, userID string) (*domain.SubmitDonationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	quantity := conversion.ParseQuantity(req.Quantity)
	stockValue := conversion.Normalize(req.Category, req.Unit, quantity)

	log.Infof("stock conversion: %s %s of %s = %v equivalent units",
		req.Quantity, req.Unit, req.Category, stockValue)

	donation := &entities.Donation{
		UserID:     userUUID,
		Category:   req.Category,
		Quantity:   quantity,
		Unit:       req.Unit,
		LocationID: req.LocationID,
		Notes:      req.Notes,
		Status:     "pendente",
		StockValue: stockValue,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	stock := &entities.Stock{
		LocationID: req.LocationID,
		Category:   req.Category,
		Quantity:   quantity,
		Unit:       req.Unit,
		StockValue: stockValue,
		Status:     "disponivel",
	}
	if err := s.stockRepository.AddStock(ctx, stock); err != nil {
		log.Warnf("stock table missing or update failed: %v", err)
	}

	return &domain.SubmitDonationResponse{
		ID:   donation.ID,
		Code: DonationCode(donation.ID),
		Conversion: domain.ConversionResult{
			Category:       req.Category,
			RawQuantity:    req.Quantity,
			RawUnit:        req.Unit,
			StockValue:     stockValue,
			StockUnitLabel: conversion.StockUnitLabel,
		},
	}, nil
}

// Confirm deletes the donation record and returns a summary of what was
// removed. Confirmation and removal are the same operation: there is no
// fulfilled state, and the inventory aggregate is deliberately left alone.
func (s *donationService) Confirm(ctx context.Context, donationID uint) (*domain.RemovedDonation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if err := s.donationRepository.DeleteDonation(ctx, donationID); err != nil {
		return nil, err
	}

	return &domain.RemovedDonation{
		ID:       donation.ID,
		Category: donation.Category,
		Quantity: donation.Quantity,
	}, nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string) (*domain.MyDonationsResponse, error) {
	donations, err := s.donationRepository.GetUserDonations(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, quantity, err := s.donationRepository.GetUserMonthTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonationResponse(d))
	}

	return &domain.MyDonationsResponse{
		Donations:     result,
		MonthCount:    count,
		MonthQuantity: quantity,
	}, nil
}

func (s *donationService) ListDonations(ctx context.Context) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetAllDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonationResponse(d))
	}
	return result, nil
}

func toDonationResponse(d *entities.Donation) *domain.DonationResponse {
	resp := &domain.DonationResponse{
		ID:         d.ID,
		Code:       DonationCode(d.ID),
		UserID:     d.UserID.String(),
		Category:   d.Category,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
		LocationID: d.LocationID,
		Notes:      d.Notes,
		Status:     d.Status,
		StockValue: d.StockValue,
		CreatedAt:  d.CreatedAt,
	}
	if d.User != nil {
		resp.UserName = d.User.FullName
	}
	if d.Location != nil {
		resp.LocationName = d.Location.Name
	}
	return resp
}

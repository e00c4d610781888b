package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation  = "donation registered successfully"
	MessageSuccessGetDonations    = "donations retrieved successfully"
	MessageSuccessConfirmDonation = "donation confirmed and removed successfully"

	MessageFailedCreateDonation  = "failed to register donation"
	MessageFailedGetDonations    = "failed to retrieve donations"
	MessageFailedConfirmDonation = "failed to confirm donation"

	ErrDonationNotFound = errors.New("donation not found")
)

type (
	// DonationRequest carries the intake fields. Quantity arrives as text and
	// is coerced by the conversion table; a non-numeric value counts as zero
	// rather than failing the request.
	DonationRequest struct {
		Category   string `json:"category" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		Unit       string `json:"unit" validate:"required"`
		LocationID uint   `json:"location_id" validate:"required"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	// ConversionResult echoes the normalization applied at intake so clients
	// can display what was recorded.
	ConversionResult struct {
		Category       string  `json:"category"`
		RawQuantity    string  `json:"raw_quantity"`
		RawUnit        string  `json:"raw_unit"`
		StockValue     float64 `json:"stock_value"`
		StockUnitLabel string  `json:"stock_unit_label"`
	}

	SubmitDonationResponse struct {
		ID         uint             `json:"id"`
		Code       string           `json:"code"`
		Conversion ConversionResult `json:"conversion"`
	}

	DonationResponse struct {
		ID           uint      `json:"id"`
		Code         string    `json:"code"`
		UserID       string    `json:"user_id"`
		UserName     string    `json:"user_name,omitempty"`
		Category     string    `json:"category"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		LocationID   uint      `json:"location_id"`
		LocationName string    `json:"location_name,omitempty"`
		Notes        string    `json:"notes,omitempty"`
		Status       string    `json:"status"`
		StockValue   float64   `json:"stock_value"`
		CreatedAt    time.Time `json:"created_at"`
	}

	MyDonationsResponse struct {
		Donations     []*DonationResponse `json:"donations"`
		MonthCount    int64               `json:"month_count"`
		MonthQuantity float64             `json:"month_quantity"`
	}

	RemovedDonation struct {
		ID       uint    `json:"id"`
		Category string  `json:"category"`
		Quantity float64 `json:"quantity"`
	}

	ConfirmDonationResponse struct {
		RemovedRecord RemovedDonation `json:"removed_record"`
	}
)

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"rotasol-backend/domain"
	"rotasol-backend/internal/utils"
	"rotasol-backend/pkg/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDonationService struct {
	confirmErr error
	removed    *domain.RemovedDonation
}

func (s *stubDonationService) Submit(_ context.Context, _ domain.DonationRequest, _ string) (*domain.SubmitDonationResponse, error) {
	return nil, nil
}

func (s *stubDonationService) Confirm(_ context.Context, _ uint) (*domain.RemovedDonation, error) {
	return s.removed, s.confirmErr
}

func (s *stubDonationService) GetUserDonations(_ context.Context, _ string) (*domain.MyDonationsResponse, error) {
	return nil, nil
}

func (s *stubDonationService) ListDonations(_ context.Context) ([]*domain.DonationResponse, error) {
	return nil, nil
}

type stubInventoryService struct {
	summary *domain.InventorySummary
	err     error
}

func (s *stubInventoryService) ListAvailable(_ context.Context) (*domain.InventorySummary, error) {
	return s.summary, s.err
}

func (s *stubInventoryService) ConversionTable() domain.ConversionTableResponse {
	return domain.ConversionTableResponse{}
}

var _ inventory.InventoryService = (*stubInventoryService)(nil)

func newConfirmApp(service *stubDonationService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewDonationHandler(service, utils.Validate)
	app.Delete("/donations/:id", handler.ConfirmDonation)
	return app
}

func TestConfirmDonationRoute(t *testing.T) {
	service := &stubDonationService{
		removed: &domain.RemovedDonation{ID: 7, Category: "Cobertores", Quantity: 3},
	}
	app := newConfirmApp(service)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/donations/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Status string                         `json:"status"`
		Data   domain.ConfirmDonationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "success", payload.Status)
	assert.Equal(t, uint(7), payload.Data.RemovedRecord.ID)
	assert.Equal(t, "Cobertores", payload.Data.RemovedRecord.Category)
}

func TestConfirmDonationRouteNotFound(t *testing.T) {
	service := &stubDonationService{confirmErr: domain.ErrDonationNotFound}
	app := newConfirmApp(service)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/donations/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestConfirmDonationRouteBadID(t *testing.T) {
	app := newConfirmApp(&stubDonationService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/donations/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetInventoryRoute(t *testing.T) {
	total := 42.0
	service := &stubInventoryService{
		summary: &domain.InventorySummary{
			Basis: domain.InventoryBasisNormalized,
			Items: []*domain.InventoryItem{
				{Category: "Cobertores", TotalStockValue: &total},
			},
		},
	}
	app := fiber.New()
	app.Get("/inventory", NewInventoryHandler(service).GetInventory)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Data domain.InventorySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, domain.InventoryBasisNormalized, payload.Data.Basis)
	require.Len(t, payload.Data.Items, 1)
	require.NotNil(t, payload.Data.Items[0].TotalStockValue)
	assert.Equal(t, 42.0, *payload.Data.Items[0].TotalStockValue)
}

func TestGetInventoryRouteFailure(t *testing.T) {
	service := &stubInventoryService{err: errors.New("store unavailable")}
	app := fiber.New()
	app.Get("/inventory", NewInventoryHandler(service).GetInventory)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

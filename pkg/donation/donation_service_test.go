package donation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"rotasol-backend/domain"
	"rotasol-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockDonationRepository struct {
	mu         sync.Mutex
	donations  map[uint]*entities.Donation
	nextID     uint
	failCreate bool
}

func newMockDonationRepository() *mockDonationRepository {
	return &mockDonationRepository{donations: map[uint]*entities.Donation{}}
}

func (m *mockDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("insert failed")
	}
	m.nextID++
	donation.ID = m.nextID
	donation.CreatedAt = time.Now()
	copied := *donation
	m.donations[donation.ID] = &copied
	return nil
}

func (m *mockDonationRepository) GetDonationByID(_ context.Context, id uint) (*entities.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *mockDonationRepository) DeleteDonation(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.donations, id)
	return nil
}

func (m *mockDonationRepository) GetUserDonations(_ context.Context, userID string) ([]*entities.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*entities.Donation
	for _, d := range m.donations {
		if d.UserID.String() == userID {
			copied := *d
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockDonationRepository) GetUserMonthTotals(_ context.Context, userID string) (int64, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	var quantity float64
	for _, d := range m.donations {
		if d.UserID.String() == userID {
			count++
			quantity += d.Quantity
		}
	}
	return count, quantity, nil
}

func (m *mockDonationRepository) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*entities.Donation
	for _, d := range m.donations {
		copied := *d
		result = append(result, &copied)
	}
	return result, nil
}

type mockStockRepository struct {
	mu      sync.Mutex
	stocks  map[string]*entities.Stock
	failAdd bool
}

func newMockStockRepository() *mockStockRepository {
	return &mockStockRepository{stocks: map[string]*entities.Stock{}}
}

func stockKey(locationID uint, category string) string {
	return fmt.Sprintf("%d/%s", locationID, category)
}

func (m *mockStockRepository) AddStock(_ context.Context, stock *entities.Stock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAdd {
		return errors.New("relation estoque does not exist")
	}
	key := stockKey(stock.LocationID, stock.Category)
	if existing, ok := m.stocks[key]; ok {
		existing.Quantity += stock.Quantity
		existing.StockValue += stock.StockValue
		return nil
	}
	copied := *stock
	m.stocks[key] = &copied
	return nil
}

func (m *mockStockRepository) ListAvailableByValue(_ context.Context) ([]*domain.NormalizedStockRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	totals := map[string]float64{}
	for _, s := range m.stocks {
		totals[s.Category] += s.StockValue
	}
	var rows []*domain.NormalizedStockRow
	for category, total := range totals {
		rows = append(rows, &domain.NormalizedStockRow{Category: category, TotalStockValue: total})
	}
	return rows, nil
}

func (m *mockStockRepository) ListAvailableByQuantity(_ context.Context) ([]*domain.RawStockRow, error) {
	return nil, nil
}

func (m *mockStockRepository) TotalAvailableValue(_ context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, s := range m.stocks {
		total += s.StockValue
	}
	return total, nil
}

func (m *mockStockRepository) aggregate(locationID uint, category string) *entities.Stock {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stocks[stockKey(locationID, category)]
}

func TestDonationCode(t *testing.T) {
	assert.Equal(t, "D000001", DonationCode(1))
	assert.Equal(t, "D000123", DonationCode(123))
	assert.Equal(t, "D1000000", DonationCode(1000000))
}

func TestSubmitNormalizesQuantity(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)
	userID := uuid.NewString()

	resp, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Cobertores",
		Quantity:   "10",
		Unit:       "unidades",
		LocationID: 1,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "D000001", resp.Code)
	assert.Equal(t, 20.0, resp.Conversion.StockValue)
	assert.Equal(t, "10", resp.Conversion.RawQuantity)
	assert.Equal(t, "unidades equivalentes", resp.Conversion.StockUnitLabel)

	stored, err := donationRepo.GetDonationByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "pendente", stored.Status)
	assert.Equal(t, 10.0, stored.Quantity)
	assert.Equal(t, 20.0, stored.StockValue)

	agg := stockRepo.aggregate(1, "Cobertores")
	require.NotNil(t, agg)
	assert.Equal(t, 20.0, agg.StockValue)
	assert.Equal(t, "disponivel", agg.Status)
}

func TestSubmitNonNumericQuantityCountsAsZero(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)

	resp, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Roupas",
		Quantity:   "muitas",
		Unit:       "sacos",
		LocationID: 2,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Conversion.StockValue)

	stored, err := donationRepo.GetDonationByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Quantity)
}

func TestSubmitRejectsMalformedUserID(t *testing.T) {
	service := NewDonationService(newMockDonationRepository(), newMockStockRepository())

	_, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Outros",
		Quantity:   "1",
		Unit:       "unidades",
		LocationID: 1,
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestSubmitAggregateFailureIsNotFatal(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	stockRepo.failAdd = true
	service := NewDonationService(donationRepo, stockRepo)

	resp, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Cobertores",
		Quantity:   "10",
		Unit:       "unidades",
		LocationID: 1,
	}, uuid.NewString())
	require.NoError(t, err)

	// the record stands even though the aggregate write failed
	_, err = donationRepo.GetDonationByID(context.Background(), resp.ID)
	assert.NoError(t, err)
	assert.Nil(t, stockRepo.aggregate(1, "Cobertores"))
}

func TestSubmitRecordFailureIsFatal(t *testing.T) {
	donationRepo := newMockDonationRepository()
	donationRepo.failCreate = true
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)

	_, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Outros",
		Quantity:   "1",
		Unit:       "unidades",
		LocationID: 1,
	}, uuid.NewString())
	assert.Error(t, err)
	assert.Nil(t, stockRepo.aggregate(1, "Outros"))
}

func TestSubmitAccumulatesSameAggregate(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)
	userID := uuid.NewString()

	req := domain.DonationRequest{
		Category:   "Cobertores",
		Quantity:   "10",
		Unit:       "unidades",
		LocationID: 1,
	}

	_, err := service.Submit(context.Background(), req, userID)
	require.NoError(t, err)

	req.Quantity = "2.5"
	_, err = service.Submit(context.Background(), req, userID)
	require.NoError(t, err)

	agg := stockRepo.aggregate(1, "Cobertores")
	require.NotNil(t, agg)
	assert.Equal(t, 12.5, agg.Quantity)
	assert.Equal(t, 25.0, agg.StockValue)
}

func TestSubmitConcurrentSameAggregate(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)

	const donors = 20
	var wg sync.WaitGroup
	wg.Add(donors)
	for i := 0; i < donors; i++ {
		go func() {
			defer wg.Done()
			_, err := service.Submit(context.Background(), domain.DonationRequest{
				Category:   "Cobertores",
				Quantity:   "1",
				Unit:       "unidades",
				LocationID: 1,
			}, uuid.NewString())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	agg := stockRepo.aggregate(1, "Cobertores")
	require.NotNil(t, agg)
	assert.Equal(t, float64(donors), agg.Quantity)
	assert.Equal(t, float64(donors*2), agg.StockValue)

	all, err := donationRepo.GetAllDonations(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, donors)
}

func TestConfirmRemovesRecordAndKeepsAggregate(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)

	resp, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Cobertores",
		Quantity:   "10",
		Unit:       "unidades",
		LocationID: 1,
	}, uuid.NewString())
	require.NoError(t, err)

	removed, err := service.Confirm(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, removed.ID)
	assert.Equal(t, "Cobertores", removed.Category)
	assert.Equal(t, 10.0, removed.Quantity)

	_, err = donationRepo.GetDonationByID(context.Background(), resp.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// confirmation never touches the aggregate
	agg := stockRepo.aggregate(1, "Cobertores")
	require.NotNil(t, agg)
	assert.Equal(t, 20.0, agg.StockValue)
}

func TestConfirmMissingDonation(t *testing.T) {
	service := NewDonationService(newMockDonationRepository(), newMockStockRepository())

	_, err := service.Confirm(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestGetUserDonationsWithMonthTotals(t *testing.T) {
	donationRepo := newMockDonationRepository()
	stockRepo := newMockStockRepository()
	service := NewDonationService(donationRepo, stockRepo)
	userID := uuid.NewString()

	for _, quantity := range []string{"3", "7"} {
		_, err := service.Submit(context.Background(), domain.DonationRequest{
			Category:   "Roupas",
			Quantity:   quantity,
			Unit:       "kg",
			LocationID: 1,
		}, userID)
		require.NoError(t, err)
	}
	_, err := service.Submit(context.Background(), domain.DonationRequest{
		Category:   "Roupas",
		Quantity:   "5",
		Unit:       "kg",
		LocationID: 1,
	}, uuid.NewString())
	require.NoError(t, err)

	result, err := service.GetUserDonations(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, result.Donations, 2)
	assert.Equal(t, int64(2), result.MonthCount)
	assert.Equal(t, 10.0, result.MonthQuantity)
}

package report

import (
	"context"
	"fmt"
	"strings"

	"rotasol-backend/domain"
	"rotasol-backend/pkg/inventory"
)

type (
	ReportService interface {
		Stats(ctx context.Context) (*domain.AdminStats, error)
		Charts(ctx context.Context) (*domain.ChartsResponse, error)
	}

	reportService struct {
		reportRepository ReportRepository
		stockRepository  inventory.StockRepository
	}
)

func NewReportService(reportRepository ReportRepository, stockRepository inventory.StockRepository) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		stockRepository:  stockRepository,
	}
}

func (s *reportService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	users, err := s.reportRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	donations, err := s.reportRepository.CountDonations(ctx)
	if err != nil {
		return nil, err
	}

	stockValue, err := s.stockRepository.TotalAvailableValue(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AdminStats{
		TotalUsers:      users,
		TotalDonations:  donations,
		TotalStockValue: stockValue,
	}, nil
}

// Charts recomputes every series from the store on each call; there is no
// caching and no partial result — any query failure fails the whole report.
func (s *reportService) Charts(ctx context.Context) (*domain.ChartsResponse, error) {
	byMonth, err := s.reportRepository.DonationsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.reportRepository.DonationsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	newUsers, err := s.reportRepository.NewUsersByMonth(ctx)
	if err != nil {
		return nil, err
	}

	byLocation, err := s.reportRepository.DonationsByLocation(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.ChartsResponse{}
	for _, b := range byMonth {
		resp.ByMonth.Labels = append(resp.ByMonth.Labels, MonthLabel(b.Month))
		resp.ByMonth.Values = append(resp.ByMonth.Values, float64(b.Count))
	}
	for _, b := range byCategory {
		resp.ByCategory.Labels = append(resp.ByCategory.Labels, b.Category)
		resp.ByCategory.Values = append(resp.ByCategory.Values, float64(b.Count))
	}
	for _, b := range newUsers {
		resp.NewUsersByMonth.Labels = append(resp.NewUsersByMonth.Labels, MonthLabel(b.Month))
		resp.NewUsersByMonth.Values = append(resp.NewUsersByMonth.Values, float64(b.Count))
	}
	for _, b := range byLocation {
		resp.ByLocation.Labels = append(resp.ByLocation.Labels, b.Location)
		resp.ByLocation.Values = append(resp.ByLocation.Values, float64(b.Count))
	}

	return resp, nil
}

// MonthLabel turns a YYYY-MM bucket key into the MM/YYYY label the dashboard
// displays.
func MonthLabel(month string) string {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return month
	}
	return fmt.Sprintf("%s/%s", parts[1], parts[0])
}

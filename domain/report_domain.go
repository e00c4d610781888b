package domain

var (
	MessageSuccessGetStats  = "statistics retrieved successfully"
	MessageSuccessGetCharts = "chart data retrieved successfully"

	MessageFailedGetStats  = "failed to load statistics"
	MessageFailedGetCharts = "failed to load chart data"
)

type (
	ChartSeries struct {
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
	}

	ChartsResponse struct {
		ByMonth         ChartSeries `json:"by_month"`
		ByCategory      ChartSeries `json:"by_category"`
		NewUsersByMonth ChartSeries `json:"new_users_by_month"`
		ByLocation      ChartSeries `json:"by_location"`
	}

	AdminStats struct {
		TotalUsers      int64   `json:"total_users"`
		TotalDonations  int64   `json:"total_donations"`
		TotalStockValue float64 `json:"total_stock_value"`
	}

	// MonthBucket, CategoryBucket and LocationBucket are grouped-query rows
	// feeding the chart series. Month is formatted YYYY-MM by the store.
	MonthBucket struct {
		Month string  `gorm:"column:mes"`
		Count int64   `gorm:"column:quantidade"`
		Value float64 `gorm:"column:valor"`
	}

	CategoryBucket struct {
		Category string  `gorm:"column:tipo_doacao"`
		Count    int64   `gorm:"column:quantidade"`
		Value    float64 `gorm:"column:valor"`
	}

	LocationBucket struct {
		Location string  `gorm:"column:local"`
		Count    int64   `gorm:"column:quantidade_doacoes"`
		Value    float64 `gorm:"column:valor_total"`
	}
)

package financial

import (
	"math"
	"time"
)

// Runway status bands, in months.
const (
	healthyRunwayMonths  = 12.0
	moderateRunwayMonths = 6.0
)

const forecastHorizonMonths = 12

// RunwayResult reports how long the current cash lasts at the net burn rate.
// Months is nil when revenue covers the burn and the runway is unbounded.
type RunwayResult struct {
	Months             *float64
	NetBurn            float64
	CurrentCash        float64
	MonthlyBurn        float64
	MonthlyRevenue     float64
	ProjectedDepletion *time.Time
	Status             string
}

// ForecastMonth is one month of the cash projection.
type ForecastMonth struct {
	Month   int     `json:"month"`
	Cash    float64 `json:"cash"`
	Revenue float64 `json:"revenue"`
	Burn    float64 `json:"burn"`
}

// Metrics are the canned unit-economics figures served until real
// accounting data is wired in.
type Metrics struct {
	GrossMargin       int `json:"grossMargin"`
	NetMargin         int `json:"netMargin"`
	OperatingExpenses int `json:"operatingExpenses"`
	COGS              int `json:"cogs"`
	CashFlow          int `json:"cashFlow"`
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Runway computes cash runway in months. A net burn at or below zero means
// revenue covers expenses and the runway is unbounded.
func (s *Service) Runway(currentCash, monthlyBurn, monthlyRevenue float64) RunwayResult {
	netBurn := monthlyBurn - monthlyRevenue

	result := RunwayResult{
		NetBurn:        netBurn,
		CurrentCash:    currentCash,
		MonthlyBurn:    monthlyBurn,
		MonthlyRevenue: monthlyRevenue,
	}

	if netBurn <= 0 {
		result.Status = "Healthy"
		return result
	}

	months := round1(currentCash / netBurn)
	result.Months = &months
	depletion := s.now().Add(time.Duration(months * 30 * 24 * float64(time.Hour)))
	result.ProjectedDepletion = &depletion
	result.Status = runwayStatus(months)
	return result
}

func runwayStatus(months float64) string {
	switch {
	case months > healthyRunwayMonths:
		return "Healthy"
	case months > moderateRunwayMonths:
		return "Moderate"
	default:
		return "Critical"
	}
}

// Forecast projects cash month by month with compounding revenue growth.
// The projection stops early once cash is depleted.
func (s *Service) Forecast(currentCash, monthlyBurn, monthlyRevenue, growthRate float64) []ForecastMonth {
	if growthRate == 0 {
		growthRate = 0.05
	}

	months := make([]ForecastMonth, 0, forecastHorizonMonths)
	cash := currentCash
	revenue := monthlyRevenue

	for i := 0; i < forecastHorizonMonths; i++ {
		cash = cash + revenue - monthlyBurn
		revenue = revenue * (1 + growthRate)

		months = append(months, ForecastMonth{
			Month:   i + 1,
			Cash:    math.Round(cash),
			Revenue: math.Round(revenue),
			Burn:    monthlyBurn,
		})

		if cash <= 0 {
			break
		}
	}
	return months
}

func (s *Service) Metrics() Metrics {
	return Metrics{
		GrossMargin:       75,
		NetMargin:         15,
		OperatingExpenses: 45000,
		COGS:              12000,
		CashFlow:          8000,
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

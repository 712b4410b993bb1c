package financial

import (
	"testing"
	"time"
)

func fixedNowService() *Service {
	svc := NewService()
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestRunwayStatusBands(t *testing.T) {
	svc := fixedNowService()

	cases := []struct {
		name          string
		cash          float64
		burn          float64
		revenue       float64
		wantMonths    float64
		wantStatus    string
		wantUnbounded bool
	}{
		{name: "healthy", cash: 130000, burn: 15000, revenue: 5000, wantMonths: 13.0, wantStatus: "Healthy"},
		{name: "moderate", cash: 80000, burn: 15000, revenue: 5000, wantMonths: 8.0, wantStatus: "Moderate"},
		{name: "critical", cash: 40000, burn: 15000, revenue: 5000, wantMonths: 4.0, wantStatus: "Critical"},
		{name: "boundary twelve is moderate", cash: 120000, burn: 15000, revenue: 5000, wantMonths: 12.0, wantStatus: "Moderate"},
		{name: "boundary six is critical", cash: 60000, burn: 15000, revenue: 5000, wantMonths: 6.0, wantStatus: "Critical"},
		{name: "revenue covers burn", cash: 10000, burn: 5000, revenue: 5000, wantUnbounded: true, wantStatus: "Healthy"},
		{name: "profitable", cash: 10000, burn: 5000, revenue: 8000, wantUnbounded: true, wantStatus: "Healthy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.Runway(tc.cash, tc.burn, tc.revenue)
			if result.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q", result.Status, tc.wantStatus)
			}
			if tc.wantUnbounded {
				if result.Months != nil {
					t.Fatalf("expected unbounded runway, got %v months", *result.Months)
				}
				if result.ProjectedDepletion != nil {
					t.Fatal("unbounded runway must not project a depletion date")
				}
				return
			}
			if result.Months == nil {
				t.Fatal("expected a bounded runway")
			}
			if *result.Months != tc.wantMonths {
				t.Fatalf("months = %v, want %v", *result.Months, tc.wantMonths)
			}
			if result.ProjectedDepletion == nil {
				t.Fatal("bounded runway must project a depletion date")
			}
		})
	}
}

func TestRunwayRoundsToOneDecimal(t *testing.T) {
	svc := fixedNowService()

	result := svc.Runway(100000, 20000, 5000)
	if result.Months == nil {
		t.Fatal("expected a bounded runway")
	}
	// 100000 / 15000 = 6.666... rounds to 6.7.
	if *result.Months != 6.7 {
		t.Fatalf("months = %v, want 6.7", *result.Months)
	}
	if result.Status != "Moderate" {
		t.Fatalf("status = %q, want Moderate", result.Status)
	}
}

func TestForecastCompoundsRevenue(t *testing.T) {
	svc := fixedNowService()

	months := svc.Forecast(100000, 10000, 5000, 0.10)
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[0].Cash != 95000 {
		t.Fatalf("month 1 cash = %v, want 95000", months[0].Cash)
	}
	if months[0].Revenue != 5500 {
		t.Fatalf("month 1 revenue = %v, want 5500", months[0].Revenue)
	}
	if months[1].Cash != 90500 {
		t.Fatalf("month 2 cash = %v, want 90500", months[1].Cash)
	}
	for i, m := range months {
		if m.Month != i+1 {
			t.Fatalf("month numbering off at index %d: %d", i, m.Month)
		}
		if m.Burn != 10000 {
			t.Fatalf("burn changed at month %d: %v", m.Month, m.Burn)
		}
	}
}

func TestForecastStopsWhenCashDepleted(t *testing.T) {
	svc := fixedNowService()

	months := svc.Forecast(20000, 15000, 1000, 0.05)
	if len(months) >= 12 {
		t.Fatalf("expected early stop, got %d months", len(months))
	}
	last := months[len(months)-1]
	if last.Cash > 0 {
		t.Fatalf("projection stopped with cash remaining: %v", last.Cash)
	}
	for _, m := range months[:len(months)-1] {
		if m.Cash <= 0 {
			t.Fatalf("month %d already depleted but projection continued", m.Month)
		}
	}
}

func TestForecastDefaultGrowthRate(t *testing.T) {
	svc := fixedNowService()

	months := svc.Forecast(100000, 10000, 10000, 0)
	if months[0].Revenue != 10500 {
		t.Fatalf("month 1 revenue = %v, want 10500 with 5%% default growth", months[0].Revenue)
	}
}

package analytics

// Point is one month of a metric series.
type Point struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Growth summarizes period-over-period movement.
type Growth struct {
	RevenueGrowth string `json:"revenueGrowth"`
	UserGrowth    string `json:"userGrowth"`
	ChurnRate     string `json:"churnRate"`
}

// Overview is the dashboard chart payload.
type Overview struct {
	Revenue []Point `json:"revenue"`
	Users   []Point `json:"users"`
	Growth  Growth  `json:"growth"`
}

// Metrics are the headline SaaS figures.
type Metrics struct {
	MRR         int     `json:"mrr"`
	ARR         int     `json:"arr"`
	LTV         int     `json:"ltv"`
	CAC         int     `json:"cac"`
	LTVCACRatio int     `json:"ltvCacRatio"`
	ActiveUsers int     `json:"activeUsers"`
	ChurnRate   float64 `json:"churnRate"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Overview returns six months of illustrative series. Real usage data is
// not collected yet.
func (s *Service) Overview() Overview {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

	revenue := make([]Point, len(months))
	users := make([]Point, len(months))
	for i, month := range months {
		revenue[i] = Point{Month: month, Value: float64(10000 + i*5000)}
		users[i] = Point{Month: month, Value: float64(100 + i*50)}
	}

	return Overview{
		Revenue: revenue,
		Users:   users,
		Growth: Growth{
			RevenueGrowth: "+45%",
			UserGrowth:    "+38%",
			ChurnRate:     "2.5%",
		},
	}
}

func (s *Service) Metrics() Metrics {
	return Metrics{
		MRR:         45000,
		ARR:         540000,
		LTV:         12000,
		CAC:         800,
		LTVCACRatio: 15,
		ActiveUsers: 1250,
		ChurnRate:   2.5,
	}
}

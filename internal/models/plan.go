package models

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanFamily  = "family"
)

// Plan is an insurance tier with a fixed monthly price and maximum coverage.
// The catalog is static and read-only; plans are looked up by id or by price.
type Plan struct {
	ID          string   `json:"id"`
	Price       float64  `json:"price"`
	MaxCoverage float64  `json:"max_coverage"`
	Features    []string `json:"features"` // translation keys, resolved client-side
}

var planCatalog = map[string]Plan{
	PlanBasic: {
		ID:          PlanBasic,
		Price:       9.90,
		MaxCoverage: 2000,
		Features: []string{
			"plan-basic-feature-1",
			"plan-basic-feature-2",
			"plan-basic-feature-3",
			"plan-basic-feature-4",
			"plan-basic-feature-5",
		},
	},
	PlanPremium: {
		ID:          PlanPremium,
		Price:       24.90,
		MaxCoverage: 5000,
		Features: []string{
			"plan-premium-feature-1",
			"plan-premium-feature-2",
			"plan-premium-feature-3",
			"plan-premium-feature-4",
			"plan-premium-feature-5",
			"plan-premium-feature-6",
		},
	},
	PlanFamily: {
		ID:          PlanFamily,
		Price:       39.90,
		MaxCoverage: 10000,
		Features: []string{
			"plan-family-feature-1",
			"plan-family-feature-2",
			"plan-family-feature-3",
			"plan-family-feature-4",
			"plan-family-feature-5",
			"plan-family-feature-6",
		},
	},
}

// GetPlan returns the plan for the given id.
func GetPlan(id string) (Plan, bool) {
	p, ok := planCatalog[id]
	return p, ok
}

// GetPlanByPrice returns the plan whose monthly price matches exactly.
// Prices come from the same fixed decimal literals on both sides, so
// float equality is safe here.
func GetPlanByPrice(price float64) (Plan, bool) {
	for _, p := range planCatalog {
		if p.Price == price {
			return p, true
		}
	}
	return Plan{}, false
}

// AllPlans returns the catalog in a stable order.
func AllPlans() []Plan {
	return []Plan{
		planCatalog[PlanBasic],
		planCatalog[PlanPremium],
		planCatalog[PlanFamily],
	}
}

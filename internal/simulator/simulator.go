// Package simulator implements the premium simulation engine: input
// validation, the premium calculation itself, and single-slot persistence
// of the last calculation.
package simulator

// Simulator configuration. Values mirror the published simulator rules and
// are fixed at compile time.
const (
	MinItemValue      = 100.0
	MaxItemValue      = 15000.0
	RiskSurchargeRate = 0.02
	MinDuration       = 1
	MaxDuration       = 12

	Currency = "S/"

	DefaultItemValue = 1000.0
	DefaultPlanID    = "premium"
	DefaultDuration  = 6
)

// PremiumCalculation carries the derived premium values plus the echoed
// inputs. All values keep full float precision; rounding happens only at
// display time.
type PremiumCalculation struct {
	BasePremium    float64 `json:"base_premium"`
	RiskSurcharge  float64 `json:"risk_surcharge"`
	TotalPremium   float64 `json:"total_premium"`
	MonthlyAverage float64 `json:"monthly_average"`
	CoverageRatio  float64 `json:"coverage_ratio"`

	ItemValue float64 `json:"item_value"`
	PlanPrice float64 `json:"plan_price"`
	Duration  int     `json:"duration"`
}

// Calculate computes the premium for already-validated inputs. It is pure
// and deliberately not defensive: callers must run validation first, a
// duration of zero would divide by zero here.
func Calculate(itemValue, planPrice float64, duration int) PremiumCalculation {
	basePremium := planPrice * float64(duration)
	riskSurcharge := itemValue * RiskSurchargeRate
	totalPremium := basePremium + riskSurcharge
	monthlyAverage := totalPremium / float64(duration)
	coverageRatio := (itemValue / totalPremium) * 100

	return PremiumCalculation{
		BasePremium:    basePremium,
		RiskSurcharge:  riskSurcharge,
		TotalPremium:   totalPremium,
		MonthlyAverage: monthlyAverage,
		CoverageRatio:  coverageRatio,
		ItemValue:      itemValue,
		PlanPrice:      planPrice,
		Duration:       duration,
	}
}

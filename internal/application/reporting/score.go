package reporting

import "github.com/shopspring/decimal"

// Target hours per day used by the productivity score.
const (
	targetWorkingHours = 8.0
	workingWeight      = 70.0
	appUsageWeight     = 30.0
)

// ProductivityScore is a deterministic score in [0,100] for one day:
//
//	70 * min(working_hours/8, 1) + 30 * min(app_usage_hours/8, 1)
//
// Working time dominates; tracked app usage fills in the rest. A day without
// any rows scores 0.
func ProductivityScore(workingHours, appUsageHours decimal.Decimal) decimal.Decimal {
	w := ratioCapped(workingHours)
	a := ratioCapped(appUsageHours)
	score := w.Mul(decimal.NewFromFloat(workingWeight)).Add(a.Mul(decimal.NewFromFloat(appUsageWeight)))
	return score.Round(2)
}

func ratioCapped(hours decimal.Decimal) decimal.Decimal {
	if hours.Sign() <= 0 {
		return decimal.Zero
	}
	ratio := hours.Div(decimal.NewFromFloat(targetWorkingHours))
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}

package estimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/energy-estimate/pkg/constants"
	"go.uber.org/zap"
)

// ErrUnresolvableInput indicates that the construction year or floor area
// failed to match any configured bracket. This is the estimator's sole
// failure mode; callers render a validation message and skip the chart.
var ErrUnresolvableInput = errors.New("input does not match any configured bracket")

// Result holds the annual and monthly cost estimates together with the
// bounds of their 95% confidence intervals. Constructed once per
// calculation; values are in dollars.
type Result struct {
	Annual      float64
	Monthly     float64
	AnnualLow   float64
	AnnualHigh  float64
	MonthlyLow  float64
	MonthlyHigh float64
	YearBracket Bracket
	AreaBracket Bracket
}

// Tables bundles the two bracket sets and the reference average unit cost
// used for floor-area normalization.
type Tables struct {
	Year              BracketSet
	Area              BracketSet
	ReferenceUnitCost float64
}

// DefaultTables holds the fixed national dataset.
var DefaultTables = Tables{
	Year:              YearBrackets,
	Area:              AreaBrackets,
	ReferenceUnitCost: ReferenceUnitCost,
}

// Compute produces a cost estimate against the default tables for a home
// built in the given year with the given floor area in square feet, scaled
// by the regional multiplier.
//
// The regional scalar is not validated here; the config layer normalizes
// non-positive or non-finite scalars to the default before invocation.
func Compute(logger *zap.Logger, year, squareFeet int, regionScalar float64) (*Result, error) {
	return DefaultTables.Compute(logger, year, squareFeet, regionScalar)
}

// Compute produces a cost estimate against these tables.
func (t Tables) Compute(logger *zap.Logger, year, squareFeet int, regionScalar float64) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	yearBracket, ok := t.Year.Match(float64(year))
	if !ok {
		return nil, fmt.Errorf("%w: no construction-year bracket for %d", ErrUnresolvableInput, year)
	}

	areaBracket, ok := t.Area.Match(float64(squareFeet))
	if !ok {
		return nil, fmt.Errorf("%w: no floor-area bracket for %d", ErrUnresolvableInput, squareFeet)
	}

	// Normalize the year bracket's national average by the floor-area
	// bracket's cost relative to the overall reference average.
	sqftFactor := areaBracket.UnitCost / t.ReferenceUnitCost
	annual := yearBracket.UnitCost * sqftFactor * regionScalar

	// The two relative standard errors are combined via root-sum-of-squares
	// under an assumed independence of the error sources.
	cvYear := yearBracket.RSE / 100
	cvArea := areaBracket.RSE / 100
	combinedCV := math.Sqrt(cvYear*cvYear + cvArea*cvArea)

	standardError := annual * combinedCV
	margin := constants.ConfidenceZScore * standardError

	result := &Result{
		Annual:      annual,
		Monthly:     annual / constants.MonthsPerYear,
		AnnualLow:   annual - margin,
		AnnualHigh:  annual + margin,
		MonthlyLow:  (annual - margin) / constants.MonthsPerYear,
		MonthlyHigh: (annual + margin) / constants.MonthsPerYear,
		YearBracket: yearBracket,
		AreaBracket: areaBracket,
	}

	logger.Debug("computed estimate",
		zap.String("op", "estimate.Compute"),
		zap.String("yearBracket", yearBracket.Label),
		zap.String("areaBracket", areaBracket.Label),
		zap.Float64("annual", result.Annual),
		zap.Float64("combinedCV", combinedCV),
	)

	return result, nil
}

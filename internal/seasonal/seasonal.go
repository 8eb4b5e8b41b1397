// Package seasonal expands a monthly base estimate into a twelve-month
// series using a fixed normalized weight vector.
package seasonal

import "github.com/iwvelando/energy-estimate/pkg/constants"

// MonthsPerYear is the length of every seasonal series.
const MonthsPerYear = constants.MonthsPerYear

// Weights is the fixed seasonal multiplier per calendar month, January
// first. The vector's mean is exactly 1.0 so the decomposed series
// averages back to the base monthly estimate. This is an invariant of the
// constant data, not checked at runtime.
var Weights = [MonthsPerYear]float64{
	1.11, // January
	1.03, // February
	0.91, // March
	0.83, // April
	0.85, // May
	1.02, // June
	1.19, // July
	1.21, // August
	1.06, // September
	0.89, // October
	0.90, // November
	1.00, // December
}

// MonthLabels holds the chart axis labels in calendar order.
var MonthLabels = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Decompose multiplies the base monthly estimate by each seasonal weight
// and returns the twelve values in calendar order. Non-finite bases
// propagate through the multiplication unhandled.
func Decompose(baseMonthly float64) []float64 {
	series := make([]float64, MonthsPerYear)
	for i, weight := range Weights {
		series[i] = baseMonthly * weight
	}
	return series
}

// Labels returns the month names as a slice in calendar order.
func Labels() []string {
	return MonthLabels[:]
}

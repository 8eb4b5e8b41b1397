package estimate

// ReferenceUnitCost is the national average annual electricity cost in
// dollars across all floor-area brackets. The area bracket's unit cost is
// divided by this to form the floor-area normalization factor.
const ReferenceUnitCost = 1839.0

// YearBrackets maps construction-year ranges to average annual electricity
// cost and its relative standard error. The first and last entries are
// open-ended so every year matches.
var YearBrackets = BracketSet{
	{Label: "Before 1950", Upper: bound(1949), UnitCost: 1522, RSE: 2.31},
	{Label: "1950-1959", Lower: bound(1950), Upper: bound(1959), UnitCost: 1655, RSE: 2.78},
	{Label: "1960-1969", Lower: bound(1960), Upper: bound(1969), UnitCost: 1717, RSE: 2.40},
	{Label: "1970-1979", Lower: bound(1970), Upper: bound(1979), UnitCost: 1776, RSE: 1.86},
	{Label: "1980-1989", Lower: bound(1980), Upper: bound(1989), UnitCost: 1872, RSE: 2.09},
	{Label: "1990-1999", Lower: bound(1990), Upper: bound(1999), UnitCost: 2048, RSE: 2.17},
	{Label: "2000-2009", Lower: bound(2000), Upper: bound(2009), UnitCost: 2121, RSE: 1.94},
	{Label: "2010 and later", Lower: bound(2010), UnitCost: 2069, RSE: 3.12},
}

// AreaBrackets maps floor-area ranges in square feet to average annual
// electricity cost and its relative standard error.
var AreaBrackets = BracketSet{
	{Label: "<1000", Upper: bound(999), UnitCost: 1296, RSE: 1.92},
	{Label: "1000-1499", Lower: bound(1000), Upper: bound(1499), UnitCost: 1554, RSE: 1.63},
	{Label: "1500-1999", Lower: bound(1500), Upper: bound(1999), UnitCost: 1908, RSE: 1.06},
	{Label: "2000-2499", Lower: bound(2000), Upper: bound(2499), UnitCost: 2035, RSE: 1.70},
	{Label: "2500-2999", Lower: bound(2500), Upper: bound(2999), UnitCost: 2229, RSE: 1.84},
	{Label: "3000-3999", Lower: bound(3000), Upper: bound(3999), UnitCost: 2436, RSE: 2.27},
	{Label: "4000-4999", Lower: bound(4000), Upper: bound(4999), UnitCost: 2754, RSE: 3.15},
	{Label: "5000+", Lower: bound(5000), UnitCost: 3062, RSE: 3.90},
}

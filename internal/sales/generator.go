// Package sales produces the placeholder sales series backing the dashboard
// charts. The numbers are generated, not measured; real analytics is out of
// scope.
package sales

import (
	"math/rand/v2"
	"time"
)

type Point struct {
	Date  string `json:"date"`
	Sales int    `json:"sales"`
}

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// PeriodDays maps a period name to its series length. Unknown periods fall
// back to weekly, same as an absent query parameter.
func PeriodDays(period string) int {
	switch period {
	case PeriodMonthly:
		return 30
	case PeriodYearly:
		return 365
	default:
		return 7
	}
}

// Series returns one point per day, newest first, each between 50 and 150.
func Series(days int) []Point {
	base := time.Now()
	points := make([]Point, 0, days)

	for i := 0; i < days; i++ {
		points = append(points, Point{
			Date:  base.AddDate(0, 0, -i).Format("2006-01-02"),
			Sales: 50 + rand.IntN(101),
		})
	}

	return points
}

package sales

import "context"

// Fetch returns the series for a period, preferring today's cached copy so
// every consumer charts the same numbers. A nil cache degrades to plain
// generation.
func Fetch(ctx context.Context, c *Cache, period string) []Point {
	if c != nil {
		if points, ok := c.Get(ctx, period); ok {
			return points
		}
	}

	points := Series(PeriodDays(period))

	if c != nil {
		c.Set(ctx, period, points)
	}

	return points
}

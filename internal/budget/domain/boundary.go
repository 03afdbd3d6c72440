package domain

import (
	"finance-tracker/internal/infra/utils"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

type boundary struct {
	expression string
	// lookback is longer than one period, so the window always holds a boundary.
	lookback time.Duration
}

var boundaries = map[PeriodType]boundary{
	PeriodDaily:   {expression: "0 0 * * *", lookback: 48 * time.Hour},
	PeriodWeekly:  {expression: "0 0 * * 1", lookback: 8 * 24 * time.Hour},
	PeriodMonthly: {expression: "0 0 1 * *", lookback: 32 * 24 * time.Hour},
	PeriodYearly:  {expression: "0 0 1 1 *", lookback: 367 * 24 * time.Hour},
}

// derivedRange returns the dates of the boundary at or before now and the day
// before the boundary that follows it. The calendar date is taken in now's
// location; the schedule runs on that date at noon UTC, where midnight
// boundaries always exist.
func derivedRange(periodType PeriodType, now time.Time) (string, string, error) {
	b, ok := boundaries[periodType]
	if !ok {
		return "", "", fmt.Errorf("no boundary for period type %s", periodType)
	}

	schedule, err := cronParser.Parse(b.expression)
	if err != nil {
		return "", "", fmt.Errorf("parsing boundary %q: %w", b.expression, err)
	}

	year, month, day := now.Date()
	now = time.Date(year, month, day, 12, 0, 0, 0, time.UTC)

	start := schedule.Next(now.Add(-b.lookback))
	if start.After(now) {
		return "", "", fmt.Errorf("no %s boundary before %s", periodType, now.Format(time.RFC3339))
	}
	for {
		next := schedule.Next(start)
		if next.After(now) {
			end := next.AddDate(0, 0, -1)
			return start.Format(utils.DateLayout), end.Format(utils.DateLayout), nil
		}
		start = next
	}
}

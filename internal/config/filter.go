package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/The-Faulkners/putttracker/internal/timeutil"
)

// FilterConfig restricts which sessions are shown by their start time.
// A zero StartTime means no lower bound.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// Includes reports whether a session started at t falls inside the
// filter's range.
func (f *FilterConfig) Includes(t time.Time) bool {
	if !f.StartTime.IsZero() && t.Before(f.StartTime) {
		return false
	}

	if !f.EndTime.IsZero() && t.After(f.EndTime) {
		return false
	}

	return true
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// Filter builds a session filter from command-line arguments. Without
// any filtering flags it spans the entire history.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	if start := ctx.String("start"); start != "" {
		dateTime, err := timeutil.FromStr(start)
		if err != nil {
			return nil, errInvalidStartDate.Wrap(err)
		}

		filterCfg.StartTime = dateTime
	}

	if end := ctx.String("end"); end != "" {
		dateTime, err := timeutil.FromStr(end)
		if err != nil {
			return nil, errInvalidEndDate.Wrap(err)
		}

		filterCfg.EndTime = timeutil.RoundToEnd(dateTime)
	}

	if !filterCfg.StartTime.IsZero() && !filterCfg.EndTime.IsZero() &&
		filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

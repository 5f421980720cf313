package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/The-Faulkners/putttracker/internal/timeutil"
)

func filterContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("list", flag.PanicOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		err := f.Set(k, v)
		if err != nil {
			t.Log(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestFilter_Defaults(t *testing.T) {
	cfg, err := Filter(filterContext(t, nil))
	require.NoError(t, err)

	assert.True(t, cfg.StartTime.IsZero())
	assert.True(t, cfg.EndTime.IsZero())
	assert.True(t, cfg.Includes(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilter_Period(t *testing.T) {
	cfg, err := Filter(filterContext(t, map[string]string{
		"period": "7days",
	}))
	require.NoError(t, err)

	wantStart := timeutil.RoundToStart(time.Now().AddDate(0, 0, -6))

	assert.WithinDuration(t, wantStart, cfg.StartTime, time.Minute)
	assert.True(t, cfg.Includes(time.Now()))
	assert.False(t, cfg.Includes(time.Now().AddDate(0, 0, -10)))
}

func TestFilter_InvalidPeriod(t *testing.T) {
	_, err := Filter(filterContext(t, map[string]string{
		"period": "fortnight",
	}))

	assert.ErrorIs(t, err, errInvalidPeriod)
}

func TestFilter_StartAndEnd(t *testing.T) {
	cfg, err := Filter(filterContext(t, map[string]string{
		"start": "2024-06-01",
		"end":   "2024-06-30",
	}))
	require.NoError(t, err)

	assert.False(
		t,
		cfg.Includes(time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)),
	)
	assert.True(
		t,
		cfg.Includes(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)),
	)
	assert.False(
		t,
		cfg.Includes(time.Date(2024, time.July, 2, 12, 0, 0, 0, time.UTC)),
	)
}

func TestFilter_EndBeforeStart(t *testing.T) {
	_, err := Filter(filterContext(t, map[string]string{
		"start": "2024-06-30",
		"end":   "2024-06-01",
	}))

	assert.ErrorIs(t, err, errInvalidDateRange)
}

//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, strategy pricing.Strategy, raw string) pricing.StrategyConfig {
	t.Helper()
	cfg, err := pricing.DecodeConfig(strategy, []byte(raw))
	require.NoError(t, err)
	return cfg
}

func TestComputePrice_Slab(t *testing.T) {
	cfg := mustConfig(t, pricing.StrategySlab, `{"slabs":[
		{"maxHours":1,"price":"5.00"},
		{"maxHours":3,"price":"12.00"},
		{"maxHours":null,"price":"30.00"}]}`)

	testCases := []struct {
		name    string
		minutes int64
		want    string
	}{
		{name: "half hour falls in first slab", minutes: 30, want: "5.00"},
		{name: "exactly one hour stays in first slab", minutes: 60, want: "5.00"},
		{name: "two hours falls in second slab", minutes: 120, want: "12.00"},
		{name: "ten hours falls in open slab", minutes: 600, want: "30.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.ComputePrice(cfg, pricing.Billable{Minutes: tc.minutes})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestComputePrice_SlabBeyondBoundedSlabs(t *testing.T) {
	cfg := mustConfig(t, pricing.StrategySlab, `{"slabs":[{"maxHours":1,"price":"5.00"},{"maxHours":2,"price":"8.00"}]}`)
	got, err := pricing.ComputePrice(cfg, pricing.Billable{Minutes: 300})
	require.NoError(t, err)
	assert.Equal(t, "8.00", got.String())
}

func TestComputePrice_Hourly(t *testing.T) {
	cfg := mustConfig(t, pricing.StrategyHourly, `{"ratePerHour":"4.00"}`)

	testCases := []struct {
		minutes int64
		want    string
	}{
		{minutes: 0, want: "0.00"},
		{minutes: 1, want: "4.00"},
		{minutes: 60, want: "4.00"},
		{minutes: 61, want: "8.00"},
		{minutes: 225, want: "16.00"},
	}
	for _, tc := range testCases {
		got, err := pricing.ComputePrice(cfg, pricing.Billable{Minutes: tc.minutes})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "minutes=%d", tc.minutes)
	}
}

func TestComputePrice_FlatIgnoresDuration(t *testing.T) {
	cfg := mustConfig(t, pricing.StrategyFlat, `{"amount":"10.00"}`)
	for _, m := range []int64{0, 15, 600} {
		got, err := pricing.ComputePrice(cfg, pricing.Billable{Minutes: m})
		require.NoError(t, err)
		assert.Equal(t, "10.00", got.String())
	}
}

func TestComputePrice_Dynamic(t *testing.T) {
	cfg := mustConfig(t, pricing.StrategyDynamic, `{
		"ratePerHour":"4.00",
		"peakWindows":[{"days":["MON","TUE","WED","THU","FRI"],"start":"08:00","end":"18:00","multiplier":"1.5"}],
		"offPeakMultiplier":"0.5"}`)

	// 2026-03-02 is a Monday
	peak := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	offPeak := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	weekend := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)

	got, err := pricing.ComputePrice(cfg, pricing.Billable{Start: peak, Minutes: 120})
	require.NoError(t, err)
	assert.Equal(t, "12.00", got.String())

	got, err = pricing.ComputePrice(cfg, pricing.Billable{Start: offPeak, Minutes: 120})
	require.NoError(t, err)
	assert.Equal(t, "4.00", got.String())

	got, err = pricing.ComputePrice(cfg, pricing.Billable{Start: weekend, Minutes: 120})
	require.NoError(t, err)
	assert.Equal(t, "4.00", got.String())
}

func TestDecodeConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		strategy pricing.Strategy
		raw      string
	}{
		{name: "empty slabs", strategy: pricing.StrategySlab, raw: `{"slabs":[]}`},
		{name: "unbounded slab not last", strategy: pricing.StrategySlab, raw: `{"slabs":[{"maxHours":null,"price":"1.00"},{"maxHours":2,"price":"2.00"}]}`},
		{name: "decreasing slab bounds", strategy: pricing.StrategySlab, raw: `{"slabs":[{"maxHours":3,"price":"1.00"},{"maxHours":2,"price":"2.00"}]}`},
		{name: "float money", strategy: pricing.StrategyHourly, raw: `{"ratePerHour":"4.005"}`},
		{name: "inverted peak window", strategy: pricing.StrategyDynamic, raw: `{"ratePerHour":"4.00","peakWindows":[{"start":"18:00","end":"08:00","multiplier":"2"}]}`},
		{name: "malformed json", strategy: pricing.StrategyFlat, raw: `{"amount":`},
		{name: "unknown strategy", strategy: pricing.Strategy("TIERED"), raw: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.DecodeConfig(tc.strategy, []byte(tc.raw))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}
}

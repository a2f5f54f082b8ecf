package enrichment

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWorkingHours(t *testing.T, value string) {
	t.Helper()

	parsed, err := time.Parse(timeOfDayLayout, value)
	require.NoError(t, err, "time %q should be HH:MM:SS", value)
	assert.GreaterOrEqual(t, parsed.Hour(), 8)
	assert.LessOrEqual(t, parsed.Hour(), 18)
}

func TestRepairTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)

	t.Run("missing date is fully synthesized", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		got := RepairTimestamp(nil, now, rng)

		assert.Contains(t, workdayNames, got.DayName)
		assertWorkingHours(t, got.TimeOfDay)
		assert.Equal(t, 0, got.WorkingDays)
		assert.True(t, got.DaySynthesized)
		assert.True(t, got.TimeSynthesized)
	})

	t.Run("midnight keeps weekday and synthesizes time", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

		got := RepairTimestamp(&date, now, rng)

		assert.Equal(t, "Monday", got.DayName)
		assert.NotEqual(t, "00:00:00", got.TimeOfDay)
		assertWorkingHours(t, got.TimeOfDay)
		assert.Equal(t, 10, got.WorkingDays)
		assert.False(t, got.DaySynthesized)
		assert.True(t, got.TimeSynthesized)
	})

	t.Run("recorded time is kept", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		date := time.Date(2024, 3, 11, 14, 30, 15, 0, time.UTC)

		got := RepairTimestamp(&date, now, rng)

		assert.Equal(t, "Monday", got.DayName)
		assert.Equal(t, "14:30:15", got.TimeOfDay)
		assert.Equal(t, 9, got.WorkingDays)
		assert.False(t, got.TimeSynthesized)
	})

	t.Run("one second past midnight is a real time", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		date := time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC)

		got := RepairTimestamp(&date, now, rng)

		assert.Equal(t, "00:00:01", got.TimeOfDay)
		assert.False(t, got.TimeSynthesized)
	})

	t.Run("future date gives negative working days", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		date := now.Add(72*time.Hour + time.Hour)

		got := RepairTimestamp(&date, now, rng)

		assert.Equal(t, -3, got.WorkingDays)
	})
}

func TestRepairTimestamp_SynthesisRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)

	hours := make(map[int]bool)
	days := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		got := RepairTimestamp(nil, now, rng)
		assertWorkingHours(t, got.TimeOfDay)

		parsed, err := time.Parse(timeOfDayLayout, got.TimeOfDay)
		require.NoError(t, err)
		hours[parsed.Hour()] = true
		days[got.DayName] = true
	}

	assert.Len(t, hours, 11, "every hour from 08 to 18 should be drawn")
	assert.Len(t, days, 5, "every weekday should be drawn")
	assert.False(t, days["Saturday"])
	assert.False(t, days["Sunday"])
}

func TestRepairTimestamp_SeededIsReproducible(t *testing.T) {
	now := time.Date(2024, 3, 21, 12, 0, 0, 0, time.UTC)

	a := RepairTimestamp(nil, now, rand.New(rand.NewSource(99)))
	b := RepairTimestamp(nil, now, rand.New(rand.NewSource(99)))

	assert.Equal(t, a, b)
}

func TestWholeDaysBetween(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		date time.Time
		now  time.Time
		want int
	}{
		{name: "same instant", date: base, now: base, want: 0},
		{name: "partial day truncates", date: base, now: base.Add(23 * time.Hour), want: 0},
		{name: "exact days", date: base, now: base.AddDate(0, 0, 31), want: 31},
		{name: "leap february", date: base, now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: 60},
		{name: "future truncates toward zero", date: base.Add(36 * time.Hour), now: base, want: -1},
		{
			name: "spring forward keeps calendar days",
			date: time.Date(2024, 3, 9, 0, 0, 0, 0, newYork),
			now:  time.Date(2024, 3, 12, 0, 30, 0, 0, newYork),
			want: 3,
		},
		{
			name: "fall back keeps calendar days",
			date: time.Date(2024, 11, 2, 23, 30, 0, 0, newYork),
			now:  time.Date(2024, 11, 4, 23, 0, 0, 0, newYork),
			want: 1,
		},
		{
			name: "now in another zone",
			date: time.Date(2024, 3, 9, 0, 0, 0, 0, newYork),
			now:  time.Date(2024, 3, 12, 4, 30, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WholeDaysBetween(tt.date, tt.now))
		})
	}
}

package service

import (
	"testing"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultUnavailable = []string{"12:00 PM", "03:30 PM", "05:00 PM"}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 17, 250, time.UTC)
}

func labels(bucket entity.DayBucket) []string {
	out := make([]string, len(bucket.Slots))
	for i, s := range bucket.Slots {
		out[i] = s.Time
	}
	return out
}

func TestSlotGenerator_BeforeOpening(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	days := g.Generate(at(5, 8, 45))
	require.Len(t, days, SlotWindowDays)

	assert.Equal(t, time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC), days[0].Slots[0].DateTime)
	assert.Equal(t, "10:00 AM", days[0].Slots[0].Time)
	assert.Len(t, days[0].Slots, 22)
	assert.Equal(t, "08:30 PM", days[0].Slots[21].Time)
}

func TestSlotGenerator_TodayStartsAtNextHour(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	cases := []struct {
		name  string
		now   time.Time
		first string
	}{
		{"early in the hour", at(5, 14, 10), "03:00 PM"},
		{"exactly half past", at(5, 14, 30), "03:00 PM"},
		{"late in the hour", at(5, 14, 45), "03:30 PM"},
		{"ten o'clock", at(5, 10, 50), "10:00 AM"},
		{"eleven o'clock", at(5, 11, 5), "12:00 PM"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			days := g.Generate(c.now)
			require.NotEmpty(t, days)
			assert.Equal(t, c.first, days[0].Slots[0].Time)
			assert.Equal(t, 0, days[0].Slots[0].DateTime.Second())
		})
	}
}

func TestSlotGenerator_LateEvening(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	days := g.Generate(at(5, 20, 45))
	require.Len(t, days, SlotWindowDays-1, "today has no slot left and is omitted")
	assert.Equal(t, time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2026, time.March, 6, 10, 0, 0, 0, time.UTC), days[0].Slots[0].DateTime)

	days = g.Generate(at(5, 19, 45))
	require.Len(t, days, SlotWindowDays)
	assert.Equal(t, []string{"08:30 PM"}, labels(days[0]))

	days = g.Generate(at(5, 23, 40))
	require.Len(t, days, SlotWindowDays-1)
	assert.Equal(t, 6, days[0].Date.Day())
}

func TestSlotGenerator_DayLabels(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	days := g.Generate(at(5, 18, 0))
	want := []string{"07:00 PM", "07:30 PM", "08:00 PM", "08:30 PM"}
	if diff := cmp.Diff(want, labels(days[0])); diff != "" {
		t.Fatalf("today labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSlotGenerator_Properties(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 15, 30, 31, 59} {
			now := at(5, hour, minute)
			days := g.Generate(now)
			require.LessOrEqual(t, len(days), SlotWindowDays)

			for i, day := range days {
				require.NotEmpty(t, day.Slots)
				closing := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), SlotClosingHour, 0, 0, 0, time.UTC)

				if day.Date.Day() != 5 {
					assert.Equal(t, "10:00 AM", day.Slots[0].Time)
				}
				if i > 0 {
					assert.True(t, day.Date.After(days[i-1].Date))
				}

				for j, slot := range day.Slots {
					assert.True(t, slot.DateTime.Before(closing), "slot %s must end before 21:00", slot.Time)
					assert.Equal(t, day.Date.Day(), slot.DateTime.Day())
					if j > 0 {
						assert.Equal(t, SlotStep, slot.DateTime.Sub(day.Slots[j-1].DateTime))
					}
					assert.Equal(t, !entity.UnavailableList(defaultUnavailable).Contains(slot.Time), slot.Available)
				}
			}
		}
	}
}

func TestSlotGenerator_Availability(t *testing.T) {
	g := NewSlotGenerator(defaultUnavailable, time.UTC)

	days := g.Generate(at(5, 7, 0))
	var blocked []string
	for _, slot := range days[1].Slots {
		if !slot.Available {
			blocked = append(blocked, slot.Time)
		}
	}
	assert.Equal(t, defaultUnavailable, blocked)

	open := NewSlotGenerator(nil, time.UTC).Generate(at(5, 7, 0))
	for _, slot := range open[1].Slots {
		assert.True(t, slot.Available)
	}
}

func TestSlotGenerator_UsesConfiguredLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	g := NewSlotGenerator(defaultUnavailable, jakarta)

	// 02:00 UTC is 09:00 in Jakarta, so today opens at 10:00 local time
	days := g.Generate(time.Date(2026, time.March, 5, 2, 0, 0, 0, time.UTC))
	require.Len(t, days, SlotWindowDays)
	assert.Equal(t, "10:00 AM", days[0].Slots[0].Time)
	assert.Equal(t, jakarta, days[0].Slots[0].DateTime.Location())
}

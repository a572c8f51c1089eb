package studyday_test

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-tracker/pkg/studyday"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestWindowFor_DailyNoOffsetIsCalendarDay(t *testing.T) {
	ref := utc(2025, time.March, 10, 15, 30)

	w, err := studyday.WindowFor(ref, studyday.Daily, 0)
	require.NoError(t, err)

	assert.True(t, w.Start.Equal(utc(2025, time.March, 10, 0, 0)))
	assert.True(t, w.Next().Equal(utc(2025, time.March, 11, 0, 0)))
	assert.Equal(t, 24*time.Hour-time.Millisecond, w.End.Sub(w.Start))
}

func TestWindowFor_DailyOffsetCarriesToPreviousDay(t *testing.T) {
	offset := 5 * 60

	early, err := studyday.WindowFor(utc(2025, time.March, 10, 4, 59), studyday.Daily, offset)
	require.NoError(t, err)
	assert.True(t, early.Start.Equal(utc(2025, time.March, 9, 5, 0)), "04:59 belongs to the previous study day")
	assert.True(t, early.End.Equal(utc(2025, time.March, 10, 5, 0).Add(-time.Millisecond)))

	atBoundary, err := studyday.WindowFor(utc(2025, time.March, 10, 5, 0), studyday.Daily, offset)
	require.NoError(t, err)
	assert.True(t, atBoundary.Start.Equal(utc(2025, time.March, 10, 5, 0)), "the boundary opens a new day")
	assert.True(t, early.Next().Equal(atBoundary.Start))
}

func TestWindowFor_MidnightOffsetMatchesNoOffset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := utc(2024, time.January, 1, 0, 0)

	for i := 0; i < 500; i++ {
		ref := base.Add(time.Duration(rng.Int63n(int64(2 * 365 * 24 * time.Hour))))
		for _, p := range []studyday.Period{studyday.Daily, studyday.Weekly, studyday.Monthly} {
			w, err := studyday.WindowFor(ref, p, 0)
			require.NoError(t, err)

			y, m, d := ref.Date()
			switch p {
			case studyday.Daily:
				assert.True(t, w.Start.Equal(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)))
			case studyday.Monthly:
				assert.True(t, w.Start.Equal(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)))
				assert.True(t, w.Next().Equal(time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)))
			case studyday.Weekly:
				assert.Equal(t, time.Sunday, w.Start.Weekday())
			}
			assert.True(t, w.Contains(ref))
		}
	}
}

func TestWindowFor_DailyTilesTimeline(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := utc(2025, time.January, 1, 0, 0)

	for i := 0; i < 2000; i++ {
		offset := rng.Intn(studyday.MinutesPerDay)
		ref := base.Add(time.Duration(rng.Int63n(int64(400 * 24 * time.Hour))))

		w, err := studyday.WindowFor(ref, studyday.Daily, offset)
		require.NoError(t, err)
		require.True(t, w.Contains(ref), "offset=%d ref=%s window=%v", offset, ref, w)

		next, err := studyday.WindowFor(ref.Add(24*time.Hour), studyday.Daily, offset)
		require.NoError(t, err)
		require.True(t, w.Next().Equal(next.Start), "windows for t and t+24h must be adjacent")

		prev, err := studyday.WindowFor(w.Start.Add(-time.Nanosecond), studyday.Daily, offset)
		require.NoError(t, err)
		require.True(t, prev.Next().Equal(w.Start), "no gap before the window")
	}
}

func TestWindowFor_DailyAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("repeated wall time after fall back", func(t *testing.T) {
		// 01:15 EST on 2025-11-02 comes after 01:30 EDT the same night.
		ref := time.Date(2025, time.November, 2, 6, 15, 0, 0, time.UTC).In(ny)

		w, err := studyday.WindowFor(ref, studyday.Daily, 90)
		require.NoError(t, err)
		assert.True(t, w.Contains(ref), "window=%v ref=%s", w, ref)
		assert.Equal(t, 2, w.Start.Day())
	})

	t.Run("tiles the timeline", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		transitions := []time.Time{
			time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC),
			time.Date(2025, time.November, 2, 6, 0, 0, 0, time.UTC),
		}

		for i := 0; i < 2000; i++ {
			offset := rng.Intn(studyday.MinutesPerDay)
			at := transitions[i%len(transitions)]
			ref := at.Add(time.Duration(rng.Int63n(int64(72*time.Hour))) - 36*time.Hour).In(ny)

			w, err := studyday.WindowFor(ref, studyday.Daily, offset)
			require.NoError(t, err)
			require.True(t, w.Contains(ref), "offset=%d ref=%s window=%v", offset, ref, w)

			next, err := studyday.WindowFor(w.Next(), studyday.Daily, offset)
			require.NoError(t, err)
			require.True(t, next.Start.Equal(w.Next()), "offset=%d ref=%s: gap or overlap after %v", offset, ref, w)

			prev, err := studyday.WindowFor(w.Start.Add(-time.Nanosecond), studyday.Daily, offset)
			require.NoError(t, err)
			require.True(t, prev.Next().Equal(w.Start), "offset=%d ref=%s: gap or overlap before %v", offset, ref, w)
		}
	})
}

func TestWindowFor_WeeklyUsesStudyDayWeekday(t *testing.T) {
	offset := 5 * 60
	// Sunday 2025-03-16 03:00 is still Saturday's study day.
	ref := utc(2025, time.March, 16, 3, 0)

	w, err := studyday.WindowFor(ref, studyday.Weekly, offset)
	require.NoError(t, err)

	assert.True(t, w.Start.Equal(utc(2025, time.March, 9, 5, 0)))
	assert.True(t, w.Next().Equal(utc(2025, time.March, 16, 5, 0)))
	assert.True(t, w.Contains(ref))

	after, err := studyday.WindowFor(utc(2025, time.March, 16, 5, 0), studyday.Weekly, offset)
	require.NoError(t, err)
	assert.True(t, after.Start.Equal(w.Next()))
}

func TestWindowFor_MonthlyUsesStudyDayMonth(t *testing.T) {
	offset := 5 * 60
	// April 1st 02:00 still belongs to March 31st's study day.
	ref := utc(2025, time.April, 1, 2, 0)

	w, err := studyday.WindowFor(ref, studyday.Monthly, offset)
	require.NoError(t, err)

	assert.True(t, w.Start.Equal(utc(2025, time.March, 1, 5, 0)))
	assert.True(t, w.End.Equal(utc(2025, time.April, 1, 5, 0).Add(-time.Millisecond)))
	assert.True(t, w.Contains(ref))
}

func TestWindowFor_PeriodsAgreeWithDailyTiling(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := utc(2025, time.January, 1, 0, 0)

	for i := 0; i < 300; i++ {
		offset := rng.Intn(studyday.MinutesPerDay)
		cal, err := studyday.NewCalendar(offset, time.UTC)
		require.NoError(t, err)

		ref := base.Add(time.Duration(rng.Int63n(int64(365 * 24 * time.Hour))))
		day, err := cal.Window(ref, studyday.Daily)
		require.NoError(t, err)

		for _, p := range []studyday.Period{studyday.Weekly, studyday.Monthly} {
			w, err := cal.Window(ref, p)
			require.NoError(t, err)
			require.True(t, w.Contains(day.Start) && w.Contains(day.End), "daily window must nest in %s", p)

			days := cal.Days(w)
			require.NotEmpty(t, days)
			require.True(t, days[0].Start.Equal(w.Start))
			require.True(t, days[len(days)-1].End.Equal(w.End))
			for j := 1; j < len(days); j++ {
				require.True(t, days[j-1].Next().Equal(days[j].Start))
			}
			if p == studyday.Weekly {
				require.Len(t, days, 7)
			}
		}
	}
}

func TestWindowFor_Errors(t *testing.T) {
	ref := utc(2025, time.March, 10, 12, 0)

	_, err := studyday.WindowFor(ref, studyday.Daily, -1)
	assert.ErrorIs(t, err, studyday.ErrInvalidOffset)

	_, err = studyday.WindowFor(ref, studyday.Daily, studyday.MinutesPerDay)
	assert.ErrorIs(t, err, studyday.ErrInvalidOffset)

	_, err = studyday.WindowFor(ref, studyday.Period("yearly"), 0)
	assert.ErrorIs(t, err, studyday.ErrInvalidPeriod)
}

func TestOffsetHelpers(t *testing.T) {
	m, err := studyday.ParseOffset("05:30")
	require.NoError(t, err)
	assert.Equal(t, 330, m)
	assert.Equal(t, "05:30", studyday.FormatOffset(m))

	_, err = studyday.ParseOffset("25:00")
	assert.ErrorIs(t, err, studyday.ErrInvalidOffset)

	p, err := studyday.ParsePeriod(" Weekly ")
	require.NoError(t, err)
	assert.Equal(t, studyday.Weekly, p)
}

func TestCalendar_DayOf(t *testing.T) {
	cal, err := studyday.NewCalendar(4*60, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-09", cal.DayOf(utc(2025, time.March, 10, 3, 59)).String())
	assert.Equal(t, "2025-03-10", cal.DayOf(utc(2025, time.March, 10, 4, 0)).String())

	_, err = studyday.NewCalendar(2000, nil)
	assert.ErrorIs(t, err, studyday.ErrInvalidOffset)
}

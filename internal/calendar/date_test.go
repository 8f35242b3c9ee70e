package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "15/10/2026", want: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{in: "01/01/2024", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "29/02/2024", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{in: "1/3/2024", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: "29/02/2023", wantErr: true},
		{in: "31/04/2024", wantErr: true},
		{in: "00/01/2024", wantErr: true},
		{in: "10/13/2024", wantErr: true},
		{in: "10/00/2024", wantErr: true},
		{in: "2024-01-01", wantErr: true},
		{in: "aa/bb/cccc", wantErr: true},
		{in: "10/10", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestValidateDateRequiresFullShape(t *testing.T) {
	assert.NoError(t, ValidateDate("05/06/2025"))
	assert.ErrorIs(t, ValidateDate("5/6/2025"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("05/06/25"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("31/06/2025"), ErrInvalidDate)
}

func TestDateRoundTrip(t *testing.T) {
	day := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	for ; !day.After(end); day = day.AddDate(0, 0, 1) {
		got, err := ParseDate(FormatDate(day))
		require.NoError(t, err)
		require.True(t, day.Equal(got), "round trip of %s gave %s", day, got)
	}
}

func TestGroupKey(t *testing.T) {
	valid, ok := GroupKey("10/10/2024")
	assert.True(t, ok)
	assert.Equal(t, "10/10/2024", FormatDate(valid))

	broken, ok := GroupKey("99/99/2024")
	assert.False(t, ok)
	assert.True(t, broken.IsZero())

	farFuture, ok := GroupKey("01/01/9999")
	assert.True(t, ok)
	assert.Equal(t, 9999, farFuture.Year())
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 60, DaysBetween(from, to))
	assert.Equal(t, -60, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "01/02/2024", FormatDate(first))
	assert.Equal(t, "29/02/2024", FormatDate(last))
}

func TestWeekdayHelpers(t *testing.T) {
	sat := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(sat))
	assert.False(t, IsWeekend(mon))
	assert.Equal(t, "sábado", WeekdayName(sat))
	assert.Equal(t, "segunda-feira", WeekdayName(mon))
	assert.Equal(t, "Outubro", MonthName(time.October))
	assert.Equal(t, "", MonthName(0))
}

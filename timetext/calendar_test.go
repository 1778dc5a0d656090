package timetext

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamping(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"january to short february", date(2021, 1, 31), 1, date(2021, 2, 28)},
		{"january to leap february", date(2020, 1, 31), 1, date(2020, 2, 29)},
		{"plain month", date(2021, 6, 15), 1, date(2021, 7, 15)},
		{"backwards over short month", date(2021, 3, 31), -1, date(2021, 2, 28)},
		{"across year boundary", date(2021, 11, 30), 3, date(2022, 2, 28)},
		{"zero", date(2021, 6, 15), 0, date(2021, 6, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addMonths(tt.start, tt.months); !got.Equal(tt.want) {
				t.Errorf("addMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddYearsClampsLeapDay(t *testing.T) {
	if got := addYears(date(2020, 2, 29), 1); !got.Equal(date(2021, 2, 28)) {
		t.Errorf("addYears = %v, want 2021-02-28", got)
	}
	if got := addYears(date(2020, 2, 29), 4); !got.Equal(date(2024, 2, 29)) {
		t.Errorf("addYears = %v, want 2024-02-29", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2021, time.February, 28},
		{2020, time.February, 29},
		{2021, time.April, 30},
		{2021, time.December, 31},
	}
	for _, tt := range tests {
		if got := daysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("daysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	// June 2021 starts on a Tuesday.
	anyJune := date(2021, 6, 20)
	if got := nthWeekdayOfMonth(anyJune, 1, time.Tuesday); !got.Equal(date(2021, 6, 1)) {
		t.Errorf("first Tuesday = %v, want 2021-06-01", got)
	}
	if got := nthWeekdayOfMonth(anyJune, 3, time.Tuesday); !got.Equal(date(2021, 6, 15)) {
		t.Errorf("third Tuesday = %v, want 2021-06-15", got)
	}
	if got := nthWeekdayOfMonth(anyJune, 1, time.Monday); !got.Equal(date(2021, 6, 7)) {
		t.Errorf("first Monday = %v, want 2021-06-07", got)
	}
}

func TestLastOfMonthMinus(t *testing.T) {
	if got := lastOfMonthMinus(date(2021, 6, 10), 0); !got.Equal(date(2021, 6, 30)) {
		t.Errorf("last day = %v, want 2021-06-30", got)
	}
	if got := lastOfMonthMinus(date(2021, 2, 1), 2); !got.Equal(date(2021, 2, 26)) {
		t.Errorf("two before end = %v, want 2021-02-26", got)
	}
}

func TestNearestWeekday(t *testing.T) {
	// 2021-06-01 is a Tuesday.
	tue := date(2021, 6, 1)
	tests := []struct {
		target time.Weekday
		want   time.Time
	}{
		{time.Tuesday, date(2021, 6, 1)},
		{time.Friday, date(2021, 6, 4)},
		{time.Saturday, date(2021, 5, 29)},
		{time.Monday, date(2021, 5, 31)},
	}
	for _, tt := range tests {
		if got := nearestWeekday(tue, tt.target); !got.Equal(tt.want) {
			t.Errorf("nearestWeekday(%v) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

package timetext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecurrenceNthWeekday(t *testing.T) {
	// 2021-06-15 is the third Tuesday of June.
	occ := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	rec, err := ParseRecurrence("1mo#", occ)
	require.NoError(t, err)

	nth, ok := rec.(NthWeekdayOfMonth)
	require.True(t, ok, "got %T", rec)
	assert.Equal(t, 1, nth.IntervalMonths)
	assert.Equal(t, 3, nth.WeekIndex)
	assert.Equal(t, time.Tuesday, nth.Weekday)

	next := rec.AdjacentOccurrence(occ, true)
	assert.Equal(t, time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC), next, "third Tuesday of July")

	prev := rec.AdjacentOccurrence(occ, false)
	assert.Equal(t, time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC), prev, "third Tuesday of May")
}

func TestParseRecurrenceLastOfMonth(t *testing.T) {
	// Two days before the end of June.
	occ := time.Date(2021, 6, 28, 0, 0, 0, 0, time.UTC)
	rec, err := ParseRecurrence("1mo-", occ)
	require.NoError(t, err)

	last, ok := rec.(LastOfMonth)
	require.True(t, ok, "got %T", rec)
	assert.Equal(t, 1, last.IntervalMonths)
	assert.Equal(t, 2, last.DaysBeforeEnd)

	next := rec.AdjacentOccurrence(occ, true)
	assert.Equal(t, time.Date(2021, 7, 29, 0, 0, 0, 0, time.UTC), next)

	// February is short, so the occurrence lands on the 26th.
	feb := rec.Occurrence(time.Date(2021, 2, 10, 0, 0, 0, 0, time.UTC), occ, true, false)
	assert.Equal(t, time.Date(2021, 2, 26, 0, 0, 0, 0, time.UTC), feb)
}

func TestParseRecurrenceEvery(t *testing.T) {
	occ := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	rec, err := ParseRecurrence("2w", occ)
	require.NoError(t, err)

	every, ok := rec.(Every)
	require.True(t, ok, "got %T", rec)
	assert.Equal(t, "2w", every.String())

	assert.Equal(t, occ.AddDate(0, 0, 14), rec.AdjacentOccurrence(occ, true))
	assert.Equal(t, occ.AddDate(0, 0, -14), rec.AdjacentOccurrence(occ, false))
}

func TestEveryOccurrence(t *testing.T) {
	rec, err := ParseRecurrence("1mo", time.Time{})
	require.NoError(t, err)

	anchor := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2021, 9, 10, 0, 0, 0, 0, time.UTC)

	after := rec.Occurrence(ref, anchor, true, false)
	assert.Equal(t, time.Date(2021, 9, 15, 0, 0, 0, 0, time.UTC), after)

	before := rec.Occurrence(ref, anchor, false, false)
	assert.Equal(t, time.Date(2021, 8, 15, 0, 0, 0, 0, time.UTC), before)

	// Landing exactly on an occurrence: strict skips it.
	onIt := time.Date(2021, 8, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, onIt, rec.Occurrence(onIt, anchor, true, false))
	assert.Equal(t, time.Date(2021, 9, 15, 0, 0, 0, 0, time.UTC), rec.Occurrence(onIt, anchor, true, true))
}

func TestNthWeekdayInterval(t *testing.T) {
	// Every second month, anchored to June.
	occ := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	rec, err := ParseRecurrence("2mo#", occ)
	require.NoError(t, err)

	next := rec.AdjacentOccurrence(occ, true)
	assert.Equal(t, time.Date(2021, 8, 17, 0, 0, 0, 0, time.UTC), next, "third Tuesday of August")
}

func TestParseRecurrenceErrors(t *testing.T) {
	occ := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := ParseRecurrence("3d#", occ)
	assert.Error(t, err, "day units are not a month anchor")

	_, err = ParseRecurrence("0mo#", occ)
	assert.Error(t, err, "zero interval")

	_, err = ParseRecurrence("", occ)
	assert.Error(t, err)

	_, err = ParseRecurrence("bogus-", occ)
	assert.Error(t, err)

	rec, err := ParseRecurrence("1y#", occ)
	require.NoError(t, err)
	assert.Equal(t, 12, rec.(NthWeekdayOfMonth).IntervalMonths)
}

func TestParseRecurrenceRejectsNonPositiveSpan(t *testing.T) {
	occ := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := ParseRecurrence("-2w", occ)
	assert.Error(t, err, "negative span")

	_, err = ParseRecurrence("0d", occ)
	assert.Error(t, err, "zero span")
}

func TestOccurrenceNegativeSpanTerminates(t *testing.T) {
	// A hand-built Every with a backward span still has to return.
	s, err := ParseSpan("-2w")
	require.NoError(t, err)

	anchor := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	ref := anchor.AddDate(0, 0, 30)
	got := Every{Span: s}.Occurrence(ref, anchor, true, false)
	assert.False(t, got.IsZero())
}

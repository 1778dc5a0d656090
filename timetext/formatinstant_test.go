package timetext

import (
	"testing"
	"time"
)

func TestFormatInstant(t *testing.T) {
	at := time.Date(2021, 5, 18, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		layout string
		text   string
	}{
		{"yyyy-MM-dd", "2021-05-18"},
		{"d.M.yyyy", "18.5.2021"},
		{"MMMM d, yyyy", "May 18, 2021"},
		{"EEE, MMM d", "Tue, May 18"},
		{"EEEE", "Tuesday"},
		{"yy/M/d", "21/5/18"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			inst, err := FormatInstant(at, tt.layout, nil)
			if err != nil {
				t.Fatalf("FormatInstant: %v", err)
			}
			if got := inst.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestFormatInstantAbsolute(t *testing.T) {
	at := time.Date(2021, 5, 18, 14, 30, 0, 0, time.UTC)
	inst, err := FormatInstant(at, "yyyy-MM-dd", nil)
	if err != nil {
		t.Fatal(err)
	}
	abs, ok := inst.(Absolute)
	if !ok {
		t.Fatalf("got %T, want Absolute", inst)
	}
	want := time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC)
	if !abs.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", abs.Time(), want)
	}

	// The rendered text adjusts like any other parsed instant.
	next, err := abs.Add(FieldDay, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := next.String(); got != "2021-05-19" {
		t.Errorf("Add(day, 1).String() = %q, want %q", got, "2021-05-19")
	}
}

func TestFormatInstantRelative(t *testing.T) {
	at := time.Date(2021, 5, 18, 14, 30, 0, 0, time.UTC)
	inst, err := FormatInstant(at, "yy/M/d", nil)
	if err != nil {
		t.Fatal(err)
	}
	rel, ok := inst.(Relative)
	if !ok {
		t.Fatalf("got %T, want Relative", inst)
	}
	if year, ok := rel.Field(FieldYear); !ok || year != 21 {
		t.Errorf("Field(year) = %d, %t, want 21, true", year, ok)
	}
	if got := rel.Resolve(testReference); !got.Equal(time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Resolve = %v, want 2021-05-18", got)
	}
}

func TestFormatInstantEmptyLayout(t *testing.T) {
	if _, err := FormatInstant(time.Now(), "---", nil); err == nil {
		t.Error("layout without fields did not error")
	}
}

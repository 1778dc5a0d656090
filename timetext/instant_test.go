package timetext

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testReference = time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

func TestParseInstantAbsolute(t *testing.T) {
	inst, err := ParseInstant("2021-05-18", nil)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	abs, ok := inst.(Absolute)
	if !ok {
		t.Fatalf("ParseInstant returned %T, want Absolute", inst)
	}
	if want := time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC); !abs.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", abs.Time(), want)
	}
	if want := time.Date(2021, 5, 19, 0, 0, 0, 0, time.UTC); !abs.Max().Equal(want) {
		t.Errorf("Max() = %v, want %v", abs.Max(), want)
	}
}

func TestParseInstantRelative(t *testing.T) {
	inst, err := ParseInstant("18May", nil)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	rel, ok := inst.(Relative)
	if !ok {
		t.Fatalf("ParseInstant returned %T, want Relative", inst)
	}
	if day, ok := rel.Field(FieldDay); !ok || day != 18 {
		t.Errorf("Field(day) = %d, %t, want 18, true", day, ok)
	}
	if month, ok := rel.Field(FieldMonth); !ok || month != 4 {
		t.Errorf("Field(month) = %d, %t, want 4, true", month, ok)
	}
	if _, ok := rel.Field(FieldYear); ok {
		t.Error("Field(year) present, want absent")
	}
}

func TestParseInstantDateAndTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		max   time.Time
	}{
		{
			input: "2021-05-18 06:15",
			want:  time.Date(2021, 5, 18, 6, 15, 0, 0, time.UTC),
			max:   time.Date(2021, 5, 18, 6, 16, 0, 0, time.UTC),
		},
		{
			input: "2021-05-18T06:15",
			want:  time.Date(2021, 5, 18, 6, 15, 0, 0, time.UTC),
			max:   time.Date(2021, 5, 18, 6, 16, 0, 0, time.UTC),
		},
		{
			input: "2021-05-18 06:15:42.5",
			want:  time.Date(2021, 5, 18, 6, 15, 42, 500_000_000, time.UTC),
			max:   time.Date(2021, 5, 18, 6, 15, 42, 600_000_000, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			inst, err := ParseInstant(tt.input, nil)
			if err != nil {
				t.Fatalf("ParseInstant(%q): %v", tt.input, err)
			}
			abs, ok := inst.(Absolute)
			if !ok {
				t.Fatalf("ParseInstant(%q) returned %T, want Absolute", tt.input, inst)
			}
			if !abs.Time().Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", abs.Time(), tt.want)
			}
			if !abs.Max().Equal(tt.max) {
				t.Errorf("Max() = %v, want %v", abs.Max(), tt.max)
			}
		})
	}
}

func TestParseInstantZone(t *testing.T) {
	inst, err := ParseInstant("2021-05-18 3pm est", nil)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	abs, ok := inst.(Absolute)
	if !ok {
		t.Fatalf("ParseInstant returned %T, want Absolute", inst)
	}
	if got := abs.Time().UTC(); !got.Equal(time.Date(2021, 5, 18, 19, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v, want 2021-05-18T19:00:00Z", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"2021-05-18",
		"18May",
		"May 18, 2021",
		"7.10.2021",
		"3:45pm",
		"Tuesday",
		"2021-05-18 06:15",
		"2021-05-18T06:15",
		"3rd March",
		"12/31/2021",
	}
	for _, input := range inputs {
		inst, err := ParseInstant(input, nil)
		if err != nil {
			t.Errorf("ParseInstant(%q): %v", input, err)
			continue
		}
		if got := inst.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestParseInstantErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		field FieldKind
	}{
		{name: "garbage", input: "certainly not a date", kind: ErrUnrecognizedToken},
		{name: "lone separator", input: "--", kind: ErrNoMatchingFormat},
		{name: "hour out of range", input: "25:10", kind: ErrFieldOutOfRange, field: FieldHour},
		{name: "minute out of range", input: "10:75", kind: ErrFieldOutOfRange, field: FieldMinute},
		{name: "two dates", input: "2021-05-18 2022-06-19", kind: ErrAmbiguousFormat},
		{name: "trailing junk", input: "2021-05-18 xyzzy", kind: ErrUnrecognizedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInstant(tt.input, nil)
			if err == nil {
				t.Fatalf("ParseInstant(%q) succeeded, want %v", tt.input, tt.kind)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseInstant(%q) error %T, want *ParseError", tt.input, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("error kind = %v, want %v", perr.Kind, tt.kind)
			}
			if tt.kind == ErrFieldOutOfRange && perr.Field != tt.field {
				t.Errorf("error field = %v, want %v", perr.Field, tt.field)
			}
		})
	}
}

func TestDetectInstant(t *testing.T) {
	if _, ok := DetectInstant("not a date at all", nil); ok {
		t.Error("DetectInstant accepted garbage")
	}
	if _, ok := DetectInstant("2021-05-18", nil); !ok {
		t.Error("DetectInstant rejected a valid date")
	}
}

func TestMaxResolution(t *testing.T) {
	opts := &InstantOptions{MaxResolution: FieldDay}
	inst, err := ParseInstant("2021-05-18 06:15", opts)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	if got, want := inst.String(), "2021-05-18"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	abs := inst.(Absolute)
	if want := time.Date(2021, 5, 19, 0, 0, 0, 0, time.UTC); !abs.Max().Equal(want) {
		t.Errorf("Max() = %v, want %v", abs.Max(), want)
	}
}

func TestMaxResolutionYear(t *testing.T) {
	opts := &InstantOptions{MaxResolution: FieldYear}
	inst, err := ParseInstant("2021-05-18", opts)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	if got, want := inst.String(), "2021"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	abs := inst.(Absolute)
	if want := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC); !abs.Max().Equal(want) {
		t.Errorf("Max() = %v, want %v", abs.Max(), want)
	}
}

func TestWeekdayConsistency(t *testing.T) {
	// 2021-05-18 was a Tuesday.
	if _, err := ParseInstant("Tuesday 2021-05-18", nil); err != nil {
		t.Errorf("consistent weekday rejected: %v", err)
	}
	_, err := ParseInstant("Monday 2021-05-18", nil)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrFieldOutOfRange || perr.Field != FieldWeekday {
		t.Errorf("inconsistent weekday error = %v, want field out of range on weekday", err)
	}
}

func TestAddAbsoluteMonthClamp(t *testing.T) {
	inst, err := ParseInstant("2021-01-31", nil)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	got, err := inst.Add(FieldMonth, 1)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if want := "2021-02-28"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
	abs := got.(Absolute)
	if want := time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC); !abs.Time().Equal(want) {
		t.Errorf("Time() = %v, want %v", abs.Time(), want)
	}
}

func TestAddRegeneratesNotation(t *testing.T) {
	tests := []struct {
		input string
		field FieldKind
		delta int
		want  string
	}{
		{"2021-05-18", FieldDay, 1, "2021-05-19"},
		{"2021-05-18", FieldDay, -9, "2021-05-09"},
		{"18May", FieldDay, 1, "19May"},
		{"3rd March", FieldDay, 1, "4th March"},
		// The day keeps its two-digit notation, so 1 renders as "01".
		{"May 31", FieldDay, 1, "June 01"},
		{"3:45pm", FieldHour, 12, "3:45am"},
		{"11:59pm", FieldMinute, 1, "12:00am"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			inst, err := ParseInstant(tt.input, nil)
			if err != nil {
				t.Fatalf("ParseInstant(%q): %v", tt.input, err)
			}
			got, err := inst.Add(tt.field, tt.delta)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Add(%v, %d) = %q, want %q", tt.field, tt.delta, got.String(), tt.want)
			}
		})
	}
}

func TestAddAbsentField(t *testing.T) {
	inst, err := ParseInstant("18May", nil)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	_, err = inst.Add(FieldHour, 1)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrFieldNotPresent {
		t.Errorf("Add on absent field = %v, want field not present", err)
	}
}

func TestInverseAdjustment(t *testing.T) {
	tests := []struct {
		input string
		field FieldKind
		delta int
	}{
		{"2021-05-18", FieldDay, 5},
		{"2021-05-15", FieldMonth, 3},
		{"18May", FieldDay, 20},
		{"18May", FieldMonth, 14},
		{"3:45pm", FieldHour, 7},
		{"06:15", FieldMinute, 100},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			x, err := ParseInstant(tt.input, nil)
			if err != nil {
				t.Fatalf("ParseInstant(%q): %v", tt.input, err)
			}
			forward, err := x.Add(tt.field, tt.delta)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			back, err := forward.Add(tt.field, -tt.delta)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if back.String() != tt.input {
				t.Errorf("add/add-inverse = %q, want %q", back.String(), tt.input)
			}
			if diff := cmp.Diff(x.Elements(), back.Elements(), cmp.AllowUnexported(Element{}, notation{})); diff != "" {
				t.Errorf("elements mismatch after inverse adjustment (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	parse := func(s string) Instant {
		t.Helper()
		inst, err := ParseInstant(s, nil)
		if err != nil {
			t.Fatalf("ParseInstant(%q): %v", s, err)
		}
		return inst
	}
	tests := []struct {
		name   string
		a, b   string
		want   int
		wantOK bool
	}{
		{name: "absolute ordering", a: "2021-05-18", b: "2021-06-01", want: -1, wantOK: true},
		{name: "absolute equal", a: "2021-05-18", b: "2021-05-18", want: 0, wantOK: true},
		{name: "relative ordering", a: "18May", b: "20May", want: -1, wantOK: true},
		{name: "relative by month", a: "18May", b: "17June", want: -1, wantOK: true},
		{name: "different coarsest fields", a: "18May", b: "06:15", wantOK: false},
		{name: "absolute vs relative", a: "2021-05-18", b: "18May", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(parse(tt.a), parse(tt.b))
			if ok != tt.wantOK {
				t.Fatalf("Compare(%q, %q) ok = %t, want %t", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

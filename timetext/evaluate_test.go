package timetext

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, input string, opts *InstantOptions) Instant {
	t.Helper()
	inst, err := ParseInstant(input, opts)
	if err != nil {
		t.Fatalf("ParseInstant(%q): %v", input, err)
	}
	return inst
}

func TestResolveClosest(t *testing.T) {
	// 2021-05-18 is nearer to the reference than 2020-05-18 or 2022-05-18.
	inst := mustParse(t, "18May", nil)
	got := inst.Resolve(testReference)
	if want := time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolvePolicies(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		policy Policy
		want   time.Time
	}{
		{
			name:   "day and month past",
			input:  "18May",
			policy: PolicyPast,
			want:   time.Date(2021, 5, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "day and month future",
			input:  "18May",
			policy: PolicyFuture,
			want:   time.Date(2022, 5, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "month only past",
			input:  "March",
			policy: PolicyPast,
			want:   time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "month only future",
			input:  "March",
			policy: PolicyFuture,
			want:   time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekday closest",
			input:  "Friday",
			policy: PolicyClosest,
			want:   time.Date(2021, 6, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekday past",
			input:  "Friday",
			policy: PolicyPast,
			want:   time.Date(2021, 5, 28, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := mustParse(t, tt.input, &InstantOptions{Policy: tt.policy})
			got := inst.Resolve(testReference)
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q, %v) = %v, want %v", tt.input, tt.policy, got, tt.want)
			}
		})
	}
}

func TestResolveTwoDigitYearWindow(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"5/18/99", time.Date(1999, 5, 18, 0, 0, 0, 0, time.UTC)},
		{"5/18/03", time.Date(2003, 5, 18, 0, 0, 0, 0, time.UTC)},
		{"5/18/65", time.Date(2065, 5, 18, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			inst := mustParse(t, tt.input, nil)
			if _, ok := inst.(Relative); !ok {
				t.Fatalf("ParseInstant(%q) = %T, want Relative (2-digit year)", tt.input, inst)
			}
			got := inst.Resolve(testReference)
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveHourDisambiguation(t *testing.T) {
	morning := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2021, 6, 1, 18, 0, 0, 0, time.UTC)

	inst := mustParse(t, "7:00", nil)
	if got := inst.Resolve(morning); got.Hour() != 7 {
		t.Errorf("Resolve at midnight = %v, want hour 7", got)
	}
	if got := inst.Resolve(evening); got.Hour() != 19 {
		t.Errorf("Resolve in the evening = %v, want hour 19", got)
	}

	fixed := mustParse(t, "7:00", &InstantOptions{TwentyFourHour: true})
	if got := fixed.Resolve(evening); got.Hour() != 7 {
		t.Errorf("24-hour Resolve = %v, want hour 7", got)
	}
}

func TestResolveZoneOverridesReference(t *testing.T) {
	inst := mustParse(t, "14:15 est", nil)
	got := inst.Resolve(testReference)
	if name, _ := got.Zone(); name != "EDT" && name != "EST" {
		t.Errorf("Resolve zone = %q, want eastern time", name)
	}
	if got.Hour() != 14 || got.Minute() != 15 {
		t.Errorf("Resolve = %v, want 14:15 wall clock", got)
	}
}

func TestResolveMonotonicity(t *testing.T) {
	inputs := []string{"18May", "March", "Friday", "06:15", "7:00pm", "5/18"}
	refs := []time.Time{
		testReference,
		time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 31, 23, 30, 0, 0, time.UTC),
	}
	for _, input := range inputs {
		for _, ref := range refs {
			past := mustParse(t, input, &InstantOptions{Policy: PolicyPast})
			if got := past.Resolve(ref); got.After(ref) {
				t.Errorf("past Resolve(%q, %v) = %v is after the reference", input, ref, got)
			}
			future := mustParse(t, input, &InstantOptions{Policy: PolicyFuture})
			if got := future.Resolve(ref); got.Before(ref) {
				t.Errorf("future Resolve(%q, %v) = %v is before the reference", input, ref, got)
			}
		}
	}
}

// Command timetext resolves human-written date, time, duration and
// recurrence text from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexitime/timetext-go/timetext"
)

var (
	flagVerbose   bool
	flagJSON      bool
	flagFormats   string
	flagLocation  string
	flagPolicy    string
	flagReference string
	flag24h       bool
	flagAbbrev    bool
)

func main() {
	root := &cobra.Command{
		Use:           "timetext",
		Short:         "parse and resolve human-written dates, times and durations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of text")
	root.PersistentFlags().StringVar(&flagFormats, "formats", "", "TOML file with extra format templates")
	root.PersistentFlags().StringVar(&flagLocation, "location", "", "default IANA timezone for parsed values")
	root.PersistentFlags().StringVar(&flagPolicy, "policy", "closest", "evaluation policy: past, future or closest")
	root.PersistentFlags().StringVar(&flagReference, "ref", "", "reference instant (RFC 3339), default now")
	root.PersistentFlags().BoolVar(&flag24h, "24h", false, "read bare hours as 24-hour clock")

	root.AddCommand(parseCmd(), evalCmd(), spanCmd(), untilCmd(), nextCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "timetext:", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func instantOptions() (*timetext.InstantOptions, error) {
	opts := &timetext.InstantOptions{TwentyFourHour: flag24h}
	switch flagPolicy {
	case "past":
		opts.Policy = timetext.PolicyPast
	case "future":
		opts.Policy = timetext.PolicyFuture
	case "closest", "":
		opts.Policy = timetext.PolicyClosest
	default:
		return nil, fmt.Errorf("unknown policy %q", flagPolicy)
	}
	if flagLocation != "" {
		loc, err := time.LoadLocation(flagLocation)
		if err != nil {
			return nil, fmt.Errorf("loading location: %w", err)
		}
		opts.Location = loc
	}
	if flagFormats != "" {
		catalog := timetext.DefaultCatalog()
		if err := catalog.LoadFile(flagFormats); err != nil {
			return nil, err
		}
		slog.Debug("loaded extra formats", "file", flagFormats)
		opts.Catalog = catalog
	}
	return opts, nil
}

func referenceTime() (time.Time, error) {
	if flagReference == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse(time.RFC3339, flagReference)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing reference: %w", err)
	}
	return ref, nil
}

func emit(v any, text string) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Println(text)
	return nil
}

type instantOutput struct {
	Input    string    `json:"input"`
	Kind     string    `json:"kind"`
	Resolved time.Time `json:"resolved"`
	Upper    time.Time `json:"upper,omitempty"`
	Fields   []field   `json:"fields"`
}

type field struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

func describe(inst timetext.Instant, ref time.Time) instantOutput {
	out := instantOutput{Input: inst.String(), Resolved: inst.Resolve(ref)}
	for _, e := range inst.Elements() {
		out.Fields = append(out.Fields, field{Kind: e.Kind.String(), Value: e.Value, Text: e.Text})
	}
	if abs, ok := inst.(timetext.Absolute); ok {
		out.Kind = "absolute"
		out.Upper = abs.Max()
	} else {
		out.Kind = "relative"
	}
	return out
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "parse text into an instant and show its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			opts, err := instantOptions()
			if err != nil {
				return err
			}
			ref, err := referenceTime()
			if err != nil {
				return err
			}
			inst, err := timetext.ParseInstant(args[0], opts)
			if err != nil {
				return err
			}
			out := describe(inst, ref)
			text := fmt.Sprintf("%s %s", out.Kind, out.Resolved.Format(time.RFC3339Nano))
			if out.Kind == "absolute" {
				text += fmt.Sprintf(" .. %s", out.Upper.Format(time.RFC3339Nano))
			}
			return emit(out, text)
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <text>",
		Short: "resolve text against the reference instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			opts, err := instantOptions()
			if err != nil {
				return err
			}
			ref, err := referenceTime()
			if err != nil {
				return err
			}
			inst, err := timetext.ParseInstant(args[0], opts)
			if err != nil {
				return err
			}
			resolved := inst.Resolve(ref)
			slog.Debug("resolved", "input", args[0], "reference", ref)
			return emit(describe(inst, ref), resolved.Format(time.RFC3339Nano))
		},
	}
}

type spanOutput struct {
	Input      string        `json:"input"`
	Negative   bool          `json:"negative"`
	Components []spanField   `json:"components"`
	Duration   time.Duration `json:"duration_ns"`
}

type spanField struct {
	Unit  string `json:"unit"`
	Value uint64 `json:"value"`
}

func spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span <text>",
		Short: "parse a duration and show its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			s, err := timetext.ParseSpan(args[0])
			if err != nil {
				return err
			}
			out := spanOutput{Input: s.String(), Negative: s.Negative(), Duration: s.AsDuration()}
			for _, c := range s.Components() {
				out.Components = append(out.Components, spanField{Unit: c.Unit.String(), Value: c.Value})
			}
			return emit(out, fmt.Sprintf("%s = %s", s, s.AsDuration()))
		},
	}
}

func untilCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "until <text>",
		Short: "show the difference between the resolved instant and now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			opts, err := instantOptions()
			if err != nil {
				return err
			}
			ref, err := referenceTime()
			if err != nil {
				return err
			}
			inst, err := timetext.ParseInstant(args[0], opts)
			if err != nil {
				return err
			}
			target := inst.Resolve(ref)
			text := timetext.FormatRelative(target, ref, &timetext.PrintOptions{
				Abbreviate:  flagAbbrev,
				Plural:      !flagAbbrev,
				MaxElements: 2,
			})
			return emit(map[string]string{"target": target.Format(time.RFC3339Nano), "relative": text}, text)
		},
	}
	cmd.Flags().BoolVar(&flagAbbrev, "abbrev", false, "abbreviated unit names")
	return cmd
}

func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <recurrence>",
		Short: "show the occurrences adjacent to the reference instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ref, err := referenceTime()
			if err != nil {
				return err
			}
			rec, err := timetext.ParseRecurrence(args[0], ref)
			if err != nil {
				return err
			}
			next := rec.AdjacentOccurrence(ref, true)
			prev := rec.AdjacentOccurrence(ref, false)
			out := map[string]string{
				"next":     next.Format(time.RFC3339Nano),
				"previous": prev.Format(time.RFC3339Nano),
			}
			return emit(out, fmt.Sprintf("next %s, previous %s",
				next.Format(time.RFC3339Nano), prev.Format(time.RFC3339Nano)))
		},
	}
}

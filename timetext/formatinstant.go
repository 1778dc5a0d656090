package timetext

import (
	"fmt"
	"time"
)

// FormatInstant renders t through a layout template and returns the
// rendered text as a parsed instant, the inverse of ParseInstant. The
// layout is a run-length pattern: "y" year ("yy" two-digit), "M" month
// (one or two digits numeric, "MMM" abbreviated name, "MMMM" full name),
// "d" day, "E" weekday name ("EEE" abbreviated); every other character
// is a literal separator. A four-digit year yields an Absolute instant,
// anything less a Relative one.
func FormatInstant(t time.Time, layout string, opts *InstantOptions) (Instant, error) {
	loc := opts.location()
	t = t.In(loc)

	var src sourceText
	src.seps = append(src.seps, "")
	addElement := func(e Element) {
		e.Text = e.render(e.Value)
		src.elems = append(src.elems, e)
		src.seps = append(src.seps, "")
	}

	i := 0
	for i < len(layout) {
		c := layout[i]
		run := 1
		for i+run < len(layout) && layout[i+run] == c {
			run++
		}
		switch c {
		case 'y':
			value, width := t.Year(), 4
			if run <= 2 {
				value, width = t.Year()%100, 2
			}
			addElement(Element{Kind: FieldYear, Value: value, note: notation{numeric: true, width: width}})
		case 'M':
			if run <= 2 {
				addElement(Element{Kind: FieldMonth, Value: int(t.Month()) - 1, note: notation{numeric: true, width: run}})
			} else {
				nameLen := 0
				if run == 3 {
					nameLen = 3
				}
				addElement(Element{Kind: FieldMonth, Value: int(t.Month()) - 1, note: notation{nameLen: nameLen, style: caseTitle}})
			}
		case 'd':
			addElement(Element{Kind: FieldDay, Value: t.Day(), note: notation{numeric: true, width: run}})
		case 'E':
			nameLen := 0
			if run <= 3 {
				nameLen = 3
			}
			addElement(Element{Kind: FieldWeekday, Value: int(t.Weekday()), note: notation{nameLen: nameLen, style: caseTitle}})
		default:
			src.seps[len(src.seps)-1] += layout[i : i+run]
		}
		i += run
	}

	if len(src.elems) == 0 {
		return nil, fmt.Errorf("layout %q produces no fields", layout)
	}
	src.reindex()
	return buildInstant(src, opts)
}

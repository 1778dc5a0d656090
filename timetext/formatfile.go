package timetext

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// formatFile is the TOML shape of an external format-template file:
//
//	[[format]]
//	name = "us-written-date"
//	slots = [
//	  { field = "month", type = "month-name" },
//	  { type = "separator" },
//	  { field = "day", type = "digits", min-len = 1, max-len = 2, min-value = 1, max-value = 31 },
//	]
type formatFile struct {
	Format []formatEntry `toml:"format"`
}

type formatEntry struct {
	Name  string      `toml:"name"`
	Slots []slotEntry `toml:"slots"`
}

type slotEntry struct {
	Field    string `toml:"field"`
	Type     string `toml:"type"`
	MinLen   int    `toml:"min-len"`
	MaxLen   int    `toml:"max-len"`
	MinValue int    `toml:"min-value"`
	MaxValue int    `toml:"max-value"`
	Chars    string `toml:"chars"`
	Optional bool   `toml:"optional"`
}

var slotFieldNames = map[string]FieldKind{
	"":          fieldNone,
	"year":      FieldYear,
	"month":     FieldMonth,
	"day":       FieldDay,
	"weekday":   FieldWeekday,
	"hour":      FieldHour,
	"minute":    FieldMinute,
	"second":    FieldSecond,
	"subsecond": FieldSubSecond,
	"ampm":      FieldAmPm,
	"zone":      FieldZone,
}

var slotTypeNames = map[string]tokenType{
	"digits":         tokenDigits,
	"month-name":     tokenMonthName,
	"weekday-name":   tokenWeekdayName,
	"meridiem":       tokenMeridiem,
	"zone-name":      tokenZoneName,
	"ordinal-suffix": tokenOrdinalSuffix,
	"separator":      tokenSeparator,
}

// LoadFormats reads extra format templates from a TOML file. The returned
// formats are in file order, ready for Catalog.Extend.
func LoadFormats(path string) ([]Format, error) {
	var file formatFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading format file %s: %w", path, err)
	}
	formats := make([]Format, 0, len(file.Format))
	for _, entry := range file.Format {
		f, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("format file %s: %w", path, err)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// LoadFile appends the templates from a TOML file to the catalog. File
// templates rank below the formats already present.
func (c *Catalog) LoadFile(path string) error {
	formats, err := LoadFormats(path)
	if err != nil {
		return err
	}
	c.Extend(formats...)
	return nil
}

func (e formatEntry) build() (Format, error) {
	if e.Name == "" {
		return Format{}, fmt.Errorf("format entry without a name")
	}
	if len(e.Slots) == 0 {
		return Format{}, fmt.Errorf("format %q has no slots", e.Name)
	}
	f := Format{Name: e.Name, Slots: make([]Slot, 0, len(e.Slots))}
	for i, s := range e.Slots {
		kind, ok := slotFieldNames[s.Field]
		if !ok {
			return Format{}, fmt.Errorf("format %q slot %d: unknown field %q", e.Name, i, s.Field)
		}
		typ, ok := slotTypeNames[s.Type]
		if !ok {
			return Format{}, fmt.Errorf("format %q slot %d: unknown token type %q", e.Name, i, s.Type)
		}
		f.Slots = append(f.Slots, Slot{
			Kind:     kind,
			Type:     typ,
			MinLen:   s.MinLen,
			MaxLen:   s.MaxLen,
			MinValue: s.MinValue,
			MaxValue: s.MaxValue,
			Chars:    s.Chars,
			Optional: s.Optional,
		})
	}
	return f, nil
}

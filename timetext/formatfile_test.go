package timetext

import (
	"os"
	"path/filepath"
	"testing"
)

const extraFormats = `
[[format]]
name = "short-year-month-name"
slots = [
  { field = "year", type = "digits", min-len = 2, max-len = 2 },
  { type = "separator" },
  { field = "month", type = "month-name" },
]
`

func writeFormatFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formats.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	path := writeFormatFile(t, extraFormats)

	formats, err := LoadFormats(path)
	if err != nil {
		t.Fatalf("LoadFormats: %v", err)
	}
	if len(formats) != 1 || formats[0].Name != "short-year-month-name" {
		t.Fatalf("LoadFormats = %+v, want one format named short-year-month-name", formats)
	}
	if len(formats[0].Slots) != 3 {
		t.Fatalf("format has %d slots, want 3", len(formats[0].Slots))
	}

	// The default catalog does not accept a bare 2-digit year.
	if _, ok := DetectInstant("99 May", nil); ok {
		t.Fatal("default catalog unexpectedly parsed the input")
	}

	catalog := DefaultCatalog()
	catalog.Extend(formats...)
	inst, err := ParseInstant("99 May", &InstantOptions{Catalog: catalog})
	if err != nil {
		t.Fatalf("ParseInstant with extended catalog: %v", err)
	}
	rel, ok := inst.(Relative)
	if !ok {
		t.Fatalf("got %T, want Relative", inst)
	}
	if year, ok := rel.Field(FieldYear); !ok || year != 99 {
		t.Errorf("Field(year) = %d, %t, want 99, true", year, ok)
	}
	if month, ok := rel.Field(FieldMonth); !ok || month != 4 {
		t.Errorf("Field(month) = %d, %t, want 4, true", month, ok)
	}
}

func TestCatalogLoadFile(t *testing.T) {
	path := writeFormatFile(t, extraFormats)
	catalog := DefaultCatalog()
	if err := catalog.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, err := ParseInstant("99 May", &InstantOptions{Catalog: catalog}); err != nil {
		t.Errorf("ParseInstant: %v", err)
	}
}

func TestLoadFormatsRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown field",
			content: `
[[format]]
name = "bad"
slots = [{ field = "fortnight", type = "digits" }]
`,
		},
		{
			name: "unknown token type",
			content: `
[[format]]
name = "bad"
slots = [{ field = "day", type = "emoji" }]
`,
		},
		{
			name: "no slots",
			content: `
[[format]]
name = "bad"
slots = []
`,
		},
		{
			name: "no name",
			content: `
[[format]]
slots = [{ field = "day", type = "digits" }]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFormatFile(t, tt.content)
			if _, err := LoadFormats(path); err == nil {
				t.Error("LoadFormats accepted a bad entry")
			}
		})
	}
}

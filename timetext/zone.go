package timetext

import (
	"strings"
	"sync"
	"time"
)

// zoneEntry describes one timezone name: either a fixed offset for an
// abbreviation (with its DST expectation) or an IANA location name.
type zoneEntry struct {
	Name   string // IANA name, empty for plain offset abbreviations
	Offset int    // seconds east of UTC, used when Name is empty
	DST    bool
}

var (
	zoneOnce  sync.Once
	zoneTable map[string]zoneEntry
)

func lookupZone(lower string) (zoneEntry, bool) {
	zoneOnce.Do(func() {
		zoneTable = make(map[string]zoneEntry, len(zoneNames))
		for name, entry := range zoneNames {
			zoneTable[name] = entry
		}
	})
	e, ok := zoneTable[lower]
	return e, ok
}

var locCache sync.Map // lowercase name -> *time.Location

// resolveZone turns a recognized zone name into a location. Abbreviations
// without an IANA mapping become fixed-offset zones.
func resolveZone(text string) (*time.Location, error) {
	lower := strings.ToLower(text)
	e, ok := lookupZone(lower)
	if !ok {
		return nil, newParseError(ErrUnrecognizedTimeZone, 0, text)
	}
	if e.Name == "" {
		return time.FixedZone(strings.ToUpper(text), e.Offset), nil
	}
	if cached, ok := locCache.Load(lower); ok {
		return cached.(*time.Location), nil
	}
	loc, err := time.LoadLocation(e.Name)
	if err != nil {
		return nil, newParseError(ErrUnrecognizedTimeZone, 0, text)
	}
	locCache.Store(lower, loc)
	return loc, nil
}

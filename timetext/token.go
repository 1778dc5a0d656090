package timetext

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenDigits tokenType = iota
	tokenMonthName
	tokenWeekdayName
	tokenMeridiem
	tokenZoneName
	tokenOrdinalSuffix
	tokenSeparator
)

func (t tokenType) String() string {
	switch t {
	case tokenDigits:
		return "digits"
	case tokenMonthName:
		return "month name"
	case tokenWeekdayName:
		return "weekday name"
	case tokenMeridiem:
		return "meridiem"
	case tokenZoneName:
		return "zone name"
	case tokenOrdinalSuffix:
		return "ordinal suffix"
	case tokenSeparator:
		return "separator"
	default:
		return "token"
	}
}

type token struct {
	typ   tokenType
	start int
	end   int
	text  string
	value int
}

const separatorChars = " \t,-/.:;"

func isSeparatorRune(r rune) bool {
	return strings.ContainsRune(separatorChars, r) || unicode.IsSpace(r)
}

// matchName reports whether run is the full name or an abbreviation of at
// least three characters.
func matchName(run, full string) bool {
	if len(run) < 3 || len(run) > len(full) {
		return false
	}
	return strings.HasPrefix(full, run)
}

func classifyLetters(run string) (tokenType, int, bool) {
	lower := strings.ToLower(run)
	for i, name := range monthNames {
		if matchName(lower, name) {
			return tokenMonthName, i, true
		}
	}
	for i, name := range weekdayNames {
		if matchName(lower, name) {
			return tokenWeekdayName, i, true
		}
	}
	switch lower {
	case "am":
		return tokenMeridiem, 0, true
	case "pm":
		return tokenMeridiem, 1, true
	case "st", "nd", "rd", "th":
		return tokenOrdinalSuffix, 0, true
	}
	if _, ok := lookupZone(lower); ok {
		return tokenZoneName, 0, true
	}
	return 0, 0, false
}

// tokenize scans s left to right into typed tokens. Whitespace and
// separator runs collapse into single separator tokens. Scanning stops at
// the first offset where no token type matches; the offset reached is
// returned so callers can parse prefixes.
func tokenize(s string) ([]token, int) {
	var tokens []token
	i := 0
	for i < len(s) {
		r := rune(s[i])

		switch {
		case r >= '0' && r <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, _ := strconv.Atoi(s[i:j])
			tokens = append(tokens, token{tokenDigits, i, j, s[i:j], n})
			i = j

		case unicode.IsLetter(r):
			// Zone ids may span slashes and underscores (America/New_York).
			j := i
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || s[j] == '/' || s[j] == '_') {
				j++
			}
			if j > i {
				if _, ok := lookupZone(strings.ToLower(s[i:j])); ok && strings.ContainsAny(s[i:j], "/_") {
					tokens = append(tokens, token{tokenZoneName, i, j, s[i:j], 0})
					i = j
					continue
				}
			}
			j = i
			for j < len(s) && unicode.IsLetter(rune(s[j])) {
				j++
			}
			typ, value, ok := classifyLetters(s[i:j])
			if !ok {
				return tokens, i
			}
			tokens = append(tokens, token{typ, i, j, s[i:j], value})
			i = j

		case isSeparatorRune(r):
			j := i
			for j < len(s) && isSeparatorRune(rune(s[j])) {
				j++
			}
			tokens = append(tokens, token{tokenSeparator, i, j, s[i:j], 0})
			i = j

		default:
			return tokens, i
		}
	}
	return tokens, len(s)
}

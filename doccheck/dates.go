package doccheck

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order before any regex fallback. Numeric orders
// first (US month-first, then day-first, then ISO), two-digit year variants,
// then month-name orders.
var dateLayouts = []string{
	"01/02/2006",
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"01-02-2006",
	"02/01/06",
	"01/02/06",
	"06-01-02",
	"02-01-06",
	"01-02-06",
	"January 2, 2006",
	"2 January 2006",
	"2006 January 2",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006 Jan 2",
	"02.01.2006",
	"2006/01/02",
	"January 2 2006",
	"2 January, 2006",
}

// datePlaceholders are tokens that look like values but mean "no date".
// The single letter y shows up when OCR mangles a checked yes-box.
var datePlaceholders = map[string]bool{
	"n/a":     true,
	"none":    true,
	"unknown": true,
	"tbd":     true,
	"y":       true,
}

var (
	numericDMY   = regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`)
	numericYMD   = regexp.MustCompile(`\b(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`)
	dayMonthYear = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?[\s\-]+([A-Za-z]{3,9})\.?[\s\-,]+(\d{2,4})\b`)
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// ParseDate normalizes a free-text date into a calendar date. It tolerates
// many formats and embedded noise; the boolean is false when no valid date
// could be constructed. Inputs shorter than three characters and known
// placeholder tokens are rejected up front.
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if len(s) < 3 || datePlaceholders[strings.ToLower(s)] {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if twoDigitYearLayout(layout) {
			t = applyYearWindow(t)
		}
		return t, true
	}

	if m := numericDMY.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if t, ok := makeDate(windowYear(year), month, day); ok {
			return t, true
		}
		// US month-first order leaks into OCR text; retry swapped.
		if t, ok := makeDate(windowYear(year), day, month); ok {
			return t, true
		}
	}

	if m := numericYMD.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if t, ok := makeDate(year, month, day); ok {
			return t, true
		}
	}

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, known := monthsByName[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		if known {
			if t, ok := makeDate(windowYear(year), int(month), day); ok {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

func twoDigitYearLayout(layout string) bool {
	return strings.Contains(layout, "06") && !strings.Contains(layout, "2006")
}

// applyYearWindow corrects two-digit years parsed by time.Parse, which
// maps 50-68 into the 2000s. The windowing rule puts years below 50 in
// the 2000s and 50 and above in the 1900s.
func applyYearWindow(t time.Time) time.Time {
	if t.Year() >= 2050 {
		return t.AddDate(-100, 0, 0)
	}
	return t
}

func windowYear(year int) int {
	if year < 50 {
		return 2000 + year
	}
	if year < 100 {
		return 1900 + year
	}
	return year
}

// makeDate builds a calendar date and rejects component combinations that
// time.Date would silently normalize, such as day 31 in a 30-day month.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numericDateRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

var monthYearRe = regexp.MustCompile(`(?i)^([a-z]+)\.?,?\s+(\d{4})$`)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Layouts for the generic fallback path. All parsing pins to UTC so the
// extracted calendar fields cannot shift across a timezone boundary.
var genericDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2006-01-02",
	"2006/01/02",
	"01/02/06",
	"Monday, January 2, 2006",
}

// ParseDate canonicalizes heterogeneous date text to ISO-8601 (YYYY-MM-DD).
// Paths are tried in order: numeric MM/DD/YYYY (or dashes), month-name plus
// year, then the generic layout table. A result outside the plausible year
// window is rejected rather than returned as a guess.
func ParseDate(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 && plausibleYear(year) {
			return isoDate(year, time.Month(month), day), true
		}
		return "", false
	}

	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			if plausibleYear(year) {
				return isoDate(year, month, 1), true
			}
			return "", false
		}
	}

	for _, layout := range genericDateLayouts {
		t, err := time.ParseInLocation(layout, text, time.UTC)
		if err != nil {
			continue
		}
		year, month, day := t.UTC().Date()
		if plausibleYear(year) {
			return isoDate(year, month, day), true
		}
		return "", false
	}

	return "", false
}

// FormatDate renders an ISO date as MM/DD/YYYY for document output. Inputs
// that fail ISO construction fall back to reordering the dash-separated
// parts; anything else passes through unchanged.
func FormatDate(iso string) string {
	if t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(iso), time.UTC); err == nil {
		return t.Format("01/02/2006")
	}
	parts := strings.Split(strings.TrimSpace(iso), "-")
	if len(parts) == 3 {
		return fmt.Sprintf("%s/%s/%s", parts[1], parts[2], parts[0])
	}
	return iso
}

// The window guards against corrupted extraction output, not the calendar.
func plausibleYear(year int) bool {
	return year > 1900 && year < time.Now().Year()+5
}

func isoDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

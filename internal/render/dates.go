package render

import (
	"fmt"
	"time"
)

// isoLayouts are the accepted input date formats, tried in order.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006",
}

// spanishMonths holds the abbreviated month names used by the long date form.
var spanishMonths = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// parseISO attempts to parse a date string in any accepted layout.
func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate formats an ISO date string as "m/yyyy" with no leading zero on
// the month. Empty input yields an empty string; unparsable input is returned
// verbatim so malformed legacy data still renders something.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseISO(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// FormatDateLong formats an ISO date string as an abbreviated Spanish month
// plus year, e.g. "mar 2021". Degrades exactly like FormatDate.
func FormatDateLong(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseISO(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%s %d", spanishMonths[t.Month()-1], t.Year())
}

// dateFormatter formats a single date; layouts pick FormatDate or
// FormatDateLong to match their register.
type dateFormatter func(string) string

// dateRange renders "start - end" for an entry, substituting the layout's
// "present" label for the end date of ongoing entries.
func dateRange(start, end string, current bool, present string, format dateFormatter) string {
	if current {
		return format(start) + " - " + present
	}
	return format(start) + " - " + format(end)
}

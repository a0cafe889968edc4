// Package render turns résumé documents into styled terminal output
// through a closed catalog of templates.
package render

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders an ISO date as "month de year". Partial dates fall
// back gracefully; unparsable input is returned verbatim.
func FormatDate(date string) string {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%s de %d", spanishMonths[t.Month()-1], t.Year())
		}
	}
	if _, err := time.Parse("2006", date); err == nil {
		return date
	}
	return date
}

// FormatDateRange renders a start/end pair; an open end reads "Presente".
func FormatDateRange(startDate, endDate string) string {
	end := "Presente"
	if endDate != "" {
		end = FormatDate(endDate)
	}
	return FormatDate(startDate) + " - " + end
}

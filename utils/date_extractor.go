package utils

import (
	"regexp"
	"time"
)

type datePattern struct {
	re      *regexp.Regexp
	layouts []string
}

// Patterns are tried in order; for each regex match the layouts are tried in
// order and the first valid calendar date wins. DD/MM comes before MM/DD
// because thermal receipts in this corpus are predominantly European.
var datePatterns = []datePattern{
	{
		re:      regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{4})\b`),
		layouts: []string{"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006", "01/02/2006", "01-02-2006"},
	},
	{
		re:      regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`),
		layouts: []string{"2006/01/02", "2006-01-02", "2006/1/2", "2006-1-2"},
	},
	{
		re:      regexp.MustCompile(`\b(\d{1,2}\s+(?i:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[A-Za-z]*\s+\d{4})\b`),
		layouts: []string{"2 January 2006", "2 Jan 2006"},
	},
	{
		re:      regexp.MustCompile(`\b(\d{1,2}\.\d{1,2}\.\d{2,4})\b`),
		layouts: []string{"02.01.2006", "2.1.2006", "02.01.06", "2.1.06"},
	},
}

// ExtractDate scans the concatenated receipt text for the first date-looking
// substring that parses as a real calendar date, returned as YYYY-MM-DD.
// No plausibility check against "today" happens here; that belongs to the
// caller. Returns nil when nothing parses.
func ExtractDate(fullText string) *string {
	for _, p := range datePatterns {
		for _, match := range p.re.FindAllString(fullText, -1) {
			for _, layout := range p.layouts {
				if t, err := time.Parse(layout, match); err == nil {
					iso := t.Format("2006-01-02")
					return &iso
				}
			}
		}
	}
	return nil
}

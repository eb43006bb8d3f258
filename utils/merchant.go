package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type merchantEntry struct {
	key      string // normalized token searched for in the line
	name     string // canonical display name
	currency string // home currency, used when no symbol is present
}

// knownMerchants is ordered: longer, more specific keys come before their
// stems so "tesco express" wins over "tesco". Keys are matched against
// case/punctuation-normalized lines.
var knownMerchants = []merchantEntry{
	{"tesco express", "Tesco Express", "GBP"},
	{"tesco extra", "Tesco Extra", "GBP"},
	{"tesco", "Tesco", "GBP"},
	{"sainsbury", "Sainsbury's", "GBP"},
	{"asda", "ASDA", "GBP"},
	{"morrisons", "Morrisons", "GBP"},
	{"waitrose", "Waitrose", "GBP"},
	{"marks spencer", "Marks & Spencer", "GBP"},
	{"m s simply food", "M&S Simply Food", "GBP"},
	{"co op", "Co-op", "GBP"},
	{"boots", "Boots", "GBP"},
	{"greggs", "Greggs", "GBP"},
	{"costa coffee", "Costa Coffee", "GBP"},
	{"pret a manger", "Pret A Manger", "GBP"},
	{"wh smith", "WHSmith", "GBP"},
	{"aldi", "Aldi", ""},
	{"lidl", "Lidl", ""},
	{"spar", "Spar", ""},
	{"carrefour", "Carrefour", "EUR"},
	{"auchan", "Auchan", "EUR"},
	{"ikea", "IKEA", ""},
	{"starbucks", "Starbucks", "USD"},
	{"mcdonald", "McDonald's", "USD"},
	{"burger king", "Burger King", "USD"},
	{"subway", "Subway", "USD"},
	{"walmart", "Walmart", "USD"},
	{"target", "Target", "USD"},
	{"costco", "Costco", "USD"},
	{"walgreens", "Walgreens", "USD"},
	{"cvs pharmacy", "CVS Pharmacy", "USD"},
	{"whole foods", "Whole Foods", "USD"},
	{"trader joe", "Trader Joe's", "USD"},
	{"home depot", "The Home Depot", "USD"},
}

// Boilerplate that shows up in receipt headers and footers but is never the
// merchant name.
var boilerplatePhrases = []string{
	"THANK YOU", "PLEASE KEEP", "CUSTOMER COPY", "KEEP THIS RECEIPT",
	"VAT RECEIPT", "SALE RECEIPT", "OPENING HOURS", "WWW.", ".COM", ".CO.UK",
}

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9 ]+`)

// IdentifyMerchant first scans the leading lines for a known merchant; if the
// dictionary misses, a heuristic pass returns the first plausible header
// line. The dictionary is precise but incomplete; the fallback trades
// precision for coverage.
func IdentifyMerchant(lines []string) *string {
	limit := len(lines)
	if limit > 30 {
		limit = 30
	}
	for i := 0; i < limit; i++ {
		norm := normalizeMerchantLine(lines[i])
		for _, e := range knownMerchants {
			if strings.Contains(norm, e.key) {
				name := e.name
				return &name
			}
		}
	}

	limit = len(lines)
	if limit > 15 {
		limit = 15
	}
	caser := cases.Title(language.English)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		if idTokenPattern.MatchString(line) || timePattern.MatchString(line) {
			continue
		}
		if containsAny(upper, boilerplatePhrases) || mostlyDigits(line) {
			continue
		}
		if len(line) >= 6 || strings.Contains(line, " ") {
			name := caser.String(strings.ToLower(line))
			if runes := []rune(name); len(runes) > 40 {
				name = string(runes[:40])
			}
			return &name
		}
	}
	return nil
}

func normalizeMerchantLine(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

func mostlyDigits(s string) bool {
	digits, chars := 0, 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		chars++
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return chars > 0 && digits*2 > chars
}

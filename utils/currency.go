package utils

import "strings"

// Symbol detection runs in a fixed order so a receipt containing several
// symbols resolves the same way every time.
var currencySymbols = []struct {
	symbol   string
	currency string
}{
	{"£", "GBP"},
	{"€", "EUR"},
	{"$", "USD"},
}

// GuessCurrency prefers an explicit symbol anywhere in the text; failing
// that, a recognized merchant implies its home currency (a UK supermarket
// chain implies GBP absent any symbol). Nil when neither signal exists.
func GuessCurrency(fullText string, merchant *string) *string {
	for _, s := range currencySymbols {
		if strings.Contains(fullText, s.symbol) {
			cur := s.currency
			return &cur
		}
	}
	if merchant != nil {
		for _, e := range knownMerchants {
			if e.name == *merchant && e.currency != "" {
				cur := e.currency
				return &cur
			}
		}
	}
	return nil
}

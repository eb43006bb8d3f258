package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

// Lines whose digit runs are timestamps or operational identifiers never
// contain money; they are skipped wholesale.
var (
	timePattern    = regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\b`)
	idTokenPattern = regexp.MustCompile(`(?i)\b(TERMINAL|AUTH|TID|MID|PTID|SEQ|TRAN(S)?\s*(ID|NO|#)|RECEIPT\s*(NO|#)|INVOICE\s*(NO|#)|TEL|PHONE|FAX|VAT\s*(REG|NO)|CLERK|OPERATOR|STORE\s*#?\d)`)
)

// Pattern families tried in priority order. The integer fallback only runs
// when the decimal/penny family finds nothing on the line.
var (
	decimalAmountPattern = regexp.MustCompile(`([£€$])?\s?((?:\d{1,3}(?:,\d{3})+|\d+)\.\d{1,2})`)
	pennyAmountPattern   = regexp.MustCompile(`\b(\d{1,3})p\b`)
	integerAmountPattern = regexp.MustCompile(`([£€$])\s?(\d{1,6})\b|\b(\d{1,6})\b`)
)

var oneHundred = decimal.NewFromInt(100)

// ScanAmounts finds all currency-like substrings in a line and converts each
// to a numeric value. Substrings that fail conversion are silently dropped.
func ScanAmounts(line string, lineIndex int) []dto.MoneyCandidate {
	if timePattern.MatchString(line) || idTokenPattern.MatchString(line) {
		return nil
	}
	norm := NormalizeDigits(line)

	var out []dto.MoneyCandidate
	for _, m := range decimalAmountPattern.FindAllStringSubmatch(norm, -1) {
		v, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
		if err != nil {
			continue
		}
		out = append(out, dto.MoneyCandidate{
			Value:             v,
			RawText:           strings.TrimSpace(m[0]),
			LineIndex:         lineIndex,
			HasCurrencySymbol: m[1] != "",
		})
	}
	for _, m := range pennyAmountPattern.FindAllStringSubmatch(norm, -1) {
		v, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		out = append(out, dto.MoneyCandidate{
			Value:     v.Div(oneHundred),
			RawText:   m[0],
			LineIndex: lineIndex,
		})
	}
	if len(out) > 0 {
		return out
	}

	// Integer fallback. Bare integers under 10 with no currency symbol are
	// line-item quantities, not amounts.
	for _, m := range integerAmountPattern.FindAllStringSubmatch(norm, -1) {
		symbol, digits := m[1], m[2]
		if digits == "" {
			digits = m[3]
		}
		v, err := decimal.NewFromString(digits)
		if err != nil {
			continue
		}
		if symbol == "" && v.LessThan(decimal.NewFromInt(10)) {
			continue
		}
		out = append(out, dto.MoneyCandidate{
			Value:             v,
			RawText:           strings.TrimSpace(m[0]),
			LineIndex:         lineIndex,
			HasCurrencySymbol: symbol != "",
		})
	}
	return out
}

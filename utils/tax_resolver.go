package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

// A plausible VAT/sales-tax amount never exceeds 35% of the total. Anything
// above that is a misread line item or a fragment of another number.
var maxTaxShare = decimal.NewFromFloat(0.35)

var taxRatePattern = regexp.MustCompile(`\b(\d{1,2}(?:\.\d)?)\s*%`)

// ResolveTax scans bottom-up for tax-anchor lines, collecting candidates on
// the anchor line and its immediate neighbors. Selection favors, in order:
// a TAX/VAT keyword on the candidate's own line, fractional value over
// integer, then the latest line index. The returned rate comes only from an
// explicit NN[.N]% on a tax-anchored line; it is never computed here.
func ResolveTax(lines []dto.OcrLine, total *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	anchors := LocateAnchors(lines)
	anchored := anchorLineSet(anchors, dto.AnchorTax)

	var taxCap *decimal.Decimal
	if total != nil {
		c := total.Mul(maxTaxShare)
		taxCap = &c
	}

	var best *dto.MoneyCandidate
	bestScore := -1
	seen := make(map[int]bool)
	for i := len(lines) - 1; i >= 0; i-- {
		if !anchored[lines[i].Index] {
			continue
		}
		for _, j := range []int{i - 1, i, i + 1} {
			if j < 0 || j >= len(lines) || seen[j] {
				continue
			}
			seen[j] = true
			onTaxLine := containsAny(strings.ToUpper(lines[j].Text), taxAnchors)
			for _, c := range ScanAmounts(lines[j].Text, lines[j].Index) {
				if !c.Value.IsPositive() {
					continue
				}
				if taxCap != nil && c.Value.GreaterThan(*taxCap) {
					continue
				}
				score := 0
				if onTaxLine {
					score += 2
				}
				if isFractional(c.Value) {
					score++
				}
				c := c
				if score > bestScore || (score == bestScore && c.LineIndex >= best.LineIndex) {
					best, bestScore = &c, score
				}
			}
		}
	}

	var rate *decimal.Decimal
	for i := len(lines) - 1; i >= 0; i-- {
		if !anchored[lines[i].Index] {
			continue
		}
		if m := taxRatePattern.FindStringSubmatch(lines[i].Text); m != nil {
			if v, err := decimal.NewFromString(m[1]); err == nil && v.IsPositive() {
				rate = &v
				break
			}
		}
	}

	if best == nil {
		return nil, rate
	}
	v := best.Value
	return &v, rate
}

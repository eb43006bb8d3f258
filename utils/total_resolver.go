package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

// Totals outside (0, 5000] are scanner noise, not plausible consumer-receipt
// amounts, and are discarded rather than reported as errors.
var maxPlausibleTotal = decimal.NewFromInt(5000)

// Lines that carry large numbers which are never the amount owed.
var nonPriceLines = []string{"ITEMS SOLD", "INSTANT SAVINGS", "TOTAL SAVINGS", "YOU SAVED", "POINTS", "CASHBACK", "CHANGE"}

// ResolveTotal finds the receipt total through a three-tier fallback:
// amounts adjacent to a total anchor, then amounts near payment lines, then
// a global scan. Each tier runs only if the previous yields nothing; nil
// means no tier found a plausible amount.
func ResolveTotal(lines []dto.OcrLine) *dto.MoneyCandidate {
	anchors := LocateAnchors(lines)
	if c := totalNearAnchor(lines, anchors); c != nil {
		return c
	}
	if c := totalNearPayment(lines, anchors); c != nil {
		return c
	}
	return totalGlobalScan(lines)
}

// totalNearAnchor scans bottom-up (receipts place totals near the end) and
// stops at the first anchor line that yields a valid candidate. The anchor
// line itself is checked first, then the next line, next+1, and the previous
// line.
func totalNearAnchor(lines []dto.OcrLine, anchors []dto.AnchorMatch) *dto.MoneyCandidate {
	anchored := anchorLineSet(anchors, dto.AnchorTotal)
	for i := len(lines) - 1; i >= 0; i-- {
		if !anchored[lines[i].Index] {
			continue
		}
		for _, j := range []int{i, i + 1, i + 2, i - 1} {
			if j < 0 || j >= len(lines) {
				continue
			}
			cands := plausibleTotals(ScanAmounts(lines[j].Text, lines[j].Index))
			if len(cands) == 0 {
				continue
			}
			return pickPreferred(cands)
		}
	}
	return nil
}

// totalNearPayment collects candidates in a ±4-line window around each
// payment-keyword line, bottom-up.
func totalNearPayment(lines []dto.OcrLine, anchors []dto.AnchorMatch) *dto.MoneyCandidate {
	anchored := anchorLineSet(anchors, dto.AnchorPayment)
	for i := len(lines) - 1; i >= 0; i-- {
		if !anchored[lines[i].Index] {
			continue
		}
		var cands []dto.MoneyCandidate
		for j := i - 4; j <= i+4; j++ {
			if j < 0 || j >= len(lines) {
				continue
			}
			cands = append(cands, plausibleTotals(ScanAmounts(lines[j].Text, lines[j].Index))...)
		}
		if len(cands) > 0 {
			return pickPreferred(cands)
		}
	}
	return nil
}

// totalGlobalScan is the last resort: every plausible candidate on every
// line, preferring the maximum fractional value, else the maximum overall.
func totalGlobalScan(lines []dto.OcrLine) *dto.MoneyCandidate {
	var all []dto.MoneyCandidate
	for _, line := range lines {
		if containsAny(strings.ToUpper(line.Text), nonPriceLines) {
			continue
		}
		all = append(all, plausibleTotals(ScanAmounts(line.Text, line.Index))...)
	}
	var bestFrac, bestAny *dto.MoneyCandidate
	for i := range all {
		c := &all[i]
		if bestAny == nil || c.Value.GreaterThan(bestAny.Value) {
			bestAny = c
		}
		if isFractional(c.Value) && (bestFrac == nil || c.Value.GreaterThan(bestFrac.Value)) {
			bestFrac = c
		}
	}
	if bestFrac != nil {
		out := *bestFrac
		return &out
	}
	if bestAny != nil {
		out := *bestAny
		return &out
	}
	return nil
}

func plausibleTotals(cands []dto.MoneyCandidate) []dto.MoneyCandidate {
	var out []dto.MoneyCandidate
	for _, c := range cands {
		if c.Value.IsPositive() && c.Value.LessThanOrEqual(maxPlausibleTotal) {
			out = append(out, c)
		}
	}
	return out
}

// pickPreferred applies the fractional-preference tie-break: a decimal-valued
// amount beats a bare integer, and among equally-weighted options the
// latest-scanned line wins.
func pickPreferred(cands []dto.MoneyCandidate) *dto.MoneyCandidate {
	var best *dto.MoneyCandidate
	bestFrac := false
	for i := range cands {
		c := &cands[i]
		frac := isFractional(c.Value)
		switch {
		case best == nil, frac && !bestFrac:
			best, bestFrac = c, frac
		case frac == bestFrac && c.LineIndex >= best.LineIndex:
			best = c
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

func isFractional(v decimal.Decimal) bool {
	return !v.Equal(v.Truncate(0))
}

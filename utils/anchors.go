package utils

import (
	"strings"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

// Priority keyword sets per anchor class. Matching is uppercase substring
// matching; multi-word phrases are listed before their single-word stems.
var (
	totalAnchors    = []string{"AMOUNT DUE", "BALANCE DUE", "TOTAL DUE", "GRAND TOTAL", "TOTAL TO PAY", "TOTAL"}
	taxAnchors      = []string{"TAX", "VAT", "GST", "HST", "TVA"}
	subtotalAnchors = []string{"SUBTOTAL", "SUB-TOTAL", "SUB TOTAL"}
	paymentAnchors  = []string{"CARD", "CASH", "PAID", "VISA", "MASTERCARD", "AMEX", "MAESTRO", "DEBIT", "CREDIT", "CONTACTLESS", "APPROVED"}
)

// Negative sets. A priority term appearing inside one of these phrases does
// not count: "SUBTOTAL" and "TOTAL TAX" contain "TOTAL" but are not the
// amount owed.
var (
	badTotalTerms = []string{"SUBTOTAL", "SUB-TOTAL", "SUB TOTAL", "TOTAL TAX", "TOTAL ITEMS", "TOTAL SAVINGS", "TOTAL DISCOUNT", "TOTAL QTY", "ITEMS SOLD"}
	badTaxTerms   = []string{"VAT REG", "VAT NO", "TAX INVOICE"}
)

// LocateAnchors scans lines for financial field keywords. A line may match
// zero, one, or several classes; negated matches are reported so callers can
// exclude them per class.
func LocateAnchors(lines []dto.OcrLine) []dto.AnchorMatch {
	var matches []dto.AnchorMatch
	for _, line := range lines {
		upper := strings.ToUpper(line.Text)
		if containsAny(upper, totalAnchors) {
			matches = append(matches, dto.AnchorMatch{
				LineIndex: line.Index,
				Class:     dto.AnchorTotal,
				Negated:   containsAny(upper, badTotalTerms),
			})
		}
		if containsAny(upper, taxAnchors) {
			matches = append(matches, dto.AnchorMatch{
				LineIndex: line.Index,
				Class:     dto.AnchorTax,
				Negated:   containsAny(upper, badTaxTerms),
			})
		}
		if containsAny(upper, subtotalAnchors) {
			matches = append(matches, dto.AnchorMatch{
				LineIndex: line.Index,
				Class:     dto.AnchorSubtotal,
			})
		}
		if containsAny(upper, paymentAnchors) {
			matches = append(matches, dto.AnchorMatch{
				LineIndex: line.Index,
				Class:     dto.AnchorPayment,
			})
		}
	}
	return matches
}

// anchorLineSet collects the line indexes with a usable (non-negated) match
// for the given class.
func anchorLineSet(matches []dto.AnchorMatch, class dto.AnchorClass) map[int]bool {
	set := make(map[int]bool)
	for _, m := range matches {
		if m.Class == class && !m.Negated {
			set[m.LineIndex] = true
		}
	}
	return set
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

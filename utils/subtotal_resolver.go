package utils

import (
	"github.com/shopspring/decimal"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

var centTolerance = decimal.NewFromFloat(0.01)

// ResolveSubtotal tries the anchor tier first: bottom-up over subtotal-anchor
// lines, checking the anchor line then its next line for a positive amount no
// greater than the total. If no anchor yields a value and both total and tax
// are known, the computed tier returns round(total - tax, 2). An anchor value
// always wins over a computed one.
func ResolveSubtotal(lines []dto.OcrLine, total, tax *decimal.Decimal) (*decimal.Decimal, dto.SubtotalSource) {
	anchors := LocateAnchors(lines)
	anchored := anchorLineSet(anchors, dto.AnchorSubtotal)

	for i := len(lines) - 1; i >= 0; i-- {
		if !anchored[lines[i].Index] {
			continue
		}
		for _, j := range []int{i, i + 1} {
			if j >= len(lines) {
				continue
			}
			for _, c := range ScanAmounts(lines[j].Text, lines[j].Index) {
				if !c.Value.IsPositive() {
					continue
				}
				if total != nil && c.Value.GreaterThan(*total) {
					continue
				}
				v := c.Value
				return &v, dto.SubtotalAnchor
			}
		}
	}

	if total != nil && tax != nil {
		sub := total.Sub(*tax).Round(2)
		if sub.IsPositive() && sub.LessThanOrEqual(total.Add(centTolerance)) {
			return &sub, dto.SubtotalComputed
		}
	}

	return nil, dto.SubtotalNone
}

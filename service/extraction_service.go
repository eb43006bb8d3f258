package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmcnally31/receipt-field-extraction/dto"
	"github.com/kmcnally31/receipt-field-extraction/utils"
)

// ExtractionService turns raw OCR lines into a normalized receipt record.
// It holds no mutable state; a single instance is safe to share across
// goroutines.
type ExtractionService struct{}

func NewExtractionService() *ExtractionService {
	return &ExtractionService{}
}

// Extract runs the full pipeline: resolvers for total, tax and subtotal, a
// single reconciliation pass, then date, merchant, currency and the advisory
// quality score. It never fails: empty or hopeless input produces a record
// with a nil total, which is the only caller-visible failure signal.
func (s *ExtractionService) Extract(lines []dto.OcrLine) dto.ReceiptExtraction {
	// Re-index a private copy so candidate line references are positional
	// regardless of what the caller put in Index.
	owned := make([]dto.OcrLine, len(lines))
	texts := make([]string, len(lines))
	for i, l := range lines {
		l.Index = i
		owned[i] = l
		texts[i] = l.Text
	}
	rawText := strings.Join(texts, "\n")

	result := dto.ReceiptExtraction{
		SubtotalSource: dto.SubtotalNone,
		RawText:        rawText,
	}
	if len(owned) == 0 {
		return result
	}

	if c := utils.ResolveTotal(owned); c != nil {
		v := c.Value
		result.Total = &v
	}
	result.Tax, result.TaxRate = utils.ResolveTax(owned, result.Total)
	result.Subtotal, result.SubtotalSource = utils.ResolveSubtotal(owned, result.Total, result.Tax)

	reconcile(&result)

	result.Date = utils.ExtractDate(rawText)
	result.Merchant = utils.IdentifyMerchant(texts)
	result.Currency = utils.GuessCurrency(rawText, result.Merchant)
	result.Confidence = qualityScore(result, owned)

	return result
}

// reconcile back-derives tax from subtotal and total. It runs exactly once,
// after both resolvers, never inside either of them. A rate parsed from an
// explicit percentage always wins over a derived one.
func reconcile(r *dto.ReceiptExtraction) {
	if r.Tax != nil || r.Subtotal == nil || r.Total == nil {
		return
	}
	tax := r.Total.Sub(*r.Subtotal).Round(2)
	if tax.IsNegative() {
		tax = decimal.Zero
	}
	r.Tax = &tax
	if r.TaxRate == nil && r.Subtotal.IsPositive() {
		rate := tax.Mul(decimal.NewFromInt(100)).Div(*r.Subtotal).Round(2)
		r.TaxRate = &rate
	}
}

// qualityScore is a weighted sum over field presence plus the average OCR
// line confidence, capped at 1.0. Advisory only: it never gates success.
func qualityScore(r dto.ReceiptExtraction, lines []dto.OcrLine) float64 {
	score := 0.0
	if r.Total != nil {
		score += 0.30
	}
	if r.Date != nil {
		score += 0.15
	}
	if r.Merchant != nil {
		score += 0.15
	}
	if r.Tax != nil {
		score += 0.10
	}
	if r.Subtotal != nil {
		score += 0.10
	}
	if len(lines) > 0 {
		var sum float64
		for _, l := range lines {
			sum += l.Confidence
		}
		score += 0.20 * (sum / float64(len(lines)))
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

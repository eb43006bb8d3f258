package dto

import "github.com/shopspring/decimal"

// OcrLine is a single recognized text line from the upstream OCR step,
// ordered top-to-bottom as printed. Confidence is in [0,1].
type OcrLine struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Index      int     `json:"index"`
}

// MoneyCandidate is a currency-like substring parsed from one line.
// A line may yield zero or more candidates; candidates are never persisted.
type MoneyCandidate struct {
	Value             decimal.Decimal `json:"value"`
	RawText           string          `json:"raw_text"`
	LineIndex         int             `json:"line_index"`
	HasCurrencySymbol bool            `json:"has_currency_symbol"`
}

// AnchorClass identifies which financial field a keyword match points at.
type AnchorClass string

const (
	AnchorTotal    AnchorClass = "total"
	AnchorTax      AnchorClass = "tax"
	AnchorSubtotal AnchorClass = "subtotal"
	AnchorPayment  AnchorClass = "payment"
)

// AnchorMatch records that a line matched an anchor class. A negated match
// means the line contained a disqualifying term (e.g. "TOTAL ITEMS" for the
// total class) and must not be used for that class.
type AnchorMatch struct {
	LineIndex int         `json:"line_index"`
	Class     AnchorClass `json:"class"`
	Negated   bool        `json:"negated"`
}

// SubtotalSource tags where the subtotal value came from.
type SubtotalSource string

const (
	SubtotalAnchor   SubtotalSource = "anchor"
	SubtotalComputed SubtotalSource = "computed"
	SubtotalNone     SubtotalSource = "none"
)

// ReceiptExtraction is the normalized record assembled from one parse
// invocation. Nil pointers mean "could not be extracted"; only a nil Total
// marks the extraction as unsuccessful.
type ReceiptExtraction struct {
	Merchant       *string          `json:"merchant"`
	Date           *string          `json:"date"`
	Total          *decimal.Decimal `json:"total"`
	Currency       *string          `json:"currency"`
	Tax            *decimal.Decimal `json:"tax"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	Subtotal       *decimal.Decimal `json:"subtotal"`
	SubtotalSource SubtotalSource   `json:"subtotal_source"`
	Confidence     float64          `json:"confidence"`
	RawText        string           `json:"raw_text"`
}

// Success reports whether a total amount was extracted. All other fields are
// best-effort and may be absent independently.
func (r ReceiptExtraction) Success() bool {
	return r.Total != nil
}

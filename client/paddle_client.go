package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/kmcnally31/receipt-field-extraction/dto"
)

// PaddleClient talks to a PaddleOCR-style REST service and converts its
// recognition output into the engine's input lines. It performs no image
// decoding and no recognition itself; the encoded image payload is forwarded
// as received.
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewPaddleClient creates a client for the given OCR service endpoint.
func NewPaddleClient(apiURL string) *PaddleClient {
	return &PaddleClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// RecognizeLines submits a base64-encoded image and returns the recognized
// lines in print order with per-line confidence.
func (p *PaddleClient) RecognizeLines(encodedImage string) ([]dto.OcrLine, error) {
	payload := map[string]interface{}{
		"images": []string{encodedImage},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.httpClient.Post(p.apiURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		Results [][]struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var lines []dto.OcrLine
	if len(result.Results) > 0 {
		for i, row := range result.Results[0] {
			lines = append(lines, dto.OcrLine{
				Text:       row.Text,
				Confidence: row.Confidence,
				Index:      i,
			})
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("PaddleOCR returned no text lines")
	}

	log.Printf("PaddleOCR returned %d lines", len(lines))
	return lines, nil
}

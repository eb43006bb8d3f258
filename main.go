package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/kmcnally31/receipt-field-extraction/client"
	"github.com/kmcnally31/receipt-field-extraction/config"
	"github.com/kmcnally31/receipt-field-extraction/dto"
	"github.com/kmcnally31/receipt-field-extraction/service"
)

func main() {
	fs := ff.NewFlagSet("receipt-extract")
	var (
		input  = fs.StringLong("input", "", "Path to OCR output: JSON array of {text, confidence} or plain text")
		format = fs.StringLong("format", "json", "Input format: 'json' or 'text'")
		image  = fs.StringLong("image", "", "Path to a receipt image; sent to the PaddleOCR service for recognition")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("RECEIPT_EXTRACT"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *input == "" && *image == "" {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: either --input or --image is required")
		os.Exit(1)
	}

	cfg := config.LoadConfig()

	var lines []dto.OcrLine
	var err error
	if *image != "" {
		lines, err = recognizeImage(cfg, *image)
	} else {
		lines, err = readLines(*input, *format, cfg.MaxInputLines)
	}
	if err != nil {
		log.Fatalf("Failed to load OCR lines: %v", err)
	}

	extractionService := service.NewExtractionService()
	result := extractionService.Extract(lines)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))

	if !result.Success() {
		log.Println("No total amount could be extracted")
		os.Exit(3)
	}
}

// recognizeImage sends an image file to the external PaddleOCR service and
// returns the recognized lines.
func recognizeImage(cfg *config.Config, path string) ([]dto.OcrLine, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	paddle := client.NewPaddleClient(cfg.PaddleAPIURL)
	return paddle.RecognizeLines(base64.StdEncoding.EncodeToString(raw))
}

// readLines loads pre-recognized OCR output from a file. Plain-text input
// gets a confidence of 1.0 per line.
func readLines(path, format string, maxLines int) ([]dto.OcrLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var lines []dto.OcrLine
	switch format {
	case "json":
		if err := json.Unmarshal(data, &lines); err != nil {
			return nil, fmt.Errorf("invalid OCR JSON: %w", err)
		}
	case "text":
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, dto.OcrLine{Text: line, Confidence: 1.0})
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines, nil
}

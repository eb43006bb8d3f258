package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PaddleAPIURL  string
	MaxInputLines int
}

func LoadConfig() *Config {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	apiURL := os.Getenv("PADDLEOCR_API_URL")
	if apiURL == "" {
		apiURL = "http://paddleocr:8866/predict/ocr_system"
	}

	return &Config{
		PaddleAPIURL:  apiURL,
		MaxInputLines: 500,
	}
}

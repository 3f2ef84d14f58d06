//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for reading document text from camera frames.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client        *gosseract.Client
	minConfidence float64
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client, minConfidence: DefaultMinConfidence}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeLines performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized text lines with per-line confidence, dropping
// lines below the configured confidence floor.
func (c *Client) RecognizeLines(imageData []byte) ([]Line, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var lines []Line
	for _, box := range boxes {
		confidence := box.Confidence / 100
		if confidence < c.minConfidence {
			continue
		}
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		lines = append(lines, Line{Text: text, Confidence: confidence})
	}
	return lines, nil
}

// SetMinConfidence sets the confidence floor for RecognizeLines, in [0,1].
func (c *Client) SetMinConfidence(min float64) {
	c.minConfidence = min
}

// SetMRZWhitelist restricts recognition to the MRZ alphabet. Use this
// when the camera is framed on the zone itself; leave it unset when the
// same frames must also yield the printed card access number's label.
func (c *Client) SetMRZWhitelist() error {
	return c.client.SetWhitelist(MRZWhitelist)
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

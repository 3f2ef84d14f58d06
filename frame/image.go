package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // register decoder

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
)

// DecodeImage decodes a single camera frame. PNG and JPEG come from the
// standard library; BMP and TIFF are registered for cameras and capture
// pipelines that deliver raw bitmap frames.
func DecodeImage(frameData []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(frameData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, nil
}

// EncodePNG re-encodes a decoded frame as PNG, the safest interchange
// format for the OCR engine. Use it to feed an image.Image from a camera
// API into Pump.Submit.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

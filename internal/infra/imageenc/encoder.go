// Package imageenc turns uploaded image bytes into base64 text suitable for
// an inline data URI.
package imageenc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotImage is returned when the bytes do not decode as a supported image.
	ErrNotImage = errors.New("unsupported or corrupt image")

	// ErrTooLarge is returned when the input exceeds Encoder.MaxBytes.
	ErrTooLarge = errors.New("image exceeds size limit")
)

// Image is an encoded upload.
type Image struct {
	Base64 string
	// Format is the decoder name, e.g. "png" or "jpeg".
	Format string
	Width  int
	Height int
}

// MIMEType returns the media type implied by the detected format.
func (i Image) MIMEType() string {
	return "image/" + i.Format
}

// Encoder validates and base64-encodes images. A zero MaxBytes disables the
// size check.
type Encoder struct {
	MaxBytes int64
}

func New(maxBytes int64) *Encoder {
	return &Encoder{MaxBytes: maxBytes}
}

// EncodeImage reads r to the end, confirms the header decodes as png, jpeg,
// gif, webp, bmp or tiff and returns the standard base64 encoding.
func (e *Encoder) EncodeImage(r io.Reader) (Image, error) {
	src := r
	if e.MaxBytes > 0 {
		src = io.LimitReader(r, e.MaxBytes+1)
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	if e.MaxBytes > 0 && int64(len(raw)) > e.MaxBytes {
		return Image{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, e.MaxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return Image{
		Base64: base64.StdEncoding.EncodeToString(raw),
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Encode is EncodeImage returning only the base64 text.
func (e *Encoder) Encode(r io.Reader) (string, error) {
	img, err := e.EncodeImage(r)
	if err != nil {
		return "", err
	}
	return img.Base64, nil
}

// EncodeFile encodes the image stored at path.
func (e *Encoder) EncodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()
	return e.Encode(f)
}

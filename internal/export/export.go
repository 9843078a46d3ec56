package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for export formats that have no encoder.
var ErrUnknownFormat = errors.New("unknown export format")

// Format identifies an image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatPDF Format = "pdf"
)

// Formats lists every supported format, PNG first.
func Formats() []Format {
	return []Format{FormatPNG, FormatBMP, FormatPDF}
}

// Extension returns the file extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat accepts a format name or a file name/extension.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if ext := filepath.Ext(name); ext != "" {
		name = ext
	}
	name = strings.TrimPrefix(name, ".")
	switch name {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return PNG(w, img)
	case FormatBMP:
		return BMP(w, img)
	case FormatPDF:
		return PDF(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// PNG encodes img losslessly. Identical pixels always produce identical bytes.
func PNG(w io.Writer, img image.Image) error {
	if err := pngEncoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// BMP encodes img as an uncompressed bitmap.
func BMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return nil
}

// Trim crops img to content grown by pad pixels and clipped to the image.
// An empty content rectangle leaves the image whole.
func Trim(img *image.RGBA, content image.Rectangle, pad int) image.Image {
	if content.Empty() {
		return img
	}
	return img.SubImage(content.Inset(-pad).Intersect(img.Bounds()))
}

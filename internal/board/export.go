package board

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"

	"SketchBoard/internal/export"
)

// trimPadding is the margin kept around content when trimming an export.
const trimPadding = 2

// ExportOptions selects the encoding of an export.
type ExportOptions struct {
	Format export.Format
	// Trim crops to the bounding box of non-background pixels.
	Trim bool
}

// ExportImage returns the current surface encoded as PNG. It never
// mutates the board.
func (b *Board) ExportImage() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Export(&buf, ExportOptions{Format: export.FormatPNG}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export writes the current surface to w. Failures are returned to the
// caller and leave the board untouched.
func (b *Board) Export(w io.Writer, opts ExportOptions) error {
	if opts.Format == "" {
		opts.Format = export.FormatPNG
	}
	var img image.Image = b.surface.Image()
	if opts.Trim {
		img = export.Trim(b.surface.Image(), b.surface.ContentBounds(), trimPadding)
	}
	if err := export.Encode(w, img, opts.Format); err != nil {
		log.Printf("[EXPORT] %s export failed: %v", opts.Format, err)
		return fmt.Errorf("export %s: %w", opts.Format, err)
	}
	log.Printf("[EXPORT] Exported %dx%d %s", img.Bounds().Dx(), img.Bounds().Dy(), opts.Format)
	return nil
}

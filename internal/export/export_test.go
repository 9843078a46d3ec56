package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(3, 2, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(12, 5, color.RGBA{0, 0, 255, 255})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{"PNG", FormatPNG},
		{".bmp", FormatBMP},
		{"drawing.pdf", FormatPDF},
		{"/tmp/out/Sketch.PNG", FormatPNG},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "gif", "notes.txt"} {
		_, err := ParseFormat(bad)
		assert.ErrorIs(t, err, ErrUnknownFormat, bad)
	}
}

func TestPNGRoundTripsPixels(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatPNG))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), decoded.Bounds())
	r, g, b, _ := decoded.At(3, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestPNGIsDeterministic(t *testing.T) {
	src := testImage()
	var a, b bytes.Buffer
	require.NoError(t, PNG(&a, src))
	require.NoError(t, PNG(&b, src))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatBMP))

	decoded, err := bmp.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(12, 5).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFRejectsEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PDF(&buf, image.NewRGBA(image.Rectangle{})))
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, testImage(), Format("gif"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTrim(t *testing.T) {
	img := testImage()

	trimmed := Trim(img, image.Rect(3, 2, 13, 6), 2)
	assert.Equal(t, image.Rect(1, 0, 15, 8), trimmed.Bounds())

	assert.Equal(t, img.Bounds(), Trim(img, image.Rectangle{}, 2).Bounds())
}

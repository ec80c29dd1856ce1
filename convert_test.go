package argb1555

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConverter() *Converter {
	return New(log.New(ioutil.Discard, "", 0))
}

func writePNG(t *testing.T, path string, m image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}

func readImage(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, _, err := image.Decode(f)
	require.NoError(t, err)

	return m
}

func TestPackAndUnpackFile(t *testing.T) {
	dir := t.TempDir()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255})

	input := filepath.Join(dir, "input.png")
	writePNG(t, input, src)

	packed := filepath.Join(dir, "packed.png")
	require.NoError(t, testConverter().PackFile(input, packed))

	g, ok := readImage(t, packed).(*image.Gray16)
	require.True(t, ok)
	assert.Equal(t, uint16(0xfc00), g.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(0x03e0), g.Gray16At(1, 0).Y)

	output := filepath.Join(dir, "output.png")
	require.NoError(t, testConverter().UnpackFile(packed, output))

	rgba, ok := readImage(t, output).(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, rgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{G: 255}, rgba.NRGBAAt(1, 0))
}

func TestPackFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := testConverter().PackFile(filepath.Join(dir, "nonexistent.png"), filepath.Join(dir, "out.png"))
	assert.Error(t, err)
}

func TestPackFileUnsupportedOutput(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "input.png")
	writePNG(t, input, image.NewNRGBA(image.Rect(0, 0, 1, 1)))

	output := filepath.Join(dir, "out.jpg")
	err := testConverter().PackFile(input, output)
	assert.Error(t, err)

	// A failed encode must not leave a partial file behind
	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestUnpackFileFormatMismatch(t *testing.T) {
	dir := t.TempDir()

	// An opaque truecolor PNG decodes as 8-bit RGB, not 16-bit grayscale
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	input := filepath.Join(dir, "input.png")
	writePNG(t, input, src)

	err := testConverter().UnpackFile(input, filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, err, ErrFormatMismatch)
}

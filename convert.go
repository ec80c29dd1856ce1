package argb1555

import (
	"fmt"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/argb1555/pixel"
	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"
)

// PackFile reads the image at input and writes it to output as a
// single-channel 16-bit image of packed ARGB-1555 values. The output
// container is chosen by extension; PNG or TIFF, the formats able to
// store 16-bit samples.
func (c *Converter) PackFile(input, output string) error {
	m, err := imaging.Open(input)
	if err != nil {
		return err
	}

	b := m.Bounds()
	c.logger.Printf("packing %dx%d image \"%s\"\n", b.Dx(), b.Dy(), input)

	packed := PackImage(m)

	return writeAtomic(output, func(w io.Writer) error {
		return encodePacked(w, packed, output)
	})
}

// UnpackFile reads a packed single-channel 16-bit image at input and
// writes it to output as a standard RGBA image in the format implied by
// the output extension.
func (c *Converter) UnpackFile(input, output string) error {
	m, err := imaging.Open(input)
	if err != nil {
		return err
	}

	rgba, err := UnpackImage(m)
	if err != nil {
		return err
	}

	b := rgba.Bounds()
	c.logger.Printf("unpacking %dx%d image \"%s\"\n", b.Dx(), b.Dy(), input)

	format, err := imaging.FormatFromFilename(output)
	if err != nil {
		return err
	}

	return writeAtomic(output, func(w io.Writer) error {
		return imaging.Encode(w, rgba, format)
	})
}

func encodePacked(w io.Writer, m *pixel.Image, output string) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return png.Encode(w, m.Gray16())
	case ".tif", ".tiff":
		return tiff.Encode(w, m.Gray16(), nil)
	default:
		return fmt.Errorf("argb1555: \"%s\" cannot store 16-bit samples", ext)
	}
}

// writeAtomic writes to a temporary file alongside path and renames it
// into place so a failed encode never leaves a partial output behind.
func writeAtomic(path string, fn func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	f, err := ioutil.TempFile(dir, base+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}

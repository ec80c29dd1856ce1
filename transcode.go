package argb1555

import (
	"encoding/binary"
	"errors"
	"image"
	"image/draw"
	"runtime"

	"github.com/bodgit/argb1555/pixel"
	"github.com/gammazero/workerpool"
)

// ErrFormatMismatch is returned by UnpackImage when the decoded input
// is not a single-channel 16-bit image.
var ErrFormatMismatch = errors.New("argb1555: input is not a 16-bit grayscale image")

// PackImage converts any decoded image to a buffer of packed ARGB-1555
// values. Output pixels depend only on the corresponding input pixel so
// rows are transcoded concurrently.
func PackImage(m image.Image) *pixel.Image {
	src, ok := m.(*image.NRGBA)
	if !ok {
		// Normalize to straight alpha; the alpha bit must not
		// bleed into the color channels
		src = image.NewNRGBA(m.Bounds())
		draw.Draw(src, src.Rect, m, m.Bounds().Min, draw.Src)
	}

	b := src.Bounds()
	dst := pixel.NewImage(b)

	wp := workerpool.New(runtime.NumCPU())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		y := y
		wp.Submit(func() {
			i := src.PixOffset(b.Min.X, y)
			o := dst.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				s := src.Pix[i : i+4 : i+4]
				dst.Pix[o+x] = pixel.Pack(s[0], s[1], s[2], s[3] > 0)
				i += 4
			}
		})
	}
	wp.StopWait()

	return dst
}

// UnpackImage converts a single-channel 16-bit image of packed
// ARGB-1555 values back to a standard RGBA image. Any other decoded
// image type fails with ErrFormatMismatch rather than being
// reinterpreted.
func UnpackImage(m image.Image) (*image.NRGBA, error) {
	src, ok := m.(*image.Gray16)
	if !ok {
		return nil, ErrFormatMismatch
	}

	b := src.Bounds()
	dst := image.NewNRGBA(b)

	wp := workerpool.New(runtime.NumCPU())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		y := y
		wp.Submit(func() {
			i := src.PixOffset(b.Min.X, y)
			o := dst.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				r, g, bl, a := pixel.Unpack(binary.BigEndian.Uint16(src.Pix[i : i+2]))
				d := dst.Pix[o : o+4 : o+4]
				d[0], d[1], d[2], d[3] = r, g, bl, a
				i += 2
				o += 4
			}
		})
	}
	wp.StopWait()

	return dst, nil
}

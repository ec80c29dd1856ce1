package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Image is an in-memory image of packed ARGB-1555 values.
type Image struct {
	// Pix holds the packed pixels. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []uint16
	// Stride is the Pix stride (in uint16s) between vertically
	// adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewImage returns a new packed image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) ColorModel() color.Model { return color.NRGBAModel }

// PixOffset returns the index of the element of Pix corresponding to
// the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	return Color(p.Pix[p.PixOffset(x, y)]).NRGBA()
}

func (p *Image) Set(x, y int, c color.Color) {
	p.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

func (p *Image) SetNRGBA(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = Pack(c.R, c.G, c.B, c.A > 0)
}

// Gray16 copies the packed values into a 16-bit grayscale image, the
// container used to persist packed images.
func (p *Image) Gray16() *image.Gray16 {
	m := image.NewGray16(p.Rect)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			i := m.PixOffset(x, y)
			binary.BigEndian.PutUint16(m.Pix[i:i+2], p.Pix[p.PixOffset(x, y)])
		}
	}
	return m
}

// FromGray16 reinterprets a 16-bit grayscale image as packed ARGB-1555
// values.
func FromGray16(m *image.Gray16) *Image {
	b := m.Bounds()
	p := NewImage(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := m.PixOffset(x, y)
			p.Pix[p.PixOffset(x, y)] = binary.BigEndian.Uint16(m.Pix[i : i+2])
		}
	}
	return p
}

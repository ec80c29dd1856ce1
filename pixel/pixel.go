/*
Package pixel implements the ARGB-1555 pixel encoding; one alpha bit and
five bits each of red, green and blue packed into a 16-bit value.

Bit 15 is alpha, bits 14-10 are red, bits 9-5 are green and bits 4-0 are
blue. An 8-bit channel c quantizes to five bits as (c*31+127)/255 and a
5-bit channel c5 expands back to eight bits as (c5*255+15)/31. Alpha is
binary; any non-zero source alpha packs as fully opaque.
*/
package pixel

import "image/color"

const (
	alphaShift = 15
	redShift   = 10
	greenShift = 5

	channelMask = 0x1f
)

// Pack quantizes an 8-bit RGB triple to five bits per channel and packs
// it together with the alpha bit into an ARGB-1555 value.
func Pack(r, g, b uint8, opaque bool) uint16 {
	var a uint16
	if opaque {
		a = 1
	}

	// (255*31+127)/255 == 31 exactly, so a channel can never spill
	// into the adjacent field
	r5 := (uint16(r)*31 + 127) / 255
	g5 := (uint16(g)*31 + 127) / 255
	b5 := (uint16(b)*31 + 127) / 255

	return a<<alphaShift | r5<<redShift | g5<<greenShift | b5
}

// Unpack expands an ARGB-1555 value back to 8-bit channels. The alpha
// bit expands to either 0 or 255, never anything in between.
func Unpack(v uint16) (r, g, b, a uint8) {
	if v>>alphaShift&1 == 1 {
		a = 0xff
	}
	r = expand(v >> redShift & channelMask)
	g = expand(v >> greenShift & channelMask)
	b = expand(v & channelMask)
	return
}

func expand(c5 uint16) uint8 {
	return uint8((c5*255 + 15) / 31)
}

// Color is a packed ARGB-1555 color.
type Color uint16

// Model converts any color.Color to an ARGB-1555 Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(Pack(n.R, n.G, n.B, n.A > 0))
})

// NRGBA returns the color with straight alpha, preserving the stored
// channels even when the alpha bit is clear.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := Unpack(uint16(c))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

/*
Package argb1555 converts raster images between 8-bit RGBA and the
packed 16-bit ARGB-1555 encoding used by legacy graphics hardware.

Packed images are persisted as standard single-channel 16-bit images
(16-bit grayscale PNG or TIFF) where each sample carries the bit layout
described in the pixel package.
*/
package argb1555

import "log"

type Converter struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

/*
Package picture converts arbitrary images into pictures that can be drawn
with the skribbl palette and implements a compact encoding for them.

Conversion fits the source inside the canvas, flattens any transparency onto
a background color, optionally turns it grey, optionally reduces it to a few
representative colors and finally maps it onto the palette, with or without
dithering.

The encoding is a 4 byte magic "skrb", the width and height as little-endian
16-bit values and then one byte per pixel in row-major order holding the
index of its color in palette.Colors. There is no compression so the
encoded size is always 8 bytes plus one byte per pixel.
*/
package picture

import "image"

const (
	magic      = "skrb"
	headerSize = len(magic) + 4
	maxSide    = 1<<16 - 1
)

func init() {
	image.RegisterFormat("skribbl", magic, Decode, DecodeConfig)
}

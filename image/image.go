/*
Package image implements an FM9 cover image decoder.

The format is defined as 100 by 100 pixels exactly with no header or
trailer; the file is written as 20000 bytes of pixel information, one
little-endian packed 16-bit RGB565 value per pixel in row-major order.
Channels widen to 8 bits by bit replication so that pure black and pure
white survive the round trip exactly.
*/
package image

const (
	// Width and Height are the fixed cover geometry.
	Width  = 100
	Height = Width

	pixelBytes = 2
	numPixels  = Width * Height

	// Size is the exact byte length of an encoded cover image.
	Size = numPixels * pixelBytes
)

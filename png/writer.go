/*
Package png implements a minimal PNG encoder for 8-bit truecolor images.

The output is a conformant PNG consisting of the signature, an IHDR chunk
declaring an 8-bit depth RGB image with no interlacing, a single IDAT chunk
holding every scanline prefixed with filter type 0 and compressed as one
zlib stream, and an IEND chunk. Palettes, transparency, interlacing and
ancillary chunks are not supported.
*/
package png

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"io"

	"github.com/klauspost/compress/zlib"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	bitDepth      = 8
	colorRGB      = 2 // truecolor, no palette, no alpha
	bytesPerPixel = 3
)

type encoder struct {
	w io.Writer
}

// chunk writes one PNG chunk: big-endian payload length, 4-byte type tag,
// payload and a big-endian CRC-32 over the tag and payload.
func (e *encoder) chunk(tag string, payload []byte) error {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))

	if _, err := e.w.Write(length[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, tag); err != nil {
		return err
	}
	if _, err := e.w.Write(payload); err != nil {
		return err
	}

	crc := crc32.Update(crc32.Checksum([]byte(tag), crc32.IEEETable), crc32.IEEETable, payload)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc)

	_, err := e.w.Write(sum[:])
	return err
}

func (e *encoder) header(b image.Rectangle) error {
	var payload [13]byte
	binary.BigEndian.PutUint32(payload[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(payload[4:8], uint32(b.Dy()))
	payload[8] = bitDepth
	payload[9] = colorRGB
	// compression method, filter method and interlace method are all zero

	return e.chunk("IHDR", payload[:])
}

func (e *encoder) data(m image.Image) error {
	b := m.Bounds()

	// Each scanline is a filter type byte of 0 followed by the raw RGB
	// bytes for the row; the concatenation compresses as one zlib stream.
	raw := make([]byte, 0, (1+b.Dx()*bytesPerPixel)*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		raw = append(raw, 0)
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			raw = append(raw, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(raw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	return e.chunk("IDAT", buf.Bytes())
}

// Encode writes the Image m to w in PNG format.
func Encode(w io.Writer, m image.Image) error {
	e := encoder{w: w}

	if _, err := e.w.Write(signature); err != nil {
		return err
	}

	if err := e.header(m.Bounds()); err != nil {
		return err
	}

	if err := e.data(m); err != nil {
		return err
	}

	return e.chunk("IEND", nil)
}

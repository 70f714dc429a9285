package image

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("cover: not enough image data")
	errTooMuch   = errors.New("cover: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// expand5 and expand6 widen a channel by placing the original bits at the
// top of the byte and replicating their most significant bits into the
// newly opened low bits.
func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

func expand6(v uint8) uint8 {
	return v<<2 | v>>4
}

// expand565 converts one packed RGB565 value into a fully opaque 24-bit
// color. The packed value carries red in the top five bits, green in the
// middle six and blue in the bottom five.
func expand565(p uint16) color.RGBA {
	return color.RGBA{
		expand5(uint8(p >> 11 & 0x1f)),
		expand6(uint8(p >> 5 & 0x3f)),
		expand5(uint8(p & 0x1f)),
		0xff,
	}
}

type decoder struct {
	r io.Reader

	image *image.RGBA

	tmp [Size]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.image = image.NewRGBA(image.Rect(0, 0, Width, Height))

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			i := (y*Width + x) * pixelBytes
			p := uint16(d.tmp[i]) | uint16(d.tmp[i+1])<<8

			d.image.SetRGBA(x, y, expand565(p))
		}
	}

	return nil
}

// Decode reads an FM9 cover from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of an FM9 cover
// without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      Width,
		Height:     Height,
	}, nil
}

package fm9

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

var (
	// ErrNotCompressed is returned when the input does not start with the
	// gzip magic signature and therefore cannot be an FM9 container.
	ErrNotCompressed = errors.New("fm9: input is not gzip compressed")
)

// decompressMember inflates the single gzip member at the start of data and
// returns the decompressed payload along with the number of input bytes the
// member occupied. Any bytes after the member are left untouched; the caller
// slices them out of data using the returned count.
func decompressMember(data []byte) ([]byte, int, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return nil, 0, ErrNotCompressed
	}

	// bytes.Reader is an io.ByteReader so the decompressor reads exactly
	// one member's worth of bytes, leaving r positioned at the first
	// trailing byte.
	r := bytes.NewReader(data)

	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("fm9: decompress: %w", err)
	}
	zr.Multistream(false)

	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, 0, fmt.Errorf("fm9: decompress: %w", err)
	}

	if err := zr.Close(); err != nil {
		return nil, 0, fmt.Errorf("fm9: decompress: %w", err)
	}

	return body, len(data) - r.Len(), nil
}

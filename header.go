package fm9

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Magic is the marker locating the FM9 header inside the decompressed
// payload.
const Magic = "FM90"

// headerSize is the fixed encoded size of a Header.
const headerSize = 24

// Flag bits carried in Header.Flags.
const (
	FlagAudio byte = 1 << iota
	FlagMetadata
	FlagImage
)

// Values carried in Header.AudioFormat. Anything nonzero other than WAV is
// treated as MP3.
const (
	AudioNone uint8 = iota
	AudioWAV
	AudioMP3
)

// ErrMetadataOutOfRange is returned when the header declares effects bounds
// outside the decompressed payload.
var ErrMetadataOutOfRange = errors.New("fm9: metadata bounds outside decompressed payload")

// Header is the 24-byte FM9 extension header found after the VGM stream in
// the decompressed payload. All multi-byte fields are little-endian.
type Header struct {
	Magic        [4]byte
	Version      uint8
	Flags        uint8
	AudioFormat  uint8
	SourceFormat uint8

	// AudioOffset is decoded but never used for placement; the audio clip
	// always starts where the gzip member ends in the original input. The
	// writer stores zero here.
	AudioOffset uint32

	AudioSize uint32

	// MetadataOffset is relative to the start of the header, not to the
	// start of the decompressed payload.
	MetadataOffset uint32
	MetadataSize   uint32
}

// Body is the decompressed payload split around the optional FM9 header. A
// nil Header means no usable header was found and Music holds the entire
// payload; a header present with zero-length sections is a different state
// from no header at all.
type Body struct {
	Music    []byte
	Header   *Header
	Metadata []byte
}

// splitBody locates the FM9 header in the decompressed payload and splits
// the payload into its sections. A missing marker, or a marker with fewer
// than 24 bytes remaining, yields a Body with a nil Header and the bytes
// before the marker (or the whole payload) as Music.
//
// When truncate is false, effects bounds extending past the payload fail
// with ErrMetadataOutOfRange; when true they are silently clamped, matching
// the original extractor.
func splitBody(payload []byte, truncate bool) (Body, error) {
	pos := bytes.Index(payload, []byte(Magic))
	if pos == -1 {
		return Body{Music: payload}, nil
	}

	body := Body{Music: payload[:pos]}

	if len(payload)-pos < headerSize {
		return body, nil
	}

	header := new(Header)
	if err := binary.Read(bytes.NewReader(payload[pos:pos+headerSize]), binary.LittleEndian, header); err != nil {
		return Body{}, err
	}
	body.Header = header

	if header.Flags&FlagMetadata == 0 || header.MetadataSize == 0 {
		return body, nil
	}

	b, ok := metadataRegion(header, pos).cut(payload, nil)
	if !ok && !truncate {
		return Body{}, ErrMetadataOutOfRange
	}
	body.Metadata = b

	return body, nil
}

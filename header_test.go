package fm9

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeHeader(t *testing.T, h Header) []byte {
	t.Helper()

	h.Magic = [4]byte{'F', 'M', '9', '0'}

	b := new(bytes.Buffer)
	require.NoError(t, binary.Write(b, binary.LittleEndian, &h))

	return b.Bytes()
}

func TestSplitBodyNoMarker(t *testing.T) {
	t.Parallel()

	payload := []byte("Vgm \x00\x01\x02\x03 just a music stream")

	body, err := splitBody(payload, false)
	require.NoError(t, err)

	assert.Nil(t, body.Header)
	assert.Equal(t, payload, body.Music)
	assert.Nil(t, body.Metadata)
}

func TestSplitBodyShortHeader(t *testing.T) {
	t.Parallel()

	// Marker present but fewer than 24 bytes remain; the bytes before the
	// marker are still the music stream.
	payload := append([]byte("music"), []byte("FM90\x01\x02")...)

	body, err := splitBody(payload, false)
	require.NoError(t, err)

	assert.Nil(t, body.Header)
	assert.Equal(t, []byte("music"), body.Music)
}

func TestSplitBody(t *testing.T) {
	t.Parallel()

	metadata := []byte(`{"reverb":0.5}`)

	payload := []byte("music bytes")
	pos := len(payload)
	payload = append(payload, encodeHeader(t, Header{
		Version:        1,
		Flags:          FlagMetadata,
		MetadataOffset: headerSize,
		MetadataSize:   uint32(len(metadata)),
	})...)
	payload = append(payload, metadata...)

	body, err := splitBody(payload, false)
	require.NoError(t, err)

	require.NotNil(t, body.Header)
	assert.Equal(t, []byte("music bytes"), body.Music)
	assert.Equal(t, uint8(1), body.Header.Version)
	assert.Equal(t, metadata, body.Metadata)

	// The sections reconstruct a contiguous prefix of the payload.
	prefix := append(append(append([]byte{}, body.Music...), payload[pos:pos+headerSize]...), body.Metadata...)
	assert.Equal(t, payload[:pos+headerSize+len(metadata)], prefix)
}

func TestSplitBodyZeroSizeMetadata(t *testing.T) {
	t.Parallel()

	// The flag alone is not enough; a zero size suppresses the section.
	payload := encodeHeader(t, Header{
		Version:        1,
		Flags:          FlagMetadata,
		MetadataOffset: headerSize,
	})

	body, err := splitBody(payload, false)
	require.NoError(t, err)

	require.NotNil(t, body.Header)
	assert.Empty(t, body.Music)
	assert.Nil(t, body.Metadata)
}

func TestSplitBodyMetadataFlagClear(t *testing.T) {
	t.Parallel()

	payload := encodeHeader(t, Header{
		Version:        1,
		MetadataOffset: headerSize,
		MetadataSize:   100,
	})

	body, err := splitBody(payload, false)
	require.NoError(t, err)

	require.NotNil(t, body.Header)
	assert.Nil(t, body.Metadata)
}

func TestSplitBodyMetadataOutOfRange(t *testing.T) {
	t.Parallel()

	payload := append(encodeHeader(t, Header{
		Version:        1,
		Flags:          FlagMetadata,
		MetadataOffset: headerSize,
		MetadataSize:   100,
	}), []byte("short")...)

	_, err := splitBody(payload, false)
	assert.ErrorIs(t, err, ErrMetadataOutOfRange)

	// The lenient mode clamps to whatever is available.
	body, err := splitBody(payload, true)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), body.Metadata)
}

func TestSourceFormatName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", SourceFormatName(0))
	assert.Equal(t, "VGM (Video Game Music)", SourceFormatName(0x01))
	assert.Equal(t, "MOD (ProTracker)", SourceFormatName(0x60))
	assert.Equal(t, "unknown (0xfe)", SourceFormatName(0xfe))
}

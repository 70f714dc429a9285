/*
Package fm9 is a library for extracting the components bundled in an FM9
container.

An FM9 file is a gzip-compressed VGM stream optionally followed, inside the
same compressed stream, by a small binary header and an effects JSON blob,
and followed outside the compressed stream by a raw audio clip and a raw
100 by 100 pixel RGB565 cover image.
*/
package fm9

import "log"

type FM9 struct {
	// truncateMetadata selects the legacy behaviour of silently clamping
	// out-of-range effects bounds to the available payload instead of
	// failing.
	truncateMetadata bool
	logger           *log.Logger
}

func New(logger *log.Logger) *FM9 {
	return &FM9{
		logger: logger,
	}
}

// TruncateMetadata switches between failing on out-of-range effects bounds
// (the default) and clamping them to the available payload.
func (m *FM9) TruncateMetadata(truncate bool) {
	m.truncateMetadata = truncate
}

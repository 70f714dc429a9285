package fm9

// The container addresses bytes in two separate spaces: offsets inside the
// decompressed payload and offsets inside the raw bytes trailing the gzip
// member. Each extracted section is described as a region carrying its
// origin so the arithmetic lives in one place instead of at every call
// site.

type origin int

const (
	originBody origin = iota
	originTrailer
)

type region struct {
	origin origin
	offset int
	length int
}

// cut returns the region's bytes out of the address space it belongs to. ok
// is false when the region extends past the available data, in which case
// whatever prefix is available is still returned so callers can choose
// between truncating and failing.
func (r region) cut(body, trailer []byte) (b []byte, ok bool) {
	src := body
	if r.origin == originTrailer {
		src = trailer
	}

	if r.offset < 0 || r.length < 0 || r.offset > len(src) {
		return nil, false
	}

	if end := r.offset + r.length; end <= len(src) {
		return src[r.offset:end], true
	}

	return src[r.offset:], false
}

// metadataRegion addresses the effects blob relative to the header position
// inside the decompressed payload.
func metadataRegion(h *Header, headerPos int) region {
	return region{
		origin: originBody,
		offset: headerPos + int(h.MetadataOffset),
		length: int(h.MetadataSize),
	}
}

// audioRegion addresses the audio clip at the start of the trailing bytes.
// Header.AudioOffset is deliberately not consulted; audio placement is
// derived solely from where the gzip member ends.
func audioRegion(h *Header) region {
	return region{
		origin: originTrailer,
		offset: 0,
		length: int(h.AudioSize),
	}
}

// imageRegion addresses the cover image immediately after the audio clip in
// the trailing bytes. imageSize is the fixed encoded size of the cover.
func imageRegion(h *Header, imageSize int) region {
	return region{
		origin: originTrailer,
		offset: int(h.AudioSize),
		length: imageSize,
	}
}

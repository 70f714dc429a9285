package fm9

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	cover "github.com/bodgit/fm9/image"
	"github.com/bodgit/fm9/png"
)

// Parse reads the container at path and returns the split decompressed
// payload together with the number of input bytes the gzip member occupied.
func (m *FM9) Parse(path string) (Body, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Body{}, 0, err
	}

	payload, consumed, err := decompressMember(data)
	if err != nil {
		return Body{}, 0, err
	}

	body, err := splitBody(payload, m.truncateMetadata)
	if err != nil {
		return Body{}, 0, err
	}

	return body, consumed, nil
}

// Extract reads the FM9 container at path and writes its components to dir,
// which is created if missing; an empty dir means alongside the input. It
// returns the paths written.
//
// The VGM stream is always written. Each optional section is gated by its
// own flag and size so a failing section never blocks the others; any such
// failures are accumulated and returned together. A truncated cover image
// is logged and skipped rather than written short.
func (m *FM9) Extract(path, dir string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	payload, consumed, err := decompressMember(data)
	if err != nil {
		return nil, err
	}
	trailer := data[consumed:]

	body, err := splitBody(payload, m.truncateMetadata)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var written []string

	write := func(name string, b []byte) error {
		out := filepath.Join(dir, name)
		if err := os.WriteFile(out, b, 0644); err != nil {
			return err
		}
		written = append(written, out)
		m.logger.Printf("%s (%d bytes)", out, len(b))
		return nil
	}

	// The VGM stream is written whether or not a header was found.
	if err := write(base+".vgm", body.Music); err != nil {
		return written, err
	}

	h := body.Header
	if h == nil {
		m.logger.Printf("no FM9 extension found, plain VGZ file")
		return written, nil
	}

	m.logger.Printf("FM9 version %d, flags %#02x", h.Version, h.Flags)
	if name := SourceFormatName(h.SourceFormat); name != "" {
		m.logger.Printf("source format: %s", name)
	}

	var errs error

	if len(body.Metadata) > 0 {
		if err := write(base+"_fx.json", body.Metadata); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if h.Flags&FlagAudio != 0 && h.AudioSize > 0 && h.AudioFormat != AudioNone {
		b, ok := audioRegion(h).cut(payload, trailer)
		if !ok {
			m.logger.Printf("warning: audio data truncated (%d bytes, expected %d)", len(b), h.AudioSize)
		}

		ext := ".mp3"
		if h.AudioFormat == AudioWAV {
			ext = ".wav"
		}

		if err := write(base+"_audio"+ext, b); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if h.Flags&FlagImage != 0 {
		if b, ok := imageRegion(h, cover.Size).cut(payload, trailer); !ok {
			m.logger.Printf("warning: image data truncated (%d bytes, expected %d), skipping", len(b), cover.Size)
		} else {
			out := filepath.Join(dir, base+"_cover.png")
			if err := writeCover(out, b); err != nil {
				errs = multierror.Append(errs, err)
			} else {
				written = append(written, out)
				m.logger.Printf("%s (%d bytes RGB565 to PNG)", out, len(b))
			}
		}
	}

	return written, errs
}

func writeCover(path string, b []byte) error {
	img, err := cover.Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

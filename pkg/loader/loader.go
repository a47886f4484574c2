// Package loader dispatches image streams to a registered decoder, picked by
// filename extension or by content sniffing, and caches decoded bitmaps.
package loader

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/texel/pkg/bitmap"
)

// ErrNoDecoder is returned when no registered decoder recognizes a stream.
var ErrNoDecoder = errors.New("no decoder recognized the image")

// Decoder is one interchangeable image decoder behind the registry.
type Decoder interface {
	// Name identifies the decoder in diagnostics.
	Name() string
	// MatchesExtension reports whether the decoder claims the filename,
	// without I/O.
	MatchesExtension(name string) bool
	// MatchesContent reports whether the stream content looks like the
	// decoder's format. It may reposition the read cursor.
	MatchesContent(r io.ReadSeeker) bool
	// Decode reads one image from the start position of the stream.
	Decode(r io.ReadSeeker) (*bitmap.Bitmap, error)
}

// Registry holds the registered decoders in registration order.
type Registry struct {
	decoders []Decoder
	log      *zap.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger for dispatch and decode diagnostics.
func WithLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty decoder registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{log: zap.NewNop()}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Register adds a decoder. Decoders registered earlier win ties.
func (reg *Registry) Register(d Decoder) {
	reg.decoders = append(reg.decoders, d)
}

// Decode finds a decoder for the named stream and decodes it. Decoders
// claiming the filename extension are tried first, then every decoder gets a
// content-sniffing pass; the stream is rewound between attempts. Failures
// are logged with the file name and the originating condition; the caller
// gets a nil bitmap with the last error, or ErrNoDecoder when nothing
// matched.
func (reg *Registry) Decode(name string, r io.ReadSeeker) (*bitmap.Bitmap, error) {
	var lastErr error

	for _, d := range reg.decoders {
		if !d.MatchesExtension(name) {
			continue
		}
		bmp, err := reg.tryDecode(d, name, r)
		if err == nil {
			return bmp, nil
		}
		lastErr = err
	}

	for _, d := range reg.decoders {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding %s: %w", name, err)
		}
		if !d.MatchesContent(r) {
			continue
		}
		bmp, err := reg.tryDecode(d, name, r)
		if err == nil {
			return bmp, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	reg.log.Error("no decoder recognized the image", zap.String("file", name))
	return nil, fmt.Errorf("%w: %s", ErrNoDecoder, name)
}

func (reg *Registry) tryDecode(d Decoder, name string, r io.ReadSeeker) (*bitmap.Bitmap, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", name, err)
	}
	bmp, err := d.Decode(r)
	if err != nil {
		reg.log.Error("decoding image failed",
			zap.String("file", name),
			zap.String("decoder", d.Name()),
			zap.Error(err))
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return bmp, nil
}

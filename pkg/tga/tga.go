// Package tga decodes Truevision TGA (TARGA) images into canonical bitmaps.
// It supports uncompressed color-mapped, RGB and greyscale images (types 1,
// 2, 3) and run-length encoded RGB images (type 10) at 8, 16, 24 and 32 bits
// per pixel.
package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// TGA format errors.
var (
	ErrNotTarga              = errors.New("not a TGA file")
	ErrTruncatedData         = errors.New("truncated TGA data")
	ErrDimensionsTooLarge    = errors.New("TGA image dimensions too large")
	ErrUnsupportedImageType  = errors.New("unsupported TGA image type")
	ErrUnsupportedPixelDepth = errors.New("unsupported TGA pixel depth")
)

const (
	headerSize = 18
	footerSize = 26

	// signature is the trailer string that identifies TGA 2.0 files. The
	// on-disk field is 18 bytes: these 17 characters plus a terminating NUL.
	signature = "TRUEVISION-XFILE."

	// descriptorTopOrigin is the descriptor bit that marks row 0 as the top
	// row. Files without it store rows bottom-up.
	descriptorTopOrigin = 0x20
)

// Image type codes from the TGA specification.
const (
	TypeUncompressedIndexed = 1
	TypeUncompressedRGB     = 2
	TypeUncompressedGrey    = 3
	TypeRLERGB              = 10
)

// DefaultMaxDimension is the default ceiling on image width and height.
// It keeps width*height*4 within a signed 32-bit range, rejecting
// pathological allocation requests from hostile or corrupt headers.
const DefaultMaxDimension = 23170

// Header is the fixed 18-byte TGA file header. All multi-byte fields are
// little-endian on disk regardless of host.
type Header struct {
	IDLength          uint8
	ColorMapType      uint8
	ImageType         uint8
	ColorMapOrigin    uint16
	ColorMapLength    uint16
	ColorMapEntrySize uint8
	XOrigin           uint16
	YOrigin           uint16
	Width             uint16
	Height            uint16
	PixelDepth        uint8
	Descriptor        uint8
}

// BytesPerPixel returns the storage size of one packed source pixel.
func (h *Header) BytesPerPixel() int {
	return int(h.PixelDepth) / 8
}

// BottomUp reports whether pixel rows are stored bottom-up (descriptor
// top-origin bit clear).
func (h *Header) BottomUp() bool {
	return h.Descriptor&descriptorTopOrigin == 0
}

// ReadHeader decodes the fixed header record from the current stream
// position. Multi-byte fields are assembled little-endian unconditionally;
// there is no host-endianness dependent path.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("%w: reading header: %v", ErrTruncatedData, err)
	}
	return h, nil
}

// Decoder decodes TGA streams. The zero value is not usable; construct one
// with NewDecoder.
type Decoder struct {
	log          *zap.Logger
	maxDimension int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for decode diagnostics. The default
// discards them.
func WithLogger(log *zap.Logger) Option {
	return func(d *Decoder) {
		if log != nil {
			d.log = log
		}
	}
}

// WithMaxDimension overrides the ceiling on image width and height.
func WithMaxDimension(max int) Option {
	return func(d *Decoder) {
		if max > 0 {
			d.maxDimension = max
		}
	}
}

// NewDecoder creates a TGA decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		log:          zap.NewNop(),
		maxDimension: DefaultMaxDimension,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name identifies the decoder to the loader registry.
func (d *Decoder) Name() string {
	return "tga"
}

// Package asset provides an in-memory stand-in for the host runtime's
// texture store. Bitmaps are uploaded as resources and read back later; the
// transform packages never touch resources directly.
package asset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
)

// ErrInvalidResource is returned when a handle is stale or the resource
// holds no mip data.
var ErrInvalidResource = errors.New("asset: invalid resource")

// Handle identifies a resource owned by a Host. The zero Handle is never
// valid.
type Handle struct {
	id uint64
}

// resource is the stored texture: top-level mip only, BGRA byte order as the
// host runtime lays it out, bulk data zstd-compressed when the compression
// setting is on.
type resource struct {
	width      int
	height     int
	srgb       bool
	compressed bool
	mip        []byte
}

// Host owns resources keyed by handle. Safe for concurrent use.
type Host struct {
	mu   sync.Mutex
	next uint64
	res  map[uint64]*resource

	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewHost returns an empty Host.
func NewHost() (*Host, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	return &Host{next: 1, res: make(map[uint64]*resource), enc: enc, dec: dec}, nil
}

// BufferToResource uploads a bitmap and returns a handle to the stored
// resource.
func (h *Host) BufferToResource(b bitmap.Bitmap) (Handle, error) {
	if b.Empty() {
		return Handle{}, fmt.Errorf("%w: empty buffer", ErrInvalidResource)
	}

	raw := make([]byte, len(b.Pix)*4)
	for i, p := range b.Pix {
		raw[i*4+0] = p.B
		raw[i*4+1] = p.G
		raw[i*4+2] = p.R
		raw[i*4+3] = p.A
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	h.res[id] = &resource{
		width:      b.Width,
		height:     b.Height,
		srgb:       true,
		compressed: true,
		mip:        h.enc.EncodeAll(raw, nil),
	}
	return Handle{id: id}, nil
}

// ResourceToBuffer reads a resource back into a bitmap. The resource's
// compression and sRGB settings are switched off for the readback and
// restored afterwards, mirroring how the host runtime unlocks bulk data.
func (h *Host) ResourceToBuffer(hd Handle) (bitmap.Bitmap, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.res[hd.id]
	if !ok {
		return bitmap.Bitmap{}, fmt.Errorf("%w: stale handle %d", ErrInvalidResource, hd.id)
	}
	if len(r.mip) == 0 {
		return bitmap.Bitmap{}, fmt.Errorf("%w: resource %d has no mip data", ErrInvalidResource, hd.id)
	}

	oldCompressed, oldSRGB := r.compressed, r.srgb
	r.compressed, r.srgb = false, false

	raw := r.mip
	if oldCompressed {
		var err error
		raw, err = h.dec.DecodeAll(r.mip, nil)
		if err != nil {
			r.compressed, r.srgb = oldCompressed, oldSRGB
			return bitmap.Bitmap{}, fmt.Errorf("%w: resource %d: %v", ErrInvalidResource, hd.id, err)
		}
	}

	r.compressed, r.srgb = oldCompressed, oldSRGB

	if len(raw) != r.width*r.height*4 {
		return bitmap.Bitmap{}, fmt.Errorf("%w: resource %d mip size %d for %dx%d",
			ErrInvalidResource, hd.id, len(raw), r.width, r.height)
	}

	pix := make([]bitmap.Pixel, r.width*r.height)
	for i := range pix {
		// Stored channel order is BGRA; swap back on the way out.
		pix[i] = bitmap.Pixel{
			B: raw[i*4+0],
			G: raw[i*4+1],
			R: raw[i*4+2],
			A: raw[i*4+3],
		}
	}
	return bitmap.Bitmap{Width: r.width, Height: r.height, Pix: pix}, nil
}

// Release drops the resource for a handle. Releasing an unknown handle is a
// no-op.
func (h *Host) Release(hd Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.res, hd.id)
}

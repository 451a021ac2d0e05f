// Package icon converts platform icon resources into a canonical
// premultiplied BGRA8 pixel buffer usable by any UI layer.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Format tag carried by every converted image.
const FormatBGRA8Premultiplied = "bgra8-premul"

// bytesPerPixel of the canonical format.
const bytesPerPixel = 4

// Conversion failure modes. Each step of the converter surfaces its own
// variant so diagnostics can tell a dead handle from a truncated buffer.
var (
	ErrHandleInvalid       = errors.New("icon handle invalid")
	ErrMetadataUnavailable = errors.New("icon bitmap metadata unavailable")
	ErrSizeMismatch        = errors.New("icon pixel buffer size mismatch")
	ErrNoPixelData         = errors.New("icon bitmap has no pixel data")
	ErrConversionFailed    = errors.New("icon pixel format conversion failed")
)

// Image is a decoded icon. Pix is always Width*Height*4 bytes of
// premultiplied BGRA; construction fails closed rather than producing a
// truncated buffer.
type Image struct {
	Width  int
	Height int
	Format string
	Pix    []byte
}

// New validates and wraps a raw premultiplied BGRA buffer.
func New(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrConversionFailed, width, height)
	}
	if len(pix) != width*height*bytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrSizeMismatch, len(pix), width*height*bytesPerPixel)
	}
	return &Image{
		Width:  width,
		Height: height,
		Format: FormatBGRA8Premultiplied,
		Pix:    pix,
	}, nil
}

// FromImage converts any image.Image into the canonical format. Drawing
// into an RGBA buffer premultiplies the alpha; the channels are then
// reordered to BGRA.
func FromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrConversionFailed, bounds)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pix := make([]byte, len(rgba.Pix))
	copy(pix, rgba.Pix)
	swapRedBlue(pix)

	return New(w, h, pix)
}

// FromBGRA wraps a raw straight-alpha BGRA buffer, premultiplying it into
// the canonical format.
func FromBGRA(width, height int, pix []byte) (*Image, error) {
	if len(pix) != width*height*bytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrSizeMismatch, len(pix), width*height*bytesPerPixel)
	}
	out := make([]byte, len(pix))
	copy(out, pix)
	premultiplyBGRA(out)
	return New(width, height, out)
}

// swapRedBlue converts RGBA byte order to BGRA in place.
func swapRedBlue(pix []byte) {
	for i := 0; i+bytesPerPixel <= len(pix); i += bytesPerPixel {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// premultiplyBGRA scales each color channel by its alpha in place.
func premultiplyBGRA(pix []byte) {
	for i := 0; i+bytesPerPixel <= len(pix); i += bytesPerPixel {
		a := uint16(pix[i+3])
		if a == 0xFF {
			continue
		}
		pix[i+0] = byte(uint16(pix[i+0]) * a / 0xFF)
		pix[i+1] = byte(uint16(pix[i+1]) * a / 0xFF)
		pix[i+2] = byte(uint16(pix[i+2]) * a / 0xFF)
	}
}

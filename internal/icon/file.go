package icon

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF format
	_ "image/jpeg" // register JPEG format
	_ "image/png"  // register PNG format
	"path/filepath"
	"strings"

	"github.com/jackmordaunt/icns/v3"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/spf13/afero"
	xdraw "golang.org/x/image/draw"
)

// ResolveFile decodes the icon file at path and scales it to a size×size
// canonical image. Supported containers: icns, ico, plus every registered
// image format.
func ResolveFile(fs afero.Fs, path string, size int) (*Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".icns":
		img, err = icns.Decode(f)
	case ".ico":
		img, err = ico.Decode(f)
	default:
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrConversionFailed, path, err)
	}

	if size > 0 {
		img = scaleSquare(img, size)
	}

	return FromImage(img)
}

// scaleSquare resamples img onto a size×size canvas. Square sources keep
// their aspect ratio trivially; non-square ones are fit by their larger
// dimension, centered.
func scaleSquare(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	target := dst.Bounds()

	if bounds.Dx() != bounds.Dy() {
		w, h := bounds.Dx(), bounds.Dy()
		if w > h {
			scaled := h * size / w
			top := (size - scaled) / 2
			target = image.Rect(0, top, size, top+scaled)
		} else {
			scaled := w * size / h
			left := (size - scaled) / 2
			target = image.Rect(left, 0, left+scaled, size)
		}
	}

	xdraw.ApproxBiLinear.Scale(dst, target, img, bounds, xdraw.Src, nil)
	return dst
}

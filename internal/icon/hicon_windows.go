//go:build windows

package icon

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetIconInfo   = user32.NewProc("GetIconInfo")
	procGetObjectW    = gdi32.NewProc("GetObjectW")
	procGetBitmapBits = gdi32.NewProc("GetBitmapBits")
	procDeleteObject  = gdi32.NewProc("DeleteObject")
)

// iconInfo mirrors the winuser ICONINFO structure.
type iconInfo struct {
	fIcon    int32
	xHotspot uint32
	yHotspot uint32
	hbmMask  windows.Handle
	hbmColor windows.Handle
}

// gdiBitmap mirrors the wingdi BITMAP structure.
type gdiBitmap struct {
	bmType       int32
	bmWidth      int32
	bmHeight     int32
	bmWidthBytes int32
	bmPlanes     uint16
	bmBitsPixel  uint16
	bmBits       uintptr
}

// bitmapInfoHeader mirrors the wingdi BITMAPINFOHEADER structure.
type bitmapInfoHeader struct {
	biSize          uint32
	biWidth         int32
	biHeight        int32
	biPlanes        uint16
	biBitCount      uint16
	biCompression   uint32
	biSizeImage     uint32
	biXPelsPerMeter int32
	biYPelsPerMeter int32
	biClrUsed       uint32
	biClrImportant  uint32
}

// dibSection mirrors the wingdi DIBSECTION structure.
type dibSection struct {
	dsBm        gdiBitmap
	dsBmih      bitmapInfoHeader
	dsBitfields [3]uint32
	dshSection  windows.Handle
	dsOffset    uint32
}

// FromHIcon decodes a native HICON's color bitmap into the canonical
// premultiplied BGRA8 image. The icon's color and mask bitmaps are
// released on every exit path.
func FromHIcon(hicon windows.Handle) (*Image, error) {
	var info iconInfo
	ret, _, _ := procGetIconInfo.Call(uintptr(hicon), uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return nil, fmt.Errorf("%w: GetIconInfo failed for handle %#x", ErrHandleInvalid, hicon)
	}

	guard := newReleaseGuard(func() {
		procDeleteObject.Call(uintptr(info.hbmColor))
		procDeleteObject.Call(uintptr(info.hbmMask))
	})
	defer guard.Release()

	var dib dibSection
	read, _, _ := procGetObjectW.Call(
		uintptr(info.hbmColor),
		unsafe.Sizeof(dib),
		uintptr(unsafe.Pointer(&dib)),
	)

	layout, err := classifyLayout(read, unsafe.Sizeof(dib.dsBm), unsafe.Sizeof(dib))
	if err != nil {
		return nil, err
	}

	bm := dib.dsBm
	if bm.bmBitsPixel != 8*bytesPerPixel {
		return nil, fmt.Errorf("%w: %d bits per pixel, want 32", ErrConversionFailed, bm.bmBitsPixel)
	}

	width := int(bm.bmWidth)
	height := int(bm.bmHeight)
	if height < 0 {
		// Top-down DIBs report a negative height.
		height = -height
	}
	wantBytes := width * height * bytesPerPixel

	var pix []byte
	switch layout {
	case layoutDevice:
		// Device-dependent bitmaps need an explicit pixel transfer.
		pix = make([]byte, wantBytes)
		copied, _, _ := procGetBitmapBits.Call(
			uintptr(info.hbmColor),
			uintptr(wantBytes),
			uintptr(unsafe.Pointer(&pix[0])),
		)
		if copied == 0 {
			return nil, fmt.Errorf("%w: GetBitmapBits copied nothing", ErrNoPixelData)
		}
		if int(copied) != wantBytes {
			return nil, fmt.Errorf("%w: transferred %d bytes, want %d", ErrSizeMismatch, copied, wantBytes)
		}
	case layoutSection:
		// DIB sections expose their pixel bytes directly.
		if bm.bmBits == 0 {
			return nil, fmt.Errorf("%w: DIB section bits pointer is nil", ErrNoPixelData)
		}
		src := unsafe.Slice((*byte)(unsafe.Pointer(bm.bmBits)), wantBytes)
		pix = make([]byte, wantBytes)
		copy(pix, src)
	default:
		return nil, fmt.Errorf("%w: layout %s", ErrMetadataUnavailable, layout)
	}

	// GDI hands out straight-alpha BGRA; FromBGRA premultiplies.
	return FromBGRA(width, height, pix)
}

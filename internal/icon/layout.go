package icon

import "fmt"

// bitmapLayout distinguishes the two native in-memory layouts a color
// bitmap can report. The layout is resolved exactly once, after the
// metadata query, and selects the pixel-transfer path: device-dependent
// bitmaps need an explicit transfer call, DIB sections expose their bytes
// directly.
type bitmapLayout int

const (
	layoutUnknown bitmapLayout = iota
	layoutDevice
	layoutSection
)

func (l bitmapLayout) String() string {
	switch l {
	case layoutDevice:
		return "device-dependent"
	case layoutSection:
		return "dib-section"
	default:
		return "unknown"
	}
}

// classifyLayout maps the byte count returned by the metadata query onto a
// layout. The query fills either a BITMAP or a DIBSECTION structure; any
// other count means the metadata is unusable.
func classifyLayout(read, bitmapSize, sectionSize uintptr) (bitmapLayout, error) {
	switch read {
	case 0:
		return layoutUnknown, fmt.Errorf("%w: metadata query returned no data", ErrMetadataUnavailable)
	case bitmapSize:
		return layoutDevice, nil
	case sectionSize:
		return layoutSection, nil
	default:
		return layoutUnknown, fmt.Errorf("%w: unexpected metadata size %d", ErrMetadataUnavailable, read)
	}
}

// releaseGuard releases a native resource exactly once, on every exit
// path. Leaking a handle on an error return is a correctness bug.
type releaseGuard struct {
	release  func()
	released bool
}

func newReleaseGuard(release func()) *releaseGuard {
	return &releaseGuard{release: release}
}

func (g *releaseGuard) Release() {
	if g.released || g.release == nil {
		return
	}
	g.released = true
	g.release()
}

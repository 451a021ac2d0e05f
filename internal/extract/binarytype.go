package extract

import (
	"bytes"
	"encoding/binary"

	"github.com/quantmind-br/webpick/internal/core"
	"github.com/spf13/afero"
)

// Executable format magic numbers.
var (
	magicELF = []byte{0x7F, 'E', 'L', 'F'}
	magicPE  = []byte{'M', 'Z'}
)

const (
	machoMagic32   = 0xFEEDFACE
	machoMagic64   = 0xFEEDFACF
	machoCigam32   = 0xCEFAEDFE
	machoCigam64   = 0xCFFAEDFE
	machoFatMagic  = 0xCAFEBABE
	machoFatMagic2 = 0xCAFEBABF
)

// DetectBinaryType classifies an executable by its header magic. Unreadable
// or unrecognized files report BinaryNone; classification never fails a
// candidate.
func DetectBinaryType(fs afero.Fs, path string) core.BinaryType {
	f, err := fs.Open(path)
	if err != nil {
		return core.BinaryNone
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := f.Read(header)
	if err != nil || n < 4 {
		return core.BinaryNone
	}
	header = header[:n]

	if bytes.HasPrefix(header, magicELF) {
		return core.BinaryELF
	}
	if bytes.HasPrefix(header, magicPE) {
		return core.BinaryPE
	}

	// Mach-O magic is written in host byte order; the cigam constants
	// cover the byte-swapped files.
	switch binary.BigEndian.Uint32(header[:4]) {
	case machoFatMagic, machoFatMagic2:
		return core.BinaryMachOUniversal
	case machoMagic32, machoMagic64, machoCigam32, machoCigam64:
		return core.BinaryMachO
	}

	return core.BinaryNone
}

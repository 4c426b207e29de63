package cfb

import (
	"encoding/binary"
	"fmt"
)

// sectorBytes resolves length bytes starting at offset within regular
// sector n to a view into the image. Sector 0 begins one sector length
// after the start of the file, immediately past the header region, so the
// absolute position is sectorLen*(n+1)+offset.
func (f *CompoundFile) sectorBytes(n uint32, offset uint32, length uint32) ([]byte, error) {
	if offset >= f.sectorLen {
		return nil, fmt.Errorf("%w: offset %d is not within a %d-byte sector", ErrInvalidArgument, offset, f.sectorLen)
	}

	if n >= MAX_REGULAR_SECTOR {
		return nil, fmt.Errorf("%w: sector 0x%08X is not a regular sector", ErrInvalidArgument, n)
	}

	pos := uint64(f.sectorLen)*(uint64(n)+1) + uint64(offset)
	end := pos + uint64(length)
	if pos >= uint64(len(f.image)) || end > uint64(len(f.image)) {
		return nil, fmt.Errorf("%w: sector %d offset %d resolves past the image end", ErrOutOfBounds, n, offset)
	}

	return f.image[pos:end], nil
}

// sectorUint32 reads the little-endian 32-bit field at offset within
// sector n. Fields inside sectors carry no alignment guarantee, so the load
// always goes through the byte view.
func (f *CompoundFile) sectorUint32(n uint32, offset uint32) (uint32, error) {
	b, err := f.sectorBytes(n, offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

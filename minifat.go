package cfb

import "fmt"

// miniSectorBytes resolves length bytes starting at offset within mini
// sector m. Mini sectors are packed back to back in the root storage's
// mini stream, so the linear position m*64+offset is translated into a
// regular (sector, offset) pair by walking the mini stream's FAT chain.
func (f *CompoundFile) miniSectorBytes(m uint32, offset uint32, length uint32) ([]byte, error) {
	if offset >= f.miniSectorLen {
		return nil, fmt.Errorf("%w: offset %d is not within a %d-byte mini sector", ErrInvalidArgument, offset, f.miniSectorLen)
	}

	if m >= MAX_REGULAR_SECTOR {
		return nil, fmt.Errorf("%w: mini sector 0x%08X is not a regular mini sector", ErrInvalidArgument, m)
	}

	sector := f.miniStreamStart
	linear := uint64(m)*uint64(f.miniSectorLen) + uint64(offset)

	for linear >= uint64(f.sectorLen) {
		next, err := f.nextSector(sector)
		if err != nil {
			return nil, err
		}
		if next >= MAX_REGULAR_SECTOR {
			return nil, fmt.Errorf("%w: mini stream chain ends before mini sector %d", ErrCorruptChain, m)
		}
		sector = next
		linear -= uint64(f.sectorLen)
	}

	return f.sectorBytes(sector, uint32(linear), length)
}

// nextMiniSector returns the MiniFAT entry for mini sector m. The MiniFAT
// is itself a chain of regular sectors starting at the header's first
// MiniFAT sector location; reaching its END_OF_CHAIN while seeking the
// entry means the mini chain ends here. Any other sentinel on the way is a
// corrupt chain.
func (f *CompoundFile) nextMiniSector(m uint32) (uint32, error) {
	entriesPerSector := f.sectorLen / 4
	minifatSector := f.header.FirstMiniFATSectorLocation()

	for m >= entriesPerSector && minifatSector != END_OF_CHAIN {
		m -= entriesPerSector
		next, err := f.nextSector(minifatSector)
		if err != nil {
			return 0, err
		}
		if next != END_OF_CHAIN && next >= MAX_REGULAR_SECTOR {
			return 0, fmt.Errorf("%w: MiniFAT chain hops onto sector 0x%08X", ErrCorruptChain, next)
		}
		minifatSector = next
	}

	if minifatSector == END_OF_CHAIN {
		return END_OF_CHAIN, nil
	}

	return f.sectorUint32(minifatSector, m*4)
}

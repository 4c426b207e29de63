package cfb

// fatSectorNumber returns the image-sector number holding FAT entry block
// `block`. The first 109 blocks are located through the DIFAT array in the
// header; the rest through the DIFAT sector chain.
func (f *CompoundFile) fatSectorNumber(block uint32) (uint32, error) {
	if block < NUM_DIFAT_ENTRIES_IN_HEADER {
		return f.header.DIFAT(block), nil
	}

	// In each DIFAT sector the array occupies the entire sector minus the
	// trailing 4-byte "next DIFAT sector location" field.
	entriesPerSector := f.sectorLen/4 - 1
	block -= NUM_DIFAT_ENTRIES_IN_HEADER
	difatSector := f.header.FirstDIFATSectorLocation()

	for block >= entriesPerSector {
		block -= entriesPerSector
		next, err := f.sectorUint32(difatSector, f.sectorLen-4)
		if err != nil {
			return 0, err
		}
		difatSector = next
	}

	return f.sectorUint32(difatSector, block*4)
}

// nextSector returns the FAT entry for regular sector n, verbatim. The
// result may be any of the reserved sentinels; the caller decides which of
// them terminate its walk. The FAT is addressed as a logically flat table;
// physical fragmentation is resolved entirely by the DIFAT indirection.
func (f *CompoundFile) nextSector(n uint32) (uint32, error) {
	entriesPerSector := f.sectorLen / 4

	fatSector, err := f.fatSectorNumber(n / entriesPerSector)
	if err != nil {
		return 0, err
	}

	return f.sectorUint32(fatSector, (n%entriesPerSector)*4)
}

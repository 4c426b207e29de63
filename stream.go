package cfb

import "fmt"

// chain abstracts the two sector pools a stream can live in. ReadStream is
// the single copy algorithm; these are its only two implementations.
type chain interface {
	sectorLen() uint32
	bytes(sector uint32, length uint32) ([]byte, error)
	next(sector uint32) (uint32, error)
}

type regularChain struct {
	f *CompoundFile
}

func (c regularChain) sectorLen() uint32 { return c.f.sectorLen }

func (c regularChain) bytes(sector uint32, length uint32) ([]byte, error) {
	return c.f.sectorBytes(sector, 0, length)
}

func (c regularChain) next(sector uint32) (uint32, error) {
	return c.f.nextSector(sector)
}

type miniChain struct {
	f *CompoundFile
}

func (c miniChain) sectorLen() uint32 { return c.f.miniSectorLen }

func (c miniChain) bytes(sector uint32, length uint32) ([]byte, error) {
	return c.f.miniSectorBytes(sector, 0, length)
}

func (c miniChain) next(sector uint32) (uint32, error) {
	return c.f.nextMiniSector(sector)
}

// ReadStream materializes the stream described by entry into a new buffer
// of exactly entry.StreamSize() bytes. Streams strictly smaller than the
// header's mini stream cutoff live in the mini sector pool; all others in
// the regular pool. The stream size is authoritative: trailing bytes of the
// last sector are discarded, and a chain that ends before producing the
// full size fails with ErrCorruptChain.
func (f *CompoundFile) ReadStream(entry *DirEntry) ([]byte, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: entry is nil", ErrInvalidArgument)
	}

	size := entry.StreamSize()

	// No acyclic chain can produce more bytes than the image holds; reject
	// before allocating the output buffer.
	if size > uint64(len(f.image)) {
		return nil, fmt.Errorf("%w: stream size %d exceeds image length %d", ErrCorruptChain, size, len(f.image))
	}

	var c chain
	if size < uint64(f.header.MiniStreamCutoffSize()) {
		c = miniChain{f: f}
	} else {
		c = regularChain{f: f}
	}

	buffer := make([]byte, size)
	sector := entry.StartSectorLocation()
	position := uint64(0)

	for position < size {
		if sector >= MAX_REGULAR_SECTOR {
			return nil, fmt.Errorf("%w: chain ends after %d of %d bytes", ErrCorruptChain, position, size)
		}

		length := min(uint64(c.sectorLen()), size-position)
		source, err := c.bytes(sector, uint32(length))
		if err != nil {
			return nil, err
		}
		copy(buffer[position:], source)
		position += length

		if position == size {
			break
		}

		sector, err = c.next(sector)
		if err != nil {
			return nil, err
		}
	}

	return buffer, nil
}

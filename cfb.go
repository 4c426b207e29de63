// Package cfb reads the Microsoft Compound File Binary container format
// over an in-memory byte image. The reader borrows the image for its
// lifetime and never copies it; the only buffer it allocates is the output
// of ReadStream.
package cfb

import "fmt"

// CompoundFile is an in-memory CFB reader. The zero value is a cleared
// instance; call Read to bind it to an image. A CompoundFile never mutates
// the image or its own derived state after a successful Read, so read-only
// calls on the same instance are safe to run concurrently.
type CompoundFile struct {
	image  []byte
	header *Header

	sectorLen       uint32
	miniSectorLen   uint32
	miniStreamStart uint32
}

// Read validates image as a CFB container and borrows it. On any failure
// the instance is left cleared, so re-use with a different image is safe.
func (f *CompoundFile) Read(image []byte) error {
	f.Clear()

	if image == nil || uint32(len(image)) < HEADER_LEN {
		return fmt.Errorf("%w: image is nil or shorter than the %d-byte header", ErrInvalidArgument, HEADER_LEN)
	}

	header := &Header{b: image[:HEADER_LEN]}
	if err := header.validate(); err != nil {
		return err
	}

	f.image = image
	f.header = header
	f.sectorLen = 1 << header.SectorShift()
	f.miniSectorLen = 1 << header.MiniSectorShift()

	root, err := f.RootEntry()
	if err != nil {
		f.Clear()
		return err
	}

	if root.CreationTime() != 0 {
		f.Clear()
		return fmt.Errorf("%w: creation time of the root directory entry must be zero", ErrHeaderInvalid)
	}
	f.miniStreamStart = root.StartSectorLocation()

	return nil
}

// Clear drops the borrowed image. Idempotent.
func (f *CompoundFile) Clear() {
	*f = CompoundFile{}
}

// Header returns the validated header view, or nil before a successful
// Read.
func (f *CompoundFile) Header() *Header {
	return f.header
}

// ready reports whether the instance holds a validated image.
func (f *CompoundFile) ready() error {
	if f.header == nil {
		return fmt.Errorf("%w: no image has been read", ErrInvalidArgument)
	}
	return nil
}

package cfb

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Byte offsets of header fields, per the fixed 512-byte layout.
const (
	hdrOffMinorVersion     = 24
	hdrOffMajorVersion     = 26
	hdrOffByteOrder        = 28
	hdrOffSectorShift      = 30
	hdrOffMiniSectorShift  = 32
	hdrOffNumDirSectors    = 40
	hdrOffNumFatSectors    = 44
	hdrOffFirstDirSector   = 48
	hdrOffTransactionSign  = 52
	hdrOffMiniStreamCutoff = 56
	hdrOffFirstMinifat     = 60
	hdrOffNumMinifat       = 64
	hdrOffFirstDifat       = 68
	hdrOffNumDifat         = 72
	hdrOffDifatArray       = 76
)

// Header is a read-only view over the first 512 bytes of the image. All
// accessors decode little-endian fields in place; nothing is copied out of
// the borrowed image.
type Header struct {
	b []byte
}

func (h *Header) Signature() []byte { return h.b[:8] }

func (h *Header) MinorVersion() uint16 {
	return binary.LittleEndian.Uint16(h.b[hdrOffMinorVersion:])
}

func (h *Header) MajorVersion() uint16 {
	return binary.LittleEndian.Uint16(h.b[hdrOffMajorVersion:])
}

func (h *Header) ByteOrder() uint16 {
	return binary.LittleEndian.Uint16(h.b[hdrOffByteOrder:])
}

func (h *Header) SectorShift() uint16 {
	return binary.LittleEndian.Uint16(h.b[hdrOffSectorShift:])
}

func (h *Header) MiniSectorShift() uint16 {
	return binary.LittleEndian.Uint16(h.b[hdrOffMiniSectorShift:])
}

func (h *Header) NumDirectorySector() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffNumDirSectors:])
}

func (h *Header) NumFATSector() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffNumFatSectors:])
}

func (h *Header) FirstDirectorySectorLocation() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffFirstDirSector:])
}

func (h *Header) TransactionSignatureNumber() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffTransactionSign:])
}

func (h *Header) MiniStreamCutoffSize() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffMiniStreamCutoff:])
}

func (h *Header) FirstMiniFATSectorLocation() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffFirstMinifat:])
}

func (h *Header) NumMiniFATSector() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffNumMinifat:])
}

func (h *Header) FirstDIFATSectorLocation() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffFirstDifat:])
}

func (h *Header) NumDIFATSector() uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffNumDifat:])
}

// DIFAT returns entry i of the 109-entry DIFAT array embedded in the header.
func (h *Header) DIFAT(i uint32) uint32 {
	return binary.LittleEndian.Uint32(h.b[hdrOffDifatArray+4*i:])
}

func (h *Header) Version() Version {
	v, _ := VersionNumber(h.MajorVersion())
	return v
}

// validate checks the invariants that can be established from the header
// bytes alone. The root creation-time invariant needs the directory and is
// checked by CompoundFile.Read.
//
// 1. check signature
// 2. check minor version and major version with sector shift
// 3. check byte order
// 4. check mini sector shift
func (h *Header) validate() error {
	if !bytes.Equal(h.Signature(), MAGIC_NUMBER) {
		return fmt.Errorf("%w: bad signature", ErrHeaderInvalid)
	}

	if h.MinorVersion() != MINOR_VERSION {
		return fmt.Errorf("%w: minor version is not 0x%04X, found 0x%04X",
			ErrHeaderInvalid, MINOR_VERSION, h.MinorVersion())
	}

	version, err := VersionNumber(h.MajorVersion())
	if err != nil {
		return err
	}

	// Major version 3 pairs with sector shift 9 (512-byte sectors), major
	// version 4 with shift 12 (4096-byte sectors). The pairing is a
	// biconditional on each major version.
	if h.SectorShift() != version.SectorShift() {
		return fmt.Errorf("%w: incorrect sector shift for version %v (expected %v, found %v)",
			ErrHeaderInvalid, version, version.SectorShift(), h.SectorShift())
	}

	if h.ByteOrder() != BYTE_ORDER_MARK {
		return fmt.Errorf("%w: invalid byte order mark (expected 0x%04X, found 0x%04X)",
			ErrHeaderInvalid, BYTE_ORDER_MARK, h.ByteOrder())
	}

	if h.MiniSectorShift() != MINI_SECTOR_SHIFT {
		return fmt.Errorf("%w: incorrect mini sector shift (expected %v, found %v)",
			ErrHeaderInvalid, MINI_SECTOR_SHIFT, h.MiniSectorShift())
	}

	return nil
}

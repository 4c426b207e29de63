package cfb

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Byte offsets of fields within the fixed 128-byte directory entry.
const (
	dirOffName         = 0
	dirOffNameLen      = 64
	dirOffObjectType   = 66
	dirOffColorFlag    = 67
	dirOffLeftSibling  = 68
	dirOffRightSibling = 72
	dirOffChild        = 76
	dirOffCLSID        = 80
	dirOffStateBits    = 96
	dirOffCreationTime = 100
	dirOffModifiedTime = 108
	dirOffStartSector  = 116
	dirOffStreamSize   = 120
)

// DirEntry is a read-only view over one 128-byte directory entry inside the
// borrowed image. It stays valid for the lifetime of the image.
type DirEntry struct {
	b  []byte
	id uint32
}

// ID returns the entry's index in the directory array.
func (e *DirEntry) ID() uint32 { return e.id }

// NameRaw returns the 64 name bytes verbatim: up to 32 UTF-16LE code units,
// null-terminated within the fixed region.
func (e *DirEntry) NameRaw() []byte { return e.b[dirOffName : dirOffName+64] }

// NameLen returns the name length in bytes, including the terminator.
func (e *DirEntry) NameLen() uint16 {
	return binary.LittleEndian.Uint16(e.b[dirOffNameLen:])
}

func (e *DirEntry) ObjectType() ObjectType {
	return ObjectFromByte(e.b[dirOffObjectType])
}

func (e *DirEntry) Color() Color {
	return ColorFromByte(e.b[dirOffColorFlag])
}

func (e *DirEntry) LeftSibling() uint32 {
	return binary.LittleEndian.Uint32(e.b[dirOffLeftSibling:])
}

func (e *DirEntry) RightSibling() uint32 {
	return binary.LittleEndian.Uint32(e.b[dirOffRightSibling:])
}

func (e *DirEntry) Child() uint32 {
	return binary.LittleEndian.Uint32(e.b[dirOffChild:])
}

func (e *DirEntry) CLSID() uuid.UUID {
	var id uuid.UUID
	copy(id[:], e.b[dirOffCLSID:dirOffCLSID+16])
	return id
}

func (e *DirEntry) StateBits() uint32 {
	return binary.LittleEndian.Uint32(e.b[dirOffStateBits:])
}

func (e *DirEntry) CreationTime() uint64 {
	return binary.LittleEndian.Uint64(e.b[dirOffCreationTime:])
}

func (e *DirEntry) ModifiedTime() uint64 {
	return binary.LittleEndian.Uint64(e.b[dirOffModifiedTime:])
}

func (e *DirEntry) StartSectorLocation() uint32 {
	return binary.LittleEndian.Uint32(e.b[dirOffStartSector:])
}

func (e *DirEntry) StreamSize() uint64 {
	return binary.LittleEndian.Uint64(e.b[dirOffStreamSize:])
}

// IsStream reports whether the entry describes a stream object.
func IsStream(e *DirEntry) bool {
	return e.b[dirOffObjectType] == OBJ_TYPE_STREAM
}

// IsStorage reports whether the entry describes a storage object.
func IsStorage(e *DirEntry) bool {
	return e.b[dirOffObjectType] == OBJ_TYPE_STORAGE
}

// IsPropertySetStream reports whether the entry names a property set
// stream, marked by a first name code unit of 0x0005.
//
// https://docs.microsoft.com/en-us/openspecs/windows_protocols/ms-oleps/e5484a83-3cc1-43a6-afcf-6558059fe36e
func IsPropertySetStream(e *DirEntry) bool {
	return binary.LittleEndian.Uint16(e.b[dirOffName:]) == 0x0005
}

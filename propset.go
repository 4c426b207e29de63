package cfb

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Property set streams (the entries whose name starts with code unit
// 0x0005) carry a small header followed by one or more property sets.
// These parsers operate on the bytes returned by ReadStream.
//
// https://docs.microsoft.com/en-us/openspecs/windows_protocols/ms-oleps

const (
	propSetStreamHeaderLen = 28
	propSetInfoLen         = 20
	propSetHeaderLen       = 8
)

type PropertySetInfo struct {
	FMTID  uuid.UUID
	Offset uint32
}

type PropertySetStream struct {
	ByteOrder        uint16
	Version          uint16
	SystemIdentifier uint32
	CLSID            uuid.UUID
	Sets             []PropertySetInfo
}

type PropertyIDOffset struct {
	ID     uint32
	Offset uint32
}

type PropertySet struct {
	Size       uint32
	Properties []PropertyIDOffset
}

// ParsePropertySetStream parses the stream-level header and the FMTID and
// offset of each property set it declares.
func ParsePropertySetStream(b []byte) (*PropertySetStream, error) {
	if len(b) < propSetStreamHeaderLen {
		return nil, fmt.Errorf("%w: property set stream is %d bytes, header needs %d", ErrInvalidArgument, len(b), propSetStreamHeaderLen)
	}

	stream := &PropertySetStream{
		ByteOrder:        binary.LittleEndian.Uint16(b[0:]),
		Version:          binary.LittleEndian.Uint16(b[2:]),
		SystemIdentifier: binary.LittleEndian.Uint32(b[4:]),
	}
	copy(stream.CLSID[:], b[8:24])

	numSets := binary.LittleEndian.Uint32(b[24:])
	if uint64(len(b)) < propSetStreamHeaderLen+uint64(numSets)*propSetInfoLen {
		return nil, fmt.Errorf("%w: property set stream declares %d sets past its end", ErrOutOfBounds, numSets)
	}

	for i := uint32(0); i < numSets; i++ {
		info := PropertySetInfo{}
		pos := propSetStreamHeaderLen + int(i)*propSetInfoLen
		copy(info.FMTID[:], b[pos:pos+16])
		info.Offset = binary.LittleEndian.Uint32(b[pos+16:])
		stream.Sets = append(stream.Sets, info)
	}

	return stream, nil
}

// ParsePropertySet parses the property set starting at offset within the
// stream bytes, yielding the identifier and offset of each property.
func ParsePropertySet(b []byte, offset uint32) (*PropertySet, error) {
	if uint64(len(b)) < uint64(offset)+propSetHeaderLen {
		return nil, fmt.Errorf("%w: property set offset %d past stream end", ErrOutOfBounds, offset)
	}

	set := &PropertySet{
		Size: binary.LittleEndian.Uint32(b[offset:]),
	}

	numProperties := binary.LittleEndian.Uint32(b[offset+4:])
	if uint64(len(b)) < uint64(offset)+propSetHeaderLen+uint64(numProperties)*8 {
		return nil, fmt.Errorf("%w: property set declares %d properties past stream end", ErrOutOfBounds, numProperties)
	}

	for i := uint32(0); i < numProperties; i++ {
		pos := offset + propSetHeaderLen + i*8
		set.Properties = append(set.Properties, PropertyIDOffset{
			ID:     binary.LittleEndian.Uint32(b[pos:]),
			Offset: binary.LittleEndian.Uint32(b[pos+4:]),
		})
	}

	return set, nil
}

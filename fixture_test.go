package cfb

import (
	"encoding/binary"
	"unicode/utf16"
)

// The test containers are version-3 images with a fixed physical layout,
// equivalent in shape to the small seed containers the original test data
// used:
//
//	sector 0      FAT
//	sectors 1-2   directory (8 slots)
//	sector 3      MiniFAT
//	sectors 4-5   mini stream (the root storage's stream)
//	sectors 6-14  one regular stream (4608 bytes)
//
// Fixtures differ only in their directory entries, so traversal order,
// name ordering, and chain corruption can each be exercised over the same
// sector pools.

const (
	testSectorLen   = 512
	testNumSectors  = 15
	testMiniStart   = 4
	testStreamStart = 6
	testStreamSize  = 4608
)

const propSetStreamName = "\x05Xrpnqgkd0qyouogaTj5jpe4dEe"

type testEntry struct {
	name         string
	objType      uint8
	left         uint32
	right        uint32
	child        uint32
	start        uint32
	size         uint64
	creationTime uint64
}

var travelLogBytes = []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}

var tl0Prefix = []byte{
	0x54, 0x01, 0x14, 0x00, 0x1f, 0x00, 0x80, 0x53, 0x1c, 0x87, 0xa0, 0x42, 0x69, 0x10, 0xa2, 0xea,
	0x08, 0x00, 0x2b, 0x30, 0x30, 0x9d, 0x3e, 0x01, 0x61, 0x80, 0x00, 0x00, 0x00, 0x00, 0x68, 0x00,
	0x74, 0x00, 0x74, 0x00, 0x70, 0x00, 0x3a, 0x00, 0x2f, 0x00, 0x2f, 0x00, 0x76, 0x00, 0x73, 0x00,
	0x74, 0x00, 0x66, 0x00, 0x62, 0x00, 0x69, 0x00, 0x6e, 0x00, 0x67, 0x00, 0x3a, 0x00, 0x38, 0x00,
	0x30, 0x00, 0x38, 0x00, 0x30, 0x00, 0x2f, 0x00, 0x74, 0x00, 0x66, 0x00, 0x73, 0x00, 0x2f, 0x00,
}

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

var pngTrailer = []byte{0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82}

func tl0Bytes() []byte {
	b := make([]byte, 526)
	copy(b, tl0Prefix)
	for i := len(tl0Prefix); i < len(b); i++ {
		b[i] = byte(i)
	}
	return b
}

func pngStreamBytes() []byte {
	b := make([]byte, testStreamSize)
	for i := range b {
		b[i] = byte(i * 7)
	}
	copy(b, pngMagic)
	copy(b[len(b)-len(pngTrailer):], pngTrailer)
	return b
}

func sectorOf(image []byte, n int) []byte {
	return image[(n+1)*testSectorLen : (n+2)*testSectorLen]
}

func putU16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putU64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

func writeTestHeader(image []byte) {
	copy(image, MAGIC_NUMBER)
	putU16(image, 24, MINOR_VERSION)
	putU16(image, 26, 3)
	putU16(image, 28, BYTE_ORDER_MARK)
	putU16(image, 30, 9)
	putU16(image, 32, MINI_SECTOR_SHIFT)
	putU32(image, 44, 1)                   // numFATSector
	putU32(image, 48, 1)                   // firstDirectorySectorLocation
	putU32(image, 56, 4096)                // miniStreamCutoffSize
	putU32(image, 60, 3)                   // firstMiniFATSectorLocation
	putU32(image, 64, 1)                   // numMiniFATSector
	putU32(image, 68, END_OF_CHAIN)        // firstDIFATSectorLocation
	putU32(image, 72, 0)                   // numDIFATSector
	for i := 0; i < int(NUM_DIFAT_ENTRIES_IN_HEADER); i++ {
		putU32(image, 76+4*i, FREE_SECTOR)
	}
	putU32(image, 76, 0) // FAT block 0 lives in sector 0
}

func writeTestFAT(image []byte) {
	fat := sectorOf(image, 0)
	for i := 0; i < testSectorLen/4; i++ {
		putU32(fat, 4*i, FREE_SECTOR)
	}
	putU32(fat, 4*0, FAT_SECTOR)
	putU32(fat, 4*1, 2) // directory: 1 -> 2
	putU32(fat, 4*2, END_OF_CHAIN)
	putU32(fat, 4*3, END_OF_CHAIN) // MiniFAT
	putU32(fat, 4*4, 5)            // mini stream: 4 -> 5
	putU32(fat, 4*5, END_OF_CHAIN)
	for n := testStreamStart; n < testStreamStart+8; n++ {
		putU32(fat, 4*n, uint32(n+1)) // regular stream: 6 -> ... -> 14
	}
	putU32(fat, 4*(testStreamStart+8), END_OF_CHAIN)
}

func writeTestMiniFAT(image []byte) {
	minifat := sectorOf(image, 3)
	for i := 0; i < testSectorLen/4; i++ {
		putU32(minifat, 4*i, FREE_SECTOR)
	}
	putU32(minifat, 4*0, END_OF_CHAIN) // TravelLog: single mini sector
	for m := 1; m < 9; m++ {
		putU32(minifat, 4*m, uint32(m+1)) // TL0: 1 -> ... -> 9
	}
	putU32(minifat, 4*9, END_OF_CHAIN)
}

func writeTestDirEntry(slot []byte, entry testEntry) {
	units := utf16.Encode([]rune(entry.name))
	for i, unit := range units {
		putU16(slot, 2*i, unit)
	}
	putU16(slot, 64, uint16((len(units)+1)*2))
	slot[66] = entry.objType
	slot[67] = COLOR_BLACK
	putU32(slot, 68, entry.left)
	putU32(slot, 72, entry.right)
	putU32(slot, 76, entry.child)
	putU64(slot, 100, entry.creationTime)
	putU32(slot, 116, entry.start)
	putU64(slot, 120, entry.size)
}

// buildTestImage assembles a full container around the given directory
// entries. Entry index i lands in directory slot i.
func buildTestImage(entries []testEntry) []byte {
	image := make([]byte, (testNumSectors+1)*testSectorLen)

	writeTestHeader(image)
	writeTestFAT(image)
	writeTestMiniFAT(image)

	for i, entry := range entries {
		sector := sectorOf(image, 1+i/4)
		writeTestDirEntry(sector[(i%4)*int(DIR_ENTRY_LEN):], entry)
	}

	// Mini stream: mini sector 0 holds TravelLog, mini sectors 1-9 hold
	// TL0. The pool spans regular sectors 4 and 5 back to back.
	miniStream := image[(testMiniStart+1)*testSectorLen : (testMiniStart+3)*testSectorLen]
	copy(miniStream, travelLogBytes)
	copy(miniStream[MINI_SECTOR_LEN:], tl0Bytes())

	copy(image[(testStreamStart+1)*testSectorLen:], pngStreamBytes())

	return image
}

// The tree shapes below reproduce the traversal orders of the two seed
// containers: the walk visits an entry, then its child subtree, then the
// left subtree, then the right.

func noStream(entry testEntry) testEntry {
	if entry.left == 0 {
		entry.left = NO_STREAM
	}
	if entry.right == 0 {
		entry.right = NO_STREAM
	}
	if entry.child == 0 {
		entry.child = NO_STREAM
	}
	return entry
}

func entriesWithDefaults(entries []testEntry) []testEntry {
	out := make([]testEntry, len(entries))
	for i, entry := range entries {
		out[i] = noStream(entry)
	}
	return out
}

// firstContainerEntries yields the order
// [propSetStreamName, TL1, TL0, TravelLog, TL2].
func firstContainerEntries() []testEntry {
	return entriesWithDefaults([]testEntry{
		{name: "Root Entry", objType: OBJ_TYPE_ROOT, child: 1, start: testMiniStart, size: 640},
		{name: propSetStreamName, objType: OBJ_TYPE_STREAM, left: 2, right: 5, start: END_OF_CHAIN},
		{name: "TL1", objType: OBJ_TYPE_STREAM, left: 3, start: END_OF_CHAIN},
		{name: "TL0", objType: OBJ_TYPE_STREAM, right: 4, start: 1, size: 526},
		{name: "TravelLog", objType: OBJ_TYPE_STREAM, size: 12}, // mini sector 0
		{name: "TL2", objType: OBJ_TYPE_STREAM, start: testStreamStart, size: testStreamSize},
	})
}

// secondContainerEntries yields the order
// [TravelLog, TL0, TL1, propSetStreamName].
func secondContainerEntries() []testEntry {
	return entriesWithDefaults([]testEntry{
		{name: "Root Entry", objType: OBJ_TYPE_ROOT, child: 1, start: testMiniStart, size: 640},
		{name: "TravelLog", objType: OBJ_TYPE_STREAM, right: 2, size: 12},
		{name: "TL0", objType: OBJ_TYPE_STREAM, left: 3, right: 4, start: 1, size: 526},
		{name: "TL1", objType: OBJ_TYPE_STREAM, start: END_OF_CHAIN},
		{name: propSetStreamName, objType: OBJ_TYPE_STREAM, start: END_OF_CHAIN},
	})
}

// orderedContainerEntries links the same entries as firstContainerEntries
// in the red-black name order, so path lookup can binary-search them:
// TL0 < TL1 < TL2 < TravelLog < propSetStreamName.
func orderedContainerEntries() []testEntry {
	return entriesWithDefaults([]testEntry{
		{name: "Root Entry", objType: OBJ_TYPE_ROOT, child: 5, start: testMiniStart, size: 640},
		{name: propSetStreamName, objType: OBJ_TYPE_STREAM, start: END_OF_CHAIN},
		{name: "TL1", objType: OBJ_TYPE_STREAM, left: 3, start: END_OF_CHAIN},
		{name: "TL0", objType: OBJ_TYPE_STREAM, start: 1, size: 526},
		{name: "TravelLog", objType: OBJ_TYPE_STREAM, right: 1, size: 12},
		{name: "TL2", objType: OBJ_TYPE_STREAM, left: 2, right: 4, start: testStreamStart, size: testStreamSize},
	})
}

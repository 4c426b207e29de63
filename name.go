package cfb

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

var nameDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Name decodes the entry's UTF-16LE name to UTF-8. The raw code units are
// available through NameRaw for callers that want them verbatim.
func (e *DirEntry) Name() string {
	raw := e.NameRaw()

	length := int(e.NameLen())
	if length < 2 || length > len(raw) || length%2 != 0 {
		// Fall back to the in-region terminator when the recorded byte
		// length is unusable.
		length = len(raw)
		for i := 0; i+1 < len(raw); i += 2 {
			if binary.LittleEndian.Uint16(raw[i:]) == 0 {
				length = i + 2
				break
			}
		}
	}

	decoded, err := nameDecoder.NewDecoder().Bytes(raw[:length-2])
	if err != nil {
		return ""
	}
	return string(decoded)
}

type Ordering int

const (
	OrderLess Ordering = iota
	OrderEqual
	OrderGreater
)

// CompareNames orders directory entry names the way the red-black tree
// does: shorter UTF-16 encodings sort first, names of equal length compare
// by upper-cased code units.
func CompareNames(nameLeft, nameRight string) Ordering {
	left := utf16.Encode([]rune(strings.ToUpper(nameLeft)))
	right := utf16.Encode([]rune(strings.ToUpper(nameRight)))

	if len(left) != len(right) {
		if len(left) < len(right) {
			return OrderLess
		}
		return OrderGreater
	}

	for i := range left {
		if left[i] != right[i] {
			if left[i] < right[i] {
				return OrderLess
			}
			return OrderGreater
		}
	}

	return OrderEqual
}

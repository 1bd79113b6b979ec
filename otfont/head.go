package otfont

import (
	"encoding/binary"
	"fmt"
)

// IndexToLocFormat distinguishes the 'loca' table's entry width, a
// detail that the table-parsing layer records but doesn't itself act
// on (glyph outline lookup is out of scope; the reference Rasterizer
// reads outlines through golang/freetype/truetype instead).
type IndexToLocFormat int16

const (
	LocFormatShort IndexToLocFormat = 0
	LocFormatLong  IndexToLocFormat = 1
)

// Head is the parsed subset of the 'head' table this package cares
// about: the font's design grid and its loca-table entry format.
type Head struct {
	UnitsPerEm       uint16
	IndexToLocFormat IndexToLocFormat
	// MacStyle mirrors the head table's 16-bit style flags field;
	// bit 0 is bold, bit 1 is italic.
	MacStyle uint16
}

// Bold reports the head table's bold style flag.
func (h Head) Bold() bool { return h.MacStyle&0x1 != 0 }

// Italic reports the head table's italic style flag.
func (h Head) Italic() bool { return h.MacStyle&0x2 != 0 }

// ParseHead parses the 'head' table from a TableDirectory.
func ParseHead(td *TableDirectory) (Head, error) {
	data, err := td.Table("head")
	if err != nil {
		return Head{}, err
	}
	if len(data) < 54 {
		return Head{}, fmt.Errorf("otfont: head: %w", ErrTruncatedTable)
	}

	return Head{
		UnitsPerEm:       binary.BigEndian.Uint16(data[18:20]),
		MacStyle:         binary.BigEndian.Uint16(data[44:46]),
		IndexToLocFormat: IndexToLocFormat(int16(binary.BigEndian.Uint16(data[50:52]))),
	}, nil
}

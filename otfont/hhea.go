package otfont

import (
	"encoding/binary"
	"fmt"
)

// Hhea is the parsed subset of the 'hhea' table: the horizontal header
// ascender, descender, line gap and metric count. The reference
// rasterizer's Metrics does not read it; it takes ascent and descent
// from the freetype face.
type Hhea struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	NumberOfHMetrics uint16
}

// ParseHhea parses the 'hhea' table from a TableDirectory.
func ParseHhea(td *TableDirectory) (Hhea, error) {
	data, err := td.Table("hhea")
	if err != nil {
		return Hhea{}, err
	}
	if len(data) < 36 {
		return Hhea{}, fmt.Errorf("otfont: hhea: %w", ErrTruncatedTable)
	}

	return Hhea{
		Ascender:         int16(binary.BigEndian.Uint16(data[4:6])),
		Descender:        int16(binary.BigEndian.Uint16(data[6:8])),
		LineGap:          int16(binary.BigEndian.Uint16(data[8:10])),
		NumberOfHMetrics: binary.BigEndian.Uint16(data[34:36]),
	}, nil
}

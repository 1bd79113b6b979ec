package otfont

import (
	"encoding/binary"
	"fmt"
)

// Post is the parsed header fields of the 'post' table (version is
// read but this package never parses the version-2 glyph name array —
// glyph naming is out of scope; only the geometry/metadata header is
// needed here).
type Post struct {
	// Version is the table's Fixed32 version number, still encoded as
	// the raw 0x000Xyyyy value (e.g. 0x00020000 for version 2.0).
	Version            uint32
	ItalicAngleDegrees float64
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

// ParsePost parses the 'post' table header from a TableDirectory.
func ParsePost(td *TableDirectory) (Post, error) {
	data, err := td.Table("post")
	if err != nil {
		return Post{}, err
	}
	if len(data) < 32 {
		return Post{}, fmt.Errorf("otfont: post: %w", ErrTruncatedTable)
	}

	version := binary.BigEndian.Uint32(data[0:4])
	italicAngleFixed := int32(binary.BigEndian.Uint32(data[4:8]))
	underlinePosition := int16(binary.BigEndian.Uint16(data[8:10]))
	underlineThickness := int16(binary.BigEndian.Uint16(data[10:12]))
	isFixedPitch := binary.BigEndian.Uint32(data[12:16])

	return Post{
		Version:            version,
		ItalicAngleDegrees: fixed16Dot16ToFloat(italicAngleFixed),
		UnderlinePosition:  underlinePosition,
		UnderlineThickness: underlineThickness,
		IsFixedPitch:       isFixedPitch != 0,
	}, nil
}

func fixed16Dot16ToFloat(v int32) float64 {
	return float64(v) / 65536
}

package otfont

import (
	"encoding/binary"
	"fmt"
)

// fsSelection bits this package exposes (OpenType OS/2 spec).
const (
	fsSelectionItalic = 1 << 0
	fsSelectionBold   = 1 << 5
)

// OS2 is the parsed subset of the 'OS/2' table: weight/width class,
// typo and win metrics, strikethrough geometry, and (version >= 2)
// x-height/cap-height. The reference rasterizer's Metrics reads only
// the strikethrough fields.
type OS2 struct {
	Version           uint16
	WeightClass       uint16
	WidthClass        uint16
	FsSelection       uint16
	TypoAscender      int16
	TypoDescender     int16
	TypoLineGap       int16
	WinAscent         uint16
	WinDescent        uint16
	StrikeoutSize     int16
	StrikeoutPosition int16

	// HasXHeightCapHeight reports whether XHeight/CapHeight were
	// present (version >= 2); if false they are zero-valued.
	HasXHeightCapHeight bool
	XHeight             int16
	CapHeight           int16
}

// Bold reports the OS/2 fsSelection bold bit.
func (o OS2) Bold() bool { return o.FsSelection&fsSelectionBold != 0 }

// Italic reports the OS/2 fsSelection italic bit.
func (o OS2) Italic() bool { return o.FsSelection&fsSelectionItalic != 0 }

// ParseOS2 parses the 'OS/2' table from a TableDirectory. Versions 0
// through 5 are accepted; fields introduced in later versions are
// simply left at their zero value when the table is shorter.
func ParseOS2(td *TableDirectory) (OS2, error) {
	data, err := td.Table("OS/2")
	if err != nil {
		return OS2{}, err
	}
	if len(data) < 78 {
		return OS2{}, fmt.Errorf("otfont: OS/2: %w", ErrTruncatedTable)
	}

	o := OS2{
		Version:           binary.BigEndian.Uint16(data[0:2]),
		WeightClass:       binary.BigEndian.Uint16(data[4:6]),
		WidthClass:        binary.BigEndian.Uint16(data[6:8]),
		StrikeoutSize:     int16(binary.BigEndian.Uint16(data[26:28])),
		StrikeoutPosition: int16(binary.BigEndian.Uint16(data[28:30])),
		FsSelection:       binary.BigEndian.Uint16(data[62:64]),
		TypoAscender:      int16(binary.BigEndian.Uint16(data[68:70])),
		TypoDescender:     int16(binary.BigEndian.Uint16(data[70:72])),
		TypoLineGap:       int16(binary.BigEndian.Uint16(data[72:74])),
		WinAscent:         binary.BigEndian.Uint16(data[74:76]),
		WinDescent:        binary.BigEndian.Uint16(data[76:78]),
	}

	if o.Version >= 2 && len(data) >= 90 {
		o.HasXHeightCapHeight = true
		o.XHeight = int16(binary.BigEndian.Uint16(data[86:88]))
		o.CapHeight = int16(binary.BigEndian.Uint16(data[88:90]))
	}

	return o, nil
}

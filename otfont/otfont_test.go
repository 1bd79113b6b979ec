package otfont

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildTestFont assembles a minimal synthetic sfnt blob containing
// head, hhea, OS/2 (version 2) and post tables, enough to exercise
// every parser in this package without a real font file.
func buildTestFont(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:20], 2048) // unitsPerEm
	binary.BigEndian.PutUint16(head[44:46], 0x3)  // bold|italic
	binary.BigEndian.PutUint16(head[50:52], 1)    // indexToLocFormat long

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[4:6], 1900)                      // ascender
	descender := int16(-500)
	binary.BigEndian.PutUint16(hhea[6:8], uint16(descender))         // descender
	binary.BigEndian.PutUint16(hhea[8:10], 0)                        // lineGap
	binary.BigEndian.PutUint16(hhea[34:36], 5)                       // numberOfHMetrics

	os2 := make([]byte, 90)
	binary.BigEndian.PutUint16(os2[0:2], 2)    // version
	binary.BigEndian.PutUint16(os2[4:6], 700)  // weight class (bold)
	binary.BigEndian.PutUint16(os2[6:8], 5)    // width class
	binary.BigEndian.PutUint16(os2[62:64], fsSelectionBold|fsSelectionItalic)
	binary.BigEndian.PutUint16(os2[68:70], 1900) // typo ascender
	binary.BigEndian.PutUint16(os2[74:76], 1900) // win ascent
	binary.BigEndian.PutUint16(os2[86:88], 1100) // x-height
	binary.BigEndian.PutUint16(os2[88:90], 1400) // cap height

	post := make([]byte, 32)
	binary.BigEndian.PutUint32(post[0:4], 0x00020000)
	italicAngleFixed := int32(-6 * 65536)
	binary.BigEndian.PutUint32(post[4:8], uint32(italicAngleFixed)) // -6 degrees
	binary.BigEndian.PutUint32(post[12:16], 1)                     // isFixedPitch

	tables := []struct {
		tag  string
		data []byte
	}{
		{"head", head},
		{"hhea", hhea},
		{"OS/2", os2},
		{"post", post},
	}

	const headerSize = 12
	const recordSize = 16
	offset := uint32(headerSize + len(tables)*recordSize)

	buf := make([]byte, offset)
	binary.BigEndian.PutUint32(buf[0:4], tagTrueType)
	binary.BigEndian.PutUint16(buf[4:6], uint16(len(tables)))

	for i, tbl := range tables {
		pos := headerSize + i*recordSize
		copy(buf[pos:pos+4], tbl.tag)
		binary.BigEndian.PutUint32(buf[pos+8:pos+12], offset)
		binary.BigEndian.PutUint32(buf[pos+12:pos+16], uint32(len(tbl.data)))
		buf = append(buf, tbl.data...)
		offset += uint32(len(tbl.data))
	}

	return buf
}

func TestParseTableDirectoryAndTables(t *testing.T) {
	data := buildTestFont(t)

	td, err := ParseTableDirectory(data)
	if err != nil {
		t.Fatalf("ParseTableDirectory: %v", err)
	}
	if !td.HasTable("head") {
		t.Fatal("expected head table to be present")
	}
	if td.HasTable("glyf") {
		t.Fatal("did not expect a glyf table")
	}

	head, err := ParseHead(td)
	if err != nil {
		t.Fatalf("ParseHead: %v", err)
	}
	if head.UnitsPerEm != 2048 {
		t.Fatalf("UnitsPerEm = %d, want 2048", head.UnitsPerEm)
	}
	if !head.Bold() || !head.Italic() {
		t.Fatal("expected head style flags to report bold+italic")
	}
	if head.IndexToLocFormat != LocFormatLong {
		t.Fatalf("IndexToLocFormat = %v, want long", head.IndexToLocFormat)
	}

	hhea, err := ParseHhea(td)
	if err != nil {
		t.Fatalf("ParseHhea: %v", err)
	}
	if hhea.Ascender != 1900 || hhea.Descender != -500 {
		t.Fatalf("unexpected hhea metrics: %+v", hhea)
	}

	os2, err := ParseOS2(td)
	if err != nil {
		t.Fatalf("ParseOS2: %v", err)
	}
	if !os2.Bold() || !os2.Italic() {
		t.Fatal("expected OS/2 fsSelection to report bold+italic")
	}
	if !os2.HasXHeightCapHeight || os2.XHeight != 1100 || os2.CapHeight != 1400 {
		t.Fatalf("unexpected OS/2 v2 metrics: %+v", os2)
	}

	post, err := ParsePost(td)
	if err != nil {
		t.Fatalf("ParsePost: %v", err)
	}
	if !post.IsFixedPitch {
		t.Fatal("expected post.IsFixedPitch true")
	}
	if post.ItalicAngleDegrees != -6 {
		t.Fatalf("ItalicAngleDegrees = %v, want -6", post.ItalicAngleDegrees)
	}
}

func TestParseTableDirectoryRejectsGarbage(t *testing.T) {
	_, err := ParseTableDirectory([]byte("not a font at all"))
	if !errors.Is(err, ErrNotSFNT) {
		t.Fatalf("expected ErrNotSFNT, got %v", err)
	}
}

func TestTableNotFound(t *testing.T) {
	data := buildTestFont(t)
	td, err := ParseTableDirectory(data)
	if err != nil {
		t.Fatalf("ParseTableDirectory: %v", err)
	}

	_, err = td.Table("SVG ")
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
	if _, err := ParseSVG(td); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ParseSVG to propagate ErrTableNotFound, got %v", err)
	}
}

func TestParseSVGDocumentLookup(t *testing.T) {
	// Build a standalone SVG table: header + document list + one doc.
	doc := []byte("<svg></svg>")
	listOffset := uint32(10)
	header := make([]byte, 10)
	binary.BigEndian.PutUint32(header[2:6], listOffset)

	list := make([]byte, 2+12)
	binary.BigEndian.PutUint16(list[0:2], 1) // numEntries
	binary.BigEndian.PutUint16(list[2:4], 5) // startGlyphID
	binary.BigEndian.PutUint16(list[4:6], 5) // endGlyphID
	binary.BigEndian.PutUint32(list[6:10], uint32(len(list)))
	binary.BigEndian.PutUint32(list[10:14], uint32(len(doc)))

	svgTable := append(header, list...)
	svgTable = append(svgTable, doc...)

	buf := make([]byte, 12+16)
	binary.BigEndian.PutUint32(buf[0:4], tagTrueType)
	binary.BigEndian.PutUint16(buf[4:6], 1)
	copy(buf[12:16], "SVG ")
	binary.BigEndian.PutUint32(buf[20:24], uint32(len(buf)))
	binary.BigEndian.PutUint32(buf[24:28], uint32(len(svgTable)))
	buf = append(buf, svgTable...)

	td, err := ParseTableDirectory(buf)
	if err != nil {
		t.Fatalf("ParseTableDirectory: %v", err)
	}

	svg, err := ParseSVG(td)
	if err != nil {
		t.Fatalf("ParseSVG: %v", err)
	}
	if !svg.HasGlyph(5) {
		t.Fatal("expected glyph 5 to have an SVG document")
	}
	if svg.HasGlyph(6) {
		t.Fatal("did not expect glyph 6 to have an SVG document")
	}

	got, ok := svg.Document(5)
	if !ok || string(got) != string(doc) {
		t.Fatalf("Document(5) = %q, %v; want %q, true", got, ok, doc)
	}
}

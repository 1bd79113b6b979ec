package otfont

import (
	"encoding/binary"
	"fmt"
)

// SVGDocumentRecord maps a glyph ID range to the byte range of its SVG
// document within the table's document blob.
type SVGDocumentRecord struct {
	StartGlyphID uint16
	EndGlyphID   uint16
	docOffset    uint32
	docLength    uint32
}

// SVG is the parsed 'SVG ' table: the glyph-range-to-document index a
// colour-glyph-capable Face uses to answer IsColorGlyph for glyphs
// whose artwork is SVG rather than COLR/CBDT/sbix bitmaps.
type SVG struct {
	data     []byte
	docsBase uint32
	records  []SVGDocumentRecord
}

// ParseSVG parses the 'SVG ' table from a TableDirectory.
func ParseSVG(td *TableDirectory) (*SVG, error) {
	data, err := td.Table("SVG ")
	if err != nil {
		return nil, err
	}
	if len(data) < 10 {
		return nil, fmt.Errorf("otfont: SVG: %w", ErrTruncatedTable)
	}

	listOffset := binary.BigEndian.Uint32(data[2:6])
	if int(listOffset)+2 > len(data) {
		return nil, fmt.Errorf("otfont: SVG document list: %w", ErrTruncatedTable)
	}

	numEntries := binary.BigEndian.Uint16(data[listOffset : listOffset+2])
	const recordSize = 12
	recordsStart := int(listOffset) + 2
	if recordsStart+int(numEntries)*recordSize > len(data) {
		return nil, fmt.Errorf("otfont: SVG document records: %w", ErrTruncatedTable)
	}

	records := make([]SVGDocumentRecord, 0, numEntries)
	for i := 0; i < int(numEntries); i++ {
		pos := recordsStart + i*recordSize
		records = append(records, SVGDocumentRecord{
			StartGlyphID: binary.BigEndian.Uint16(data[pos : pos+2]),
			EndGlyphID:   binary.BigEndian.Uint16(data[pos+2 : pos+4]),
			docOffset:    binary.BigEndian.Uint32(data[pos+4 : pos+8]),
			docLength:    binary.BigEndian.Uint32(data[pos+8 : pos+12]),
		})
	}

	return &SVG{data: data, docsBase: listOffset, records: records}, nil
}

// HasGlyph reports whether glyph id has an SVG document, i.e. whether
// it is a colour glyph by this table's accounting.
func (s *SVG) HasGlyph(id uint16) bool {
	_, ok := s.findRecord(id)
	return ok
}

// Document returns the raw SVG document bytes for glyph id.
func (s *SVG) Document(id uint16) ([]byte, bool) {
	rec, ok := s.findRecord(id)
	if !ok {
		return nil, false
	}
	start := s.docsBase + rec.docOffset
	end := start + rec.docLength
	if int(end) > len(s.data) || end < start {
		return nil, false
	}
	return s.data[start:end], true
}

// findRecord binary-searches the records, which the SVG table format
// stores sorted by StartGlyphID with non-overlapping ranges.
func (s *SVG) findRecord(id uint16) (SVGDocumentRecord, bool) {
	lo, hi := 0, len(s.records)
	for lo < hi {
		mid := (lo + hi) / 2
		r := s.records[mid]
		switch {
		case id < r.StartGlyphID:
			hi = mid
		case id > r.EndGlyphID:
			lo = mid + 1
		default:
			return r, true
		}
	}
	return SVGDocumentRecord{}, false
}

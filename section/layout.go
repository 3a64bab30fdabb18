package section

import (
	"fmt"
	"math"

	"github.com/arloliu/metacoder/errs"
)

// Segment is the byte range of one item's data, measured from the start of the
// filler word. The first item always starts at FillerSize.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of bytes in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Layout is the structural view of an encoded string array buffer:
//
//	[count word][end offset word]×Count[filler word][padded item data]
//
// The offset table stores cumulative end offsets relative to the start of the
// data section, not start offsets. Rebased against the filler word this gives
//
//	end[i]   = Ends[i] + FillerSize
//	start[i] = end[i-1], with end[-1] = FillerSize
//
// The last segment always extends to the end of the buffer, so it absorbs any
// trailing slack regardless of its declared end offset.
type Layout struct {
	// Count is the number of items declared by the count word.
	Count int
	// Ends holds the raw end offsets exactly as stored in the table.
	Ends []uint64
	// Segments holds the byte range of every item relative to the filler word.
	Segments []Segment
	// DataOffset is the absolute byte offset of the filler word.
	DataOffset int
	// Size is the total buffer size in bytes.
	Size int
}

// Item returns the raw (still padded) bytes of item i from the buffer the layout was parsed from.
func (l *Layout) Item(data []byte, i int) []byte {
	seg := l.Segments[i]
	return data[l.DataOffset+seg.Start : l.DataOffset+seg.End]
}

// Filler returns the filler word of the buffer the layout was parsed from.
// It is nil when the buffer of an empty list carries no filler.
func (l *Layout) Filler(data []byte) []byte {
	if l.Size-l.DataOffset < FillerSize {
		return nil
	}

	return data[l.DataOffset : l.DataOffset+FillerSize]
}

// ParseLayout parses the count word and end-offset table of an encoded string array.
//
// Returns errs.ErrTruncatedBuffer when the count, the table, or any non-last end
// offset references bytes beyond the buffer, and errs.ErrDecode when the table
// is not ascending.
func ParseLayout(data []byte) (Layout, error) {
	if len(data) < CountWordSize {
		return Layout{}, fmt.Errorf("%w: need %d bytes for the count word, have %d",
			errs.ErrTruncatedBuffer, CountWordSize, len(data))
	}

	count64, err := ParseWord(data[:CountWordSize])
	if err != nil {
		return Layout{}, fmt.Errorf("count word: %w", err)
	}

	maxCount := uint64((len(data) - TableOffset) / OffsetWordSize) //nolint: gosec
	if count64 > maxCount {
		return Layout{}, fmt.Errorf("%w: count %d needs %d offset words, buffer holds %d",
			errs.ErrTruncatedBuffer, count64, count64, maxCount)
	}

	count := int(count64) //nolint: gosec
	layout := Layout{
		Count:      count,
		Ends:       make([]uint64, count),
		Segments:   make([]Segment, count),
		DataOffset: TableOffset + count*OffsetWordSize,
		Size:       len(data),
	}

	body := layout.Size - layout.DataOffset
	prevEnd := FillerSize

	for i := range count {
		offset := TableOffset + i*OffsetWordSize
		raw, err := ParseWord(data[offset : offset+OffsetWordSize])
		if err != nil {
			return Layout{}, fmt.Errorf("end offset %d: %w", i, err)
		}
		layout.Ends[i] = raw

		if prevEnd > body {
			return Layout{}, fmt.Errorf("%w: item %d starts at byte %d, data section has %d bytes",
				errs.ErrTruncatedBuffer, i, prevEnd, body)
		}

		if i == count-1 {
			layout.Segments[i] = Segment{Start: prevEnd, End: body}
			break
		}

		if raw > math.MaxInt32 || int(raw)+FillerSize > body { //nolint: gosec
			return Layout{}, fmt.Errorf("%w: item %d ends at byte %d, data section has %d bytes",
				errs.ErrTruncatedBuffer, i, raw, body-FillerSize)
		}

		end := int(raw) + FillerSize
		if end < prevEnd {
			return Layout{}, fmt.Errorf("%w: end offset %d of item %d precedes end offset %d of item %d",
				errs.ErrDecode, raw, i, prevEnd-FillerSize, i-1)
		}

		layout.Segments[i] = Segment{Start: prevEnd, End: end}
		prevEnd = end
	}

	return layout, nil
}

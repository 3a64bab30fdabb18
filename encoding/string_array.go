package encoding

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/internal/pool"
	"github.com/arloliu/metacoder/section"
)

// EncodeStringArray encodes items into a 0x-prefixed hexadecimal buffer.
//
// Encoding format (all words 32 bytes, integers big-endian):
//   - count word: len(items)
//   - end offset word per item: cumulative padded length of items 0..i
//   - one all-zero filler word
//   - every item's UTF-8 bytes right-padded with zeros to a multiple of 32
//     bytes, at least one word per item
//
// The output depends only on items, so equal lists always produce equal buffers.
//
// Parameters:
//   - items: Ordered text items; a missing field must be passed as ""
//
// Returns:
//   - string: The encoded buffer, lowercase hex with a 0x prefix
func EncodeStringArray(items []string) string {
	buf := pool.GetWordBuffer()
	defer pool.PutWordBuffer(buf)

	buf.Grow(EncodedSize(items))
	buf.B = AppendStringArray(buf.B, items)

	return EncodeHex(buf.Bytes())
}

// AppendStringArray appends the binary (non-hex) encoding of items to dst and
// returns the extended slice. See EncodeStringArray for the layout.
func AppendStringArray(dst []byte, items []string) []byte {
	dst = section.AppendWord(dst, uint64(len(items)))

	var end uint64
	for _, item := range items {
		end += uint64(section.PaddedLen(len(item))) //nolint: gosec
		dst = section.AppendWord(dst, end)
	}

	dst = section.AppendZeroWords(dst, 1)

	for _, item := range items {
		dst = section.AppendPadded(dst, item)
	}

	return dst
}

// EncodedSize returns the number of bytes AppendStringArray writes for items.
func EncodedSize(items []string) int {
	size := section.CountWordSize + len(items)*section.OffsetWordSize + section.FillerSize
	for _, item := range items {
		size += section.PaddedLen(len(item))
	}

	return size
}

// DecodeStringArray decodes a buffer produced by EncodeStringArray.
//
// The input must carry the 0x prefix and at least the count word. Item
// boundaries come from the end-offset table; the last item extends to the end
// of the buffer. Control characters, including the zero padding, are stripped
// from every item.
//
// Parameters:
//   - s: 0x-prefixed hexadecimal buffer
//
// Returns:
//   - []string: The decoded items in their original order
//   - error: errs.ErrMalformedInput, errs.ErrMissingPrefix, errs.ErrTruncatedBuffer
//     or errs.ErrDecode (wrapped with details); the list is nil on error
func DecodeStringArray(s string) ([]string, error) {
	body, err := trimHexPrefix(s)
	if err != nil {
		return nil, err
	}

	if len(body) < section.WordHexSize {
		return nil, fmt.Errorf("%w: need %d hex characters for the count word, have %d",
			errs.ErrTruncatedBuffer, section.WordHexSize, len(body))
	}

	data, err := decodeHexBody(body)
	if err != nil {
		return nil, err
	}

	return DecodeStringArrayBytes(data)
}

// DecodeStringArrayBytes decodes the binary (non-hex) form of a string array.
func DecodeStringArrayBytes(data []byte) ([]string, error) {
	layout, err := section.ParseLayout(data)
	if err != nil {
		return nil, err
	}

	items := make([]string, layout.Count)
	for i := range layout.Count {
		text, err := decodeItem(layout.Item(data, i))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = text
	}

	return items, nil
}

func decodeItem(raw []byte) (string, error) {
	cleaned := appendCleaned(make([]byte, 0, len(raw)), raw)
	if !utf8.Valid(cleaned) {
		return "", fmt.Errorf("%w: item is not valid UTF-8", errs.ErrDecode)
	}

	return string(cleaned), nil
}

// CleanControlChars removes every byte in the ranges 0x00-0x1F and 0x7F from s.
//
// These bytes are all ASCII, so removing them never splits a multi-byte UTF-8
// sequence.
func CleanControlChars(s string) string {
	if !HasControlChars(s) {
		return s
	}

	return string(appendCleaned(make([]byte, 0, len(s)), []byte(s)))
}

// HasControlChars reports whether s contains a byte that decode would strip.
func HasControlChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if isControl(s[i]) {
			return true
		}
	}

	return false
}

func appendCleaned(dst []byte, src []byte) []byte {
	for _, b := range src {
		if !isControl(b) {
			dst = append(dst, b)
		}
	}

	return dst
}

func isControl(b byte) bool {
	return b <= 0x1F || b == 0x7F
}

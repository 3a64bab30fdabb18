package section

import (
	"fmt"

	"github.com/arloliu/metacoder/endian"
	"github.com/arloliu/metacoder/errs"
)

var (
	wordEngine = endian.GetWordEngine()
	zeroWord   [WordSize]byte
)

// PaddedLen returns the number of data bytes an item of n UTF-8 bytes occupies.
//
// Items are right-padded with zero bytes to a multiple of WordSize, and even an
// empty item occupies one full word:
//
//	PaddedLen(0)  == 32
//	PaddedLen(32) == 32
//	PaddedLen(33) == 64
//	PaddedLen(95) == 96
func PaddedLen(n int) int {
	if n < 1 {
		n = 1
	}

	return (n + WordSize - 1) / WordSize * WordSize
}

// AppendWord appends v to dst as a 32-byte big-endian word.
func AppendWord(dst []byte, v uint64) []byte {
	dst = append(dst, zeroWord[:WordPadSize]...)

	return wordEngine.AppendUint64(dst, v)
}

// AppendZeroWords appends n all-zero words to dst.
func AppendZeroWords(dst []byte, n int) []byte {
	for range n {
		dst = append(dst, zeroWord[:]...)
	}

	return dst
}

// AppendPadded appends text to dst right-padded with zero bytes to PaddedLen(len(text)).
func AppendPadded(dst []byte, text string) []byte {
	dst = append(dst, text...)
	if pad := PaddedLen(len(text)) - len(text); pad > 0 {
		dst = append(dst, make([]byte, pad)...)
	}

	return dst
}

// ParseWord reads the first 32 bytes of data as a big-endian unsigned integer.
//
// Counts and offsets are 256-bit on the wire, but any value that does not fit
// in 64 bits necessarily points past the end of a real buffer, so such words
// are reported as errs.ErrTruncatedBuffer.
func ParseWord(data []byte) (uint64, error) {
	if len(data) < WordSize {
		return 0, fmt.Errorf("%w: need %d bytes for a word, have %d", errs.ErrTruncatedBuffer, WordSize, len(data))
	}

	for _, b := range data[:WordPadSize] {
		if b != 0 {
			return 0, fmt.Errorf("%w: word value exceeds 64 bits", errs.ErrTruncatedBuffer)
		}
	}

	return wordEngine.Uint64(data[WordPadSize:WordSize]), nil
}

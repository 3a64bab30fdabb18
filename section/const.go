package section

// Word layout sizes in bytes.
const (
	WordSize       = 32                       // size of every count, offset, filler and data word
	WordHexSize    = WordSize * 2             // hex characters per word
	WordValueSize  = 8                        // trailing bytes of a word that carry the uint64 value
	WordPadSize    = WordSize - WordValueSize // leading bytes of a count/offset word, must be zero
	CountWordSize  = WordSize                 // size of the item count word
	OffsetWordSize = WordSize                 // size of each end-offset word
	FillerSize     = WordSize                 // size of the zero filler word between table and data
	MinItemSize    = WordSize                 // padded size of an empty item
	TableOffset    = CountWordSize            // byte offset where the end-offset table starts
)

// HexPrefix is the literal prefix of every encoded hex buffer.
const HexPrefix = "0x"

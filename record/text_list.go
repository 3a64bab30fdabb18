package record

import (
	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/format"
)

// EncodeStrings packs an arbitrary positional text list with the string array codec.
func (c *Coder) EncodeStrings(items []string) (string, error) {
	return c.encodeFields(format.KindStrings, items)
}

// DecodeStrings unpacks a text list produced by EncodeStrings.
func (c *Coder) DecodeStrings(s string) ([]string, error) {
	items, err := encoding.DecodeStringArray(s)
	if err != nil {
		return nil, c.decodeFailed(format.KindStrings, err)
	}

	return items, nil
}

package format

import (
	"fmt"
	"strings"
)

// RecordKind identifies a record schema and, with it, the strategy used to pack its fields.
type RecordKind uint8

const (
	KindAgreement   RecordKind = 0x1 // KindAgreement packs fields as delimiter-joined text.
	KindCertificate RecordKind = 0x2 // KindCertificate packs fields as a fixed-schema ABI tuple.
	KindClaim       RecordKind = 0x3 // KindClaim packs fields with the dynamic string array codec.
	KindStrings     RecordKind = 0x4 // KindStrings is a bare string list packed with the string array codec.
)

// Kinds lists every record kind in command order.
var Kinds = []RecordKind{KindAgreement, KindCertificate, KindClaim, KindStrings}

func (k RecordKind) String() string {
	switch k {
	case KindAgreement:
		return "agreement"
	case KindCertificate:
		return "certificate"
	case KindClaim:
		return "claim-data"
	case KindStrings:
		return "strings"
	default:
		return "unknown"
	}
}

// ParseRecordKind parses the command name of a record kind, case-insensitively.
func ParseRecordKind(name string) (RecordKind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown record kind %q", name)
}

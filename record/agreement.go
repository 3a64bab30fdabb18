package record

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/format"
)

const (
	agreementFieldSep  = "--"
	energySourceSep    = ","
	energySourceAltSep = "|"
	countryRegionSep   = "-"

	// agreementMinFields is the number of fields every agreement carries; Data is optional.
	agreementMinFields = 5
)

// Agreement describes the terms of an energy attribute purchase agreement.
type Agreement struct {
	ProductType   string   `json:"productType" yaml:"productType"`
	EnergySources []string `json:"energySources" yaml:"energySources"`
	Country       string   `json:"country" yaml:"country"`
	Region        string   `json:"region" yaml:"region"`
	AgreementID   string   `json:"agreementId" yaml:"agreementId"`
	OrderID       string   `json:"orderId" yaml:"orderId"`
	Data          string   `json:"data,omitempty" yaml:"data,omitempty"`
}

// EncodeAgreement packs an agreement as delimiter-joined UTF-8 text:
//
//	productType--source1,source2--country-region--agreementId--orderId--data
//
// Fields must not contain the "--" separator.
func (c *Coder) EncodeAgreement(a Agreement) (string, error) {
	text := strings.Join([]string{
		a.ProductType,
		strings.Join(a.EnergySources, energySourceSep),
		a.Country + countryRegionSep + a.Region,
		a.AgreementID,
		a.OrderID,
		a.Data,
	}, agreementFieldSep)

	return c.encodeBytes(format.KindAgreement, []byte(text))
}

// DecodeAgreement unpacks an agreement produced by EncodeAgreement.
//
// Energy sources may be separated by either "," or "|". An empty region
// produces "---" before the agreement id, which is collapsed back into a
// single separator.
func (c *Coder) DecodeAgreement(s string) (Agreement, error) {
	data, err := encoding.DecodeHex(s)
	if err != nil {
		return Agreement{}, c.decodeFailed(format.KindAgreement, err)
	}

	if !utf8.Valid(data) {
		return Agreement{}, c.decodeFailed(format.KindAgreement,
			fmt.Errorf("%w: agreement is not valid UTF-8", errs.ErrDecode))
	}

	text := collapseEmptyRegion(encoding.CleanControlChars(string(data)))
	parts := strings.Split(text, agreementFieldSep)
	if len(parts) < agreementMinFields {
		return Agreement{}, c.decodeFailed(format.KindAgreement,
			fmt.Errorf("%w: agreement has %d fields, need at least %d", errs.ErrInvalidRecord, len(parts), agreementMinFields))
	}

	country, region, _ := strings.Cut(parts[2], countryRegionSep)

	a := Agreement{
		ProductType:   extractProductType(parts[0]),
		EnergySources: splitEnergySources(parts[1]),
		Country:       country,
		Region:        region,
		AgreementID:   parts[3],
		OrderID:       parts[4],
	}
	if len(parts) > agreementMinFields {
		a.Data = strings.Join(parts[agreementMinFields:], agreementFieldSep)
	}

	return a, nil
}

// collapseEmptyRegion replaces the first run of exactly three dashes with the
// field separator. Longer runs are empty fields and are left untouched.
func collapseEmptyRegion(text string) string {
	for i := 0; i+3 <= len(text); i++ {
		if text[i:i+3] != "---" {
			continue
		}

		runEnd := i + 3
		for runEnd < len(text) && text[runEnd] == '-' {
			runEnd++
		}

		if runEnd-i == 3 {
			return text[:i] + agreementFieldSep + text[i+3:]
		}

		i = runEnd - 1
	}

	return text
}

func splitEnergySources(field string) []string {
	if field == "" {
		return []string{}
	}

	return strings.Split(strings.ReplaceAll(field, energySourceAltSep, energySourceSep), energySourceSep)
}

// extractProductType trims any characters around the product type that are not
// letters, digits, '-' or '_'.
func extractProductType(field string) string {
	return strings.TrimFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_'
	})
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/metacoder/format"
	"github.com/arloliu/metacoder/record"
)

const (
	inputJSON = "json"
	inputYAML = "yaml"

	outputJSON = "json"
	outputYAML = "yaml"
	outputCBOR = "cbor"
)

// cborMode writes Core Deterministic Encoding, so equal records always
// produce identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error

	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("metacoder: CBOR encoder initialization failed: " + err.Error())
	}
}

func validateFormats(opts options) error {
	switch opts.input {
	case inputJSON, inputYAML:
	default:
		return usagef("unknown input format %q, want json or yaml", opts.input)
	}

	switch opts.output {
	case outputJSON, outputYAML, outputCBOR:
	default:
		return usagef("unknown output format %q, want json, yaml or cbor", opts.output)
	}

	return nil
}

// unmarshalInput decodes a record document into v. Unknown fields are
// rejected so that misspelled keys do not silently encode as empty fields.
func unmarshalInput(data []byte, inputFormat string, v any) error {
	switch inputFormat {
	case inputYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("parse yaml record: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("parse json record: %w", err)
		}
	}

	return nil
}

func encodeRecord(coder *record.Coder, kind format.RecordKind, data []byte, inputFormat string) (string, error) {
	switch kind {
	case format.KindAgreement:
		var a record.Agreement
		if err := unmarshalInput(data, inputFormat, &a); err != nil {
			return "", err
		}

		return coder.EncodeAgreement(a)
	case format.KindCertificate:
		var cert record.Certificate
		if err := unmarshalInput(data, inputFormat, &cert); err != nil {
			return "", err
		}

		return coder.EncodeCertificate(cert)
	case format.KindClaim:
		var cl record.Claim
		if err := unmarshalInput(data, inputFormat, &cl); err != nil {
			return "", err
		}

		return coder.EncodeClaim(cl)
	case format.KindStrings:
		var items []string
		if err := unmarshalInput(data, inputFormat, &items); err != nil {
			return "", err
		}

		return coder.EncodeStrings(items)
	default:
		return "", usagef("unsupported record kind %s", kind)
	}
}

func decodeRecord(coder *record.Coder, kind format.RecordKind, s string) (any, error) {
	switch kind {
	case format.KindAgreement:
		return coder.DecodeAgreement(s)
	case format.KindCertificate:
		return coder.DecodeCertificate(s)
	case format.KindClaim:
		return coder.DecodeClaim(s)
	case format.KindStrings:
		return coder.DecodeStrings(s)
	default:
		return nil, usagef("unsupported record kind %s", kind)
	}
}

// render writes v to w in the requested output format.
func render(w io.Writer, v any, outputFormat string) error {
	switch outputFormat {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}

		return enc.Close()
	case outputCBOR:
		data, err := cborMode.Marshal(v)
		if err != nil {
			return fmt.Errorf("write cbor: %w", err)
		}
		_, err = w.Write(data)

		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

		return nil
	}
}

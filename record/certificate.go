package record

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/format"
)

// Generator describes the production device a certificate was issued for.
type Generator struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	EnergySource      string   `json:"energySource" yaml:"energySource"`
	Region            string   `json:"region" yaml:"region"`
	Country           string   `json:"country" yaml:"country"`
	Capacity          *big.Int `json:"capacity" yaml:"capacity"`
	CommissioningDate *big.Int `json:"commissioningDate" yaml:"commissioningDate"`
}

// Certificate carries the generation facts minted into an energy attribute certificate.
//
// Numeric fields are unsigned 256-bit integers; nil encodes as zero.
type Certificate struct {
	Generator           Generator `json:"generator" yaml:"generator"`
	GenerationStartTime *big.Int  `json:"generationStartTime" yaml:"generationStartTime"`
	GenerationEndTime   *big.Int  `json:"generationEndTime" yaml:"generationEndTime"`
	ProductType         string    `json:"productType" yaml:"productType"`
	Data                string    `json:"data" yaml:"data"`
}

// generatorTuple mirrors the ABI tuple components. Field names and order must
// match the names the abi package derives from the tuple (abi.ToCamelCase).
type generatorTuple struct {
	Id                string //nolint:revive,stylecheck
	Name              string
	EnergySource      string
	Region            string
	Country           string
	CommissioningDate *big.Int
	Capacity          *big.Int
}

// certificateArgs is the fixed ABI schema:
//
//	(tuple(string id, string name, string energySource, string region,
//	       string country, uint256 commissioningDate, uint256 capacity),
//	 uint256 generationStartTime, uint256 generationEndTime,
//	 string productType, string data)
var certificateArgs abi.Arguments

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func init() {
	generatorType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "id", Type: "string"},
		{Name: "name", Type: "string"},
		{Name: "energySource", Type: "string"},
		{Name: "region", Type: "string"},
		{Name: "country", Type: "string"},
		{Name: "commissioningDate", Type: "uint256"},
		{Name: "capacity", Type: "uint256"},
	})
	if err != nil {
		panic("record: generator tuple type initialization failed: " + err.Error())
	}

	uint256Type, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic("record: uint256 type initialization failed: " + err.Error())
	}

	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		panic("record: string type initialization failed: " + err.Error())
	}

	certificateArgs = abi.Arguments{
		{Name: "generator", Type: generatorType},
		{Name: "generationStartTime", Type: uint256Type},
		{Name: "generationEndTime", Type: uint256Type},
		{Name: "productType", Type: stringType},
		{Name: "data", Type: stringType},
	}
}

// EncodeCertificate packs a certificate with standard contract ABI encoding.
//
// Returns errs.ErrInvalidField if a numeric field is negative or wider than 256 bits.
func (c *Coder) EncodeCertificate(cert Certificate) (string, error) {
	numbers := []struct {
		name  string
		value *big.Int
	}{
		{"generator.commissioningDate", cert.Generator.CommissioningDate},
		{"generator.capacity", cert.Generator.Capacity},
		{"generationStartTime", cert.GenerationStartTime},
		{"generationEndTime", cert.GenerationEndTime},
	}

	uints := make([]*big.Int, len(numbers))
	for i, n := range numbers {
		v, err := toUint256(n.name, n.value)
		if err != nil {
			return "", err
		}
		uints[i] = v
	}

	gen := generatorTuple{
		Id:                cert.Generator.ID,
		Name:              cert.Generator.Name,
		EnergySource:      cert.Generator.EnergySource,
		Region:            cert.Generator.Region,
		Country:           cert.Generator.Country,
		CommissioningDate: uints[0],
		Capacity:          uints[1],
	}

	data, err := certificateArgs.Pack(gen, uints[2], uints[3], cert.ProductType, cert.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
	}

	return c.encodeBytes(format.KindCertificate, data)
}

// DecodeCertificate unpacks a certificate produced by EncodeCertificate.
func (c *Coder) DecodeCertificate(s string) (Certificate, error) {
	data, err := encoding.DecodeHex(s)
	if err != nil {
		return Certificate{}, c.decodeFailed(format.KindCertificate, err)
	}

	values, err := certificateArgs.Unpack(data)
	if err != nil {
		return Certificate{}, c.decodeFailed(format.KindCertificate, fmt.Errorf("%w: %w", errs.ErrDecode, err))
	}

	var gen generatorTuple
	switch v := abi.ConvertType(values[0], new(generatorTuple)).(type) {
	case *generatorTuple:
		gen = *v
	case generatorTuple:
		gen = v
	default:
		return Certificate{}, c.decodeFailed(format.KindCertificate,
			fmt.Errorf("%w: unexpected generator type %T", errs.ErrDecode, values[0]))
	}

	start, startOK := values[1].(*big.Int)
	end, endOK := values[2].(*big.Int)
	productType, productOK := values[3].(string)
	extra, dataOK := values[4].(string)
	if !startOK || !endOK || !productOK || !dataOK {
		return Certificate{}, c.decodeFailed(format.KindCertificate,
			fmt.Errorf("%w: unexpected certificate field types", errs.ErrDecode))
	}

	return Certificate{
		Generator: Generator{
			ID:                gen.Id,
			Name:              gen.Name,
			EnergySource:      gen.EnergySource,
			Region:            gen.Region,
			Country:           gen.Country,
			Capacity:          gen.Capacity,
			CommissioningDate: gen.CommissioningDate,
		},
		GenerationStartTime: start,
		GenerationEndTime:   end,
		ProductType:         productType,
		Data:                extra,
	}, nil
}

func toUint256(name string, v *big.Int) (*big.Int, error) {
	if v == nil {
		return new(big.Int), nil
	}

	if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %s=%s is not an unsigned 256-bit integer", errs.ErrInvalidField, name, v)
	}

	return v, nil
}

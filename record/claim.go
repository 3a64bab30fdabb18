package record

import (
	"fmt"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/format"
)

// ClaimFieldCount is the number of positional fields in an encoded claim.
const ClaimFieldCount = 9

// Claim attests that certificates were retired on behalf of a beneficiary.
type Claim struct {
	Beneficiary         string `json:"beneficiary" yaml:"beneficiary"`
	Region              string `json:"region" yaml:"region"`
	CountryCode         string `json:"countryCode" yaml:"countryCode"`
	PeriodStartDate     string `json:"periodStartDate" yaml:"periodStartDate"`
	PeriodEndDate       string `json:"periodEndDate" yaml:"periodEndDate"`
	Purpose             string `json:"purpose" yaml:"purpose"`
	ConsumptionEntityID string `json:"consumptionEntityID" yaml:"consumptionEntityID"`
	ProofID             string `json:"proofID" yaml:"proofID"`
	Data                string `json:"data" yaml:"data"`
}

// fields returns the claim in wire order.
func (cl Claim) fields() []string {
	return []string{
		cl.Beneficiary,
		cl.Region,
		cl.CountryCode,
		cl.PeriodStartDate,
		cl.PeriodEndDate,
		cl.Purpose,
		cl.ConsumptionEntityID,
		cl.ProofID,
		cl.Data,
	}
}

func claimFromFields(f []string) Claim {
	return Claim{
		Beneficiary:         f[0],
		Region:              f[1],
		CountryCode:         f[2],
		PeriodStartDate:     f[3],
		PeriodEndDate:       f[4],
		Purpose:             f[5],
		ConsumptionEntityID: f[6],
		ProofID:             f[7],
		Data:                f[8],
	}
}

// EncodeClaim packs the nine claim fields, in declaration order, with the
// string array codec.
func (c *Coder) EncodeClaim(cl Claim) (string, error) {
	return c.encodeFields(format.KindClaim, cl.fields())
}

// DecodeClaim unpacks a claim produced by EncodeClaim.
//
// Returns errs.ErrInvalidRecord if the buffer does not hold exactly nine items.
func (c *Coder) DecodeClaim(s string) (Claim, error) {
	items, err := encoding.DecodeStringArray(s)
	if err != nil {
		return Claim{}, c.decodeFailed(format.KindClaim, err)
	}

	if len(items) != ClaimFieldCount {
		return Claim{}, c.decodeFailed(format.KindClaim,
			fmt.Errorf("%w: claim has %d fields, want %d", errs.ErrInvalidRecord, len(items), ClaimFieldCount))
	}

	return claimFromFields(items), nil
}

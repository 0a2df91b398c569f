// Package cardinfo checks a card number with the Luhn algorithm and detects
// its network brand. Results are immutable values; nothing is stored or sent
// anywhere, and the PAN is masked whenever a CardInfo is printed or logged.
package cardinfo

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/alovak/cardinfo/internal/cardgen"
)

// CardInfo holds a normalized card number together with the fields entered
// alongside it. Brand and validity are derived once in New.
type CardInfo struct {
	number       string
	securityCode string
	expiryMonth  string
	expiryYear   string
	holderName   string
	brand        Brand
	valid        bool
}

// New normalizes number (spaces and hyphens removed), runs the Luhn check
// and detects the brand. securityCode, expiryMonth, expiryYear and holderName
// are stored as given.
//
// A number that still contains non-digit characters after normalization is
// rejected with an error wrapping ErrInvalidFormat.
func New(number, securityCode, expiryMonth, expiryYear, holderName string) (CardInfo, error) {
	normalized := cardgen.NormalizePAN(number)

	valid, err := Luhn(normalized)
	if err != nil {
		return CardInfo{}, err
	}

	return CardInfo{
		number:       normalized,
		securityCode: securityCode,
		expiryMonth:  expiryMonth,
		expiryYear:   expiryYear,
		holderName:   holderName,
		brand:        DetectBrand(normalized),
		valid:        valid,
	}, nil
}

func (c CardInfo) Number() string       { return c.number }
func (c CardInfo) SecurityCode() string { return c.securityCode }
func (c CardInfo) ExpiryMonth() string  { return c.expiryMonth }
func (c CardInfo) ExpiryYear() string   { return c.expiryYear }
func (c CardInfo) HolderName() string   { return c.holderName }
func (c CardInfo) Brand() Brand         { return c.brand }
func (c CardInfo) Valid() bool          { return c.valid }

// Masked returns the number with everything but the first six and last four
// digits replaced by '*'.
func (c CardInfo) Masked() string { return cardgen.MaskPAN(c.number) }

func (c CardInfo) Last4() string { return cardgen.LastN(c.number, 4) }

// String never includes the full number, the security code or the holder name.
func (c CardInfo) String() string {
	return fmt.Sprintf("%s %s valid=%t", c.brand.Label(), c.Masked(), c.valid)
}

// LogValue keeps sensitive fields out of structured logs.
func (c CardInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("pan", c.Masked()),
		slog.String("brand", c.brand.Label()),
		slog.Bool("valid", c.valid),
	)
}

package cardinfo

import (
	"fmt"
	"strings"
)

// Brand is the card network inferred from the number's prefix and length.
type Brand int

const (
	Unknown Brand = iota
	Visa
	Mastercard
	Elo
	HiperCard
	AmericanExpress
	Discover
	Diners
)

var brandLabels = [...]string{
	Unknown:         "Unknown",
	Visa:            "Visa",
	Mastercard:      "Mastercard",
	Elo:             "Elo",
	HiperCard:       "HiperCard",
	AmericanExpress: "American Express",
	Discover:        "Discover",
	Diners:          "Diners",
}

// Brands returns every brand in declaration order.
func Brands() []Brand {
	out := make([]Brand, 0, len(brandLabels))
	for b := range brandLabels {
		out = append(out, Brand(b))
	}
	return out
}

// Label returns the display name of the brand.
func (b Brand) Label() string {
	if b < 0 || int(b) >= len(brandLabels) {
		return brandLabels[Unknown]
	}
	return brandLabels[b]
}

func (b Brand) String() string { return b.Label() }

func (b Brand) MarshalText() ([]byte, error) {
	return []byte(b.Label()), nil
}

func (b *Brand) UnmarshalText(text []byte) error {
	parsed, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBrand resolves a display label ("American Express") or identifier
// ("AmericanExpress"), ignoring case.
func ParseBrand(s string) (Brand, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for b, label := range brandLabels {
		if strings.ToLower(strings.ReplaceAll(label, " ", "")) == key {
			return Brand(b), nil
		}
	}
	return Unknown, fmt.Errorf("unknown card brand %q", s)
}

package cardinfo

import (
	"regexp"
	"strings"
)

// maxLenVisaMastercard caps the length accepted for Visa and Mastercard;
// longer numbers with a matching prefix are Unknown.
const maxLenVisaMastercard = 16

type brandRule struct {
	brand   Brand
	pattern *regexp.Regexp
	maxLen  int
}

func (r brandRule) match(number string) bool {
	if r.maxLen > 0 && len(number) > r.maxLen {
		return false
	}
	return r.pattern.MatchString(number)
}

// brandRules are evaluated in order and the first match wins. Elo shares
// prefixes with Visa, Discover and Mastercard, so it must stay first.
var brandRules = []brandRule{
	{
		brand: Elo,
		pattern: regexp.MustCompile(`^(4011(78|79)|43(1274|8935)|45(1416|7393|763(1|2))|` +
			`50(4175|6699|67[0-7][0-9]|9000)|50(9[0-9][0-9][0-9])|627780|63(6297|6368)|` +
			`650(03([^4])|04([0-9])|05(0|1)|05([7-9])|06([0-9])|07([0-9])|08([0-9])|` +
			`4([0-3][0-9]|8[5-9]|9[0-9])|5([0-9][0-9]|3[0-8])|9([0-6][0-9]|7[0-8])|` +
			`7([0-2][0-9])|541|700|720|727|901)|` +
			`65165([2-9])|6516([6-7][0-9])|65500([0-9])|6550([0-5][0-9])|655021|` +
			`65505([6-7])|6516([8-9][0-9])|65170([0-4]))`),
	},
	{
		brand:   Discover,
		pattern: regexp.MustCompile(`^6(?:011|5[0-9]{2})`),
	},
	{
		brand:   HiperCard,
		pattern: regexp.MustCompile(`^606282|^3841[046]0`),
	},
	{
		brand:   AmericanExpress,
		pattern: regexp.MustCompile(`^3[47]`),
	},
	{
		brand:   Diners,
		pattern: regexp.MustCompile(`^3(?:0[0-5]|[689])`),
	},
	{
		brand: Mastercard,
		pattern: regexp.MustCompile(`^((5(([1-2]|[4-5])|0((1|4|6))|3(0(4((0|[2-9]))|([0-3]|[5-9]))|[1-9])))|` +
			`((508116))|((502121))|((589916))|(2)|(67)|(506387))`),
		maxLen: maxLenVisaMastercard,
	},
	{
		brand:   Visa,
		pattern: regexp.MustCompile(`^4`),
		maxLen:  maxLenVisaMastercard,
	},
}

// DetectBrand classifies a normalized card number. It never fails: numbers
// that match no rule, including empty or blank input, are Unknown.
func DetectBrand(number string) Brand {
	if strings.TrimSpace(number) == "" {
		return Unknown
	}
	for _, rule := range brandRules {
		if rule.match(number) {
			return rule.brand
		}
	}
	return Unknown
}

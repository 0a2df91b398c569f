package cardinfo

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidFormat is returned when a card number still contains anything
// other than ASCII digits after spaces and hyphens are removed.
var ErrInvalidFormat = errors.New("invalid card number format")

// Luhn reports whether number passes the Luhn (mod 10) checksum.
//
// Digits are walked from the rightmost one; every second digit is doubled and
// reduced by 9 when the result exceeds 9. An empty number sums to zero and is
// therefore reported as valid.
func Luhn(number string) (bool, error) {
	sum, alt := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			r, size := utf8.DecodeLastRuneInString(number[:i+1])
			return false, fmt.Errorf("%w: non-digit %q at position %d", ErrInvalidFormat, r, i+1-size)
		}
		d := int(c - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0, nil
}

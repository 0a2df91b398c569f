// Package expiry converts between the expiry layouts used on the wire and on
// the card face. It only reshapes strings; whether a date is in the past is
// not its concern.
package expiry

import (
	"fmt"
	"strings"
)

// SplitYYMM splits an ISO 8583 DE14 value ("YYMM") into month and year.
func SplitYYMM(yymm string) (month, year string, err error) {
	if err := checkLayout(yymm); err != nil {
		return "", "", err
	}
	return yymm[2:], yymm[:2], nil
}

// JoinYYMM builds a DE14 value from a month and a two or four digit year.
func JoinYYMM(month, year string) (string, error) {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if len(month) == 1 {
		month = "0" + month
	}
	if len(year) == 4 {
		year = year[2:]
	}
	yymm := year + month
	if err := checkLayout(yymm); err != nil {
		return "", err
	}
	return yymm, nil
}

// CardFace returns "MM/YY" for display, using the last two characters of
// year. It returns "" when either part is missing.
func CardFace(month, year string) string {
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)
	if month == "" || year == "" {
		return ""
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return month + "/" + year
}

func checkLayout(yymm string) error {
	if len(yymm) != 4 {
		return fmt.Errorf("expiry must be YYMM (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if yymm[i] < '0' || yymm[i] > '9' {
			return fmt.Errorf("expiry must be digits: YYMM")
		}
	}
	return nil
}

package cardinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   Brand
	}{
		{"empty", "", Unknown},
		{"blank", "   ", Unknown},

		{"visa 16 digits", "4111111111111111", Visa},
		{"visa 13 digits", "4222222222222", Visa},
		{"visa 17 digits", "41111111111111111", Unknown},

		{"mastercard 51", "5105105105105100", Mastercard},
		{"mastercard 55", "5555555555554444", Mastercard},
		{"mastercard 2-series", "2221000000000000", Mastercard},
		{"mastercard any 2 prefix", "2000000000000000", Mastercard},
		{"mastercard 67", "6700000000000000", Mastercard},
		{"mastercard 501", "5010000000000000", Mastercard},
		{"mastercard 504", "5041000000000000", Mastercard},
		{"mastercard 506", "5060000000000000", Mastercard},
		{"mastercard 53040", "5304000000000000", Mastercard},
		{"mastercard 53042", "5304200000000000", Mastercard},
		{"mastercard 5305", "5305000000000000", Mastercard},
		{"mastercard literal 589916", "5899160000000000", Mastercard},
		{"53041 is not mastercard", "5304100000000000", Unknown},
		{"mastercard 17 digits", "55555555555544441", Unknown},
		{"503 is not mastercard", "5030000000000000", Unknown},

		{"elo 636297", "6362970000457013", Elo},
		{"elo 636368", "6363680000457014", Elo},
		{"elo over visa 401178", "4011780000000000", Elo},
		{"elo over visa 438935", "4389350000000000", Elo},
		{"elo over visa 457632", "4576320000000000", Elo},
		{"elo over mastercard 5067xx", "5067000000000000", Elo},
		{"elo 509xxx", "5091230000000000", Elo},
		{"elo 627780", "6277800000000000", Elo},
		{"elo over discover 65003x", "6500310000000000", Elo},
		{"elo over discover 655021", "6550210000000000", Elo},
		{"elo 65165x", "6516520000000000", Elo},
		{"elo 65170x", "6517040000000000", Elo},
		{"elo 650541", "6505410000000000", Elo},
		{"elo long number keeps elo", "63629700004570131234", Elo},

		{"discover 6011", "6011111111111117", Discover},
		{"discover 65xx", "6521000000000000", Discover},
		{"65003 then 4 falls to discover", "6500340000000000", Discover},
		{"65170 then 5 falls to discover", "6517050000000000", Discover},
		{"discover ignores length", "60111111111111111111", Discover},

		{"hipercard 606282", "6062826786276634", HiperCard},
		{"hipercard 384100", "3841001111222233", HiperCard},
		{"hipercard 384140", "3841401111222233", HiperCard},
		{"hipercard 384160", "3841601111222233", HiperCard},
		{"38411 falls to diners", "3841101111222233", Diners},

		{"amex 34", "340000000000009", AmericanExpress},
		{"amex 37", "378282246310005", AmericanExpress},

		{"diners 300", "30000000000004", Diners},
		{"diners 305", "30569309025904", Diners},
		{"306 is not diners", "30600000000000", Unknown},
		{"diners 36", "36000000000008", Diners},
		{"diners 38", "38520000023237", Diners},
		{"diners 39", "39000000000000", Diners},

		{"unknown prefix 1", "1234567890123456", Unknown},
		{"unknown prefix 9", "9000000000000000", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBrand(tt.number))
		})
	}
}

func TestDetectBrand_RuleOrder(t *testing.T) {
	order := make([]Brand, 0, len(brandRules))
	for _, r := range brandRules {
		order = append(order, r.brand)
	}
	assert.Equal(t, []Brand{Elo, Discover, HiperCard, AmericanExpress, Diners, Mastercard, Visa}, order)
}

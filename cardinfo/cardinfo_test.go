package cardinfo_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alovak/cardinfo/cardinfo"
)

func TestNew(t *testing.T) {
	card, err := cardinfo.New("4532 0151-1283 0366", "123", "09", "2030", "JOHN DOE")
	require.NoError(t, err)

	require.Equal(t, "4532015112830366", card.Number())
	require.Equal(t, "123", card.SecurityCode())
	require.Equal(t, "09", card.ExpiryMonth())
	require.Equal(t, "2030", card.ExpiryYear())
	require.Equal(t, "JOHN DOE", card.HolderName())
	require.Equal(t, cardinfo.Visa, card.Brand())
	require.True(t, card.Valid())
}

func TestNew_AncillaryFieldsAreNotValidated(t *testing.T) {
	card, err := cardinfo.New("4111111111111111", "not-a-cvv", "13", "yesterday", "")
	require.NoError(t, err)
	require.Equal(t, "not-a-cvv", card.SecurityCode())
	require.Equal(t, "13", card.ExpiryMonth())
	require.Equal(t, "yesterday", card.ExpiryYear())
	require.True(t, card.Valid())
}

func TestNew_InvalidChecksum(t *testing.T) {
	card, err := cardinfo.New("4532015112830367", "", "", "", "")
	require.NoError(t, err)
	require.False(t, card.Valid())
	require.Equal(t, cardinfo.Visa, card.Brand())
}

func TestNew_LengthBoundaryForVisa(t *testing.T) {
	card, err := cardinfo.New("4111111111111111", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, cardinfo.Visa, card.Brand())

	card, err = cardinfo.New("41111111111111111", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, cardinfo.Unknown, card.Brand())
}

func TestNew_BrandPrecedence(t *testing.T) {
	card, err := cardinfo.New("2221000000000000", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, cardinfo.Mastercard, card.Brand())

	card, err = cardinfo.New("6362 9700 0045 7013", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, cardinfo.Elo, card.Brand())
}

// Empty input keeps the summation identity: no digits sum to 0, which is
// divisible by 10.
func TestNew_Empty(t *testing.T) {
	card, err := cardinfo.New("", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, "", card.Number())
	require.Equal(t, cardinfo.Unknown, card.Brand())
	require.True(t, card.Valid())

	card, err = cardinfo.New(" - - ", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, "", card.Number())
	require.Equal(t, cardinfo.Unknown, card.Brand())
	require.True(t, card.Valid())
}

func TestNew_MalformedInput(t *testing.T) {
	card, err := cardinfo.New("12ab", "", "", "", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, cardinfo.ErrInvalidFormat))
	require.Equal(t, cardinfo.CardInfo{}, card)

	_, err = cardinfo.New("4111\t1111\t1111\t1111", "", "", "", "")
	require.ErrorIs(t, err, cardinfo.ErrInvalidFormat)
}

func TestCardInfo_DoesNotLeakPAN(t *testing.T) {
	card, err := cardinfo.New("4532015112830366", "321", "09", "2030", "JOHN DOE")
	require.NoError(t, err)

	require.Equal(t, "453201******0366", card.Masked())
	require.Equal(t, "0366", card.Last4())

	for _, out := range []string{card.String(), fmt.Sprint(card), fmt.Sprintf("%v", card)} {
		require.NotContains(t, out, "4532015112830366")
		require.NotContains(t, out, "321")
		require.NotContains(t, out, "JOHN DOE")
		require.Contains(t, out, "453201******0366")
	}

	attrs := card.LogValue().Group()
	require.Len(t, attrs, 3)
	for _, a := range attrs {
		require.NotContains(t, a.Value.String(), "4532015112830366")
	}
	require.Equal(t, "pan", attrs[0].Key)
	require.Equal(t, "453201******0366", attrs[0].Value.String())
	require.Equal(t, "Visa", attrs[1].Value.String())
	require.True(t, attrs[2].Value.Bool())
}

func TestNew_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			card, err := cardinfo.New("5555 5555 5555 4444", "", "", "", "")
			if err != nil || card.Brand() != cardinfo.Mastercard || !card.Valid() {
				t.Errorf("unexpected result %v err=%v", card, err)
			}
		}()
	}
	wg.Wait()
}

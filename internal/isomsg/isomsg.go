// Package isomsg reads card data out of ISO 8583:1987 messages (ASCII
// encoding) and runs it through cardinfo.
package isomsg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"

	"github.com/alovak/cardinfo/cardinfo"
	"github.com/alovak/cardinfo/internal/expiry"
)

const (
	fieldPAN          = 2
	fieldSTAN         = 11
	fieldExpiry       = 14
	fieldResponseCode = 39
	fieldResponseData = 44
)

// Response codes set in DE39 of a reply.
const (
	CodeApproved      = "00"
	CodeInvalidCard   = "14"
	CodeNoSuchIssuer  = "15"
	CodeFormatError   = "30"
	CodeSystemFailure = "96"
)

// Spec is the message spec every message in this package is packed with.
var Spec = specs.Spec87ASCII

var (
	ErrMissingPAN = errors.New("message has no primary account number (DE2)")
	// ErrMalformed marks a message that cannot be unpacked or whose fields
	// do not have the expected layout.
	ErrMalformed = errors.New("malformed iso8583 message")
)

// Inspect unpacks raw and builds a CardInfo from DE2 and, when present, DE14.
func Inspect(raw []byte) (cardinfo.CardInfo, error) {
	msg := iso8583.NewMessage(Spec)
	if err := msg.Unpack(raw); err != nil {
		return cardinfo.CardInfo{}, fmt.Errorf("%w: unpacking message: %w", ErrMalformed, err)
	}
	return InspectMessage(msg)
}

// InspectMessage builds a CardInfo from an already unpacked message.
func InspectMessage(msg *iso8583.Message) (cardinfo.CardInfo, error) {
	fields := msg.GetFields()

	panField, ok := fields[fieldPAN]
	if !ok {
		return cardinfo.CardInfo{}, ErrMissingPAN
	}
	pan, err := panField.String()
	if err != nil {
		return cardinfo.CardInfo{}, fmt.Errorf("%w: reading DE2: %w", ErrMalformed, err)
	}
	if pan == "" {
		return cardinfo.CardInfo{}, ErrMissingPAN
	}

	var month, year string
	if expField, ok := fields[fieldExpiry]; ok {
		yymm, err := expField.String()
		if err != nil {
			return cardinfo.CardInfo{}, fmt.Errorf("%w: reading DE14: %w", ErrMalformed, err)
		}
		month, year, err = expiry.SplitYYMM(yymm)
		if err != nil {
			return cardinfo.CardInfo{}, fmt.Errorf("%w: DE14: %w", ErrMalformed, err)
		}
	}

	card, err := cardinfo.New(pan, "", month, year, "")
	if err != nil {
		return cardinfo.CardInfo{}, fmt.Errorf("DE2: %w", err)
	}
	return card, nil
}

// Pack builds a message carrying only the MTI, DE2 and (optionally) DE14.
func Pack(mti, pan, expiryYYMM string) ([]byte, error) {
	msg, err := NewRequest(mti, "", pan, expiryYYMM)
	if err != nil {
		return nil, err
	}
	packed, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("packing message: %w", err)
	}
	return packed, nil
}

// NewRequest builds an unpacked message with DE2, and DE11 and DE14 when
// they are not empty.
func NewRequest(mti, stan, pan, expiryYYMM string) (*iso8583.Message, error) {
	msg := iso8583.NewMessage(Spec)
	msg.MTI(mti)
	if err := msg.Field(fieldPAN, pan); err != nil {
		return nil, fmt.Errorf("setting DE2: %w", err)
	}
	if stan != "" {
		if err := msg.Field(fieldSTAN, stan); err != nil {
			return nil, fmt.Errorf("setting DE11: %w", err)
		}
	}
	if expiryYYMM != "" {
		if err := msg.Field(fieldExpiry, expiryYYMM); err != nil {
			return nil, fmt.Errorf("setting DE14: %w", err)
		}
	}
	return msg, nil
}

// ResponseCode maps the outcome of InspectMessage to a DE39 value.
func ResponseCode(card cardinfo.CardInfo, err error) string {
	switch {
	case errors.Is(err, ErrMissingPAN), errors.Is(err, ErrMalformed), errors.Is(err, cardinfo.ErrInvalidFormat):
		return CodeFormatError
	case err != nil:
		return CodeSystemFailure
	case !card.Valid():
		return CodeInvalidCard
	case card.Brand() == cardinfo.Unknown:
		return CodeNoSuchIssuer
	}
	return CodeApproved
}

// Reply builds the response to req: the response MTI, DE11 echoed back, DE39
// from ResponseCode and, when a card was read, its brand label in DE44.
func Reply(req *iso8583.Message, card cardinfo.CardInfo, inspectErr error) (*iso8583.Message, error) {
	mti, err := req.GetMTI()
	if err != nil {
		return nil, fmt.Errorf("reading MTI: %w", err)
	}
	respMTI, err := ResponseMTI(mti)
	if err != nil {
		return nil, err
	}

	resp := iso8583.NewMessage(Spec)
	resp.MTI(respMTI)

	if stanField, ok := req.GetFields()[fieldSTAN]; ok {
		stan, err := stanField.String()
		if err != nil {
			return nil, fmt.Errorf("reading DE11: %w", err)
		}
		if err := resp.Field(fieldSTAN, stan); err != nil {
			return nil, fmt.Errorf("setting DE11: %w", err)
		}
	}

	if err := resp.Field(fieldResponseCode, ResponseCode(card, inspectErr)); err != nil {
		return nil, fmt.Errorf("setting DE39: %w", err)
	}
	if inspectErr == nil {
		if err := resp.Field(fieldResponseData, card.Brand().Label()); err != nil {
			return nil, fmt.Errorf("setting DE44: %w", err)
		}
	}
	return resp, nil
}

// ResponseMTI turns a request MTI such as 0100 into its response, 0110.
func ResponseMTI(mti string) (string, error) {
	if len(mti) != 4 || mti[2] < '0' || mti[2] > '8' || mti[2]%2 != 0 {
		return "", fmt.Errorf("%w: %q is not a request MTI", ErrMalformed, mti)
	}
	return mti[:2] + string(mti[2]+1) + mti[3:], nil
}

// ReadMessageLength reads the 2-byte big-endian length header that precedes
// every message on the wire.
func ReadMessageLength(r io.Reader) (int, error) {
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return 0, err
	}
	return int(length), nil
}

func WriteMessageLength(w io.Writer, length int) (int, error) {
	if length > 0xFFFF {
		return 0, fmt.Errorf("message length %d does not fit the header", length)
	}
	if err := binary.Write(w, binary.BigEndian, uint16(length)); err != nil {
		return 0, err
	}
	return 2, nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/alovak/cardinfo/cardinfo"
	"github.com/alovak/cardinfo/inspector/models"
	"github.com/alovak/cardinfo/internal/cardgen"
	"github.com/alovak/cardinfo/internal/expiry"
	"github.com/alovak/cardinfo/internal/inspectorclient"
	"github.com/alovak/cardinfo/internal/isomsg"
)

var (
	flagNumber   = flag.String("number", "", "card number, spaces and hyphens allowed")
	flagCVV      = flag.String("cvv", "", "security code (carried, not validated)")
	flagExpMonth = flag.String("exp-month", "", "expiry month (carried, not validated)")
	flagExpYear  = flag.String("exp-year", "", "expiry year (carried, not validated)")
	flagName     = flag.String("name", "", "cardholder name")
	flagServer   = flag.String("server", "", "inspector base URL; inspect remotely instead of locally")
	flagGenerate = flag.String("generate", "", "generate a Luhn-valid test PAN starting with this BIN (1-9 digits)")
	flagLength   = flag.Int("length", 16, "total PAN length for -generate (13-19)")
	flagJSON     = flag.Bool("json", false, "print JSON")
	flagVerbose  = flag.Bool("verbose", false, "print full PAN (otherwise masked)")
	flagISO8583  = flag.Bool("iso8583", false, "pack the card into an ISO 8583 0100 message (DE2, DE14) and inspect that")
	flagBrands   = flag.Bool("brands", false, "list the supported brands and exit")
)

type result struct {
	Number   string         `json:"number"`
	Brand    cardinfo.Brand `json:"brand"`
	Valid    bool           `json:"valid"`
	CardFace string         `json:"card_face,omitempty"`
}

func main() {
	flag.Parse()
	run(os.Stdout, os.Stderr)
}

func run(stdout, stderr io.Writer) {
	if *flagBrands {
		must(listBrands(stdout, *flagServer))
		return
	}

	generated := false
	if *flagGenerate != "" {
		pan := must1(cardgen.GeneratePAN(*flagGenerate, *flagLength, ""))
		*flagNumber = pan
		generated = true
	}
	if *flagNumber == "" {
		fail("-number or -generate is required")
	}

	var res result
	switch {
	case *flagISO8583:
		res = inspectISO8583(*flagServer)
	case *flagServer != "":
		res = inspectRemote(*flagServer)
	default:
		res = inspectLocal()
	}

	// a generated PAN is a throwaway test number, so it is shown in full
	if generated {
		fmt.Fprintln(stderr, "WARNING: printing full PAN")
		res.Number = *flagNumber
	}

	printResult(stdout, res)
}

func newClient(base string) *inspectorclient.Client {
	return inspectorclient.New(base, &http.Client{Timeout: 10 * time.Second})
}

func inspectLocal() result {
	card := must1(cardinfo.New(*flagNumber, *flagCVV, *flagExpMonth, *flagExpYear, *flagName))
	return cardResult(card)
}

func cardResult(card cardinfo.CardInfo) result {
	number := card.Masked()
	if *flagVerbose {
		number = card.Number()
	}
	return result{
		Number:   number,
		Brand:    card.Brand(),
		Valid:    card.Valid(),
		CardFace: expiry.CardFace(card.ExpiryMonth(), card.ExpiryYear()),
	}
}

// inspectISO8583 packs the card into a 0100 and inspects the packed message,
// remotely when base is set.
func inspectISO8583(base string) result {
	var yymm string
	if *flagExpMonth != "" || *flagExpYear != "" {
		yymm = must1(expiry.JoinYYMM(*flagExpMonth, *flagExpYear))
	}
	raw := must1(isomsg.Pack("0100", cardgen.NormalizePAN(*flagNumber), yymm))

	if base == "" {
		return cardResult(must1(isomsg.Inspect(raw)))
	}

	inspection := must1(newClient(base).InspectISO8583(context.Background(), raw))
	return inspectionResult(inspection)
}

// inspectRemote only ever sees the masked number back from the server, so
// -verbose has no effect here.
func inspectRemote(base string) result {
	inspection := must1(newClient(base).Inspect(context.Background(), models.InspectRequest{
		Number:       *flagNumber,
		SecurityCode: *flagCVV,
		ExpiryMonth:  *flagExpMonth,
		ExpiryYear:   *flagExpYear,
		HolderName:   *flagName,
	}))
	return inspectionResult(inspection)
}

func inspectionResult(inspection *models.Inspection) result {
	return result{
		Number:   inspection.Number,
		Brand:    inspection.Brand,
		Valid:    inspection.Valid,
		CardFace: inspection.CardFace,
	}
}

// listBrands prints the brands the server knows about, or the local list
// when base is empty.
func listBrands(w io.Writer, base string) error {
	var brands []models.BrandInfo
	if base != "" {
		var err error
		brands, err = newClient(base).Brands(context.Background())
		if err != nil {
			return fmt.Errorf("listing brands: %w", err)
		}
	} else {
		for _, b := range cardinfo.Brands() {
			brands = append(brands, models.BrandInfo{ID: int(b), Label: b.Label()})
		}
	}

	if *flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(brands)
	}
	for _, b := range brands {
		fmt.Fprintf(w, "%d\t%s\n", b.ID, b.Label)
	}
	return nil
}

func printResult(w io.Writer, res result) {
	if *flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		must(enc.Encode(res))
		return
	}
	fmt.Fprintf(w, "PAN: %s\nBRAND: %s\nVALID: %t\n", res.Number, res.Brand.Label(), res.Valid)
	if res.CardFace != "" {
		fmt.Fprintf(w, "EXP(card-face): %s\n", res.CardFace)
	}
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

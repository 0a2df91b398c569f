package models

import "github.com/alovak/cardinfo/cardinfo"

type InspectRequest struct {
	Number       string `json:"number"`
	SecurityCode string `json:"security_code"`
	ExpiryMonth  string `json:"expiry_month"`
	ExpiryYear   string `json:"expiry_year"`
	HolderName   string `json:"holder_name"`
}

// Inspection is what the API returns for a card. Number is masked; the
// security code and holder name are not echoed back.
type Inspection struct {
	ID     string         `json:"id"`
	Number string         `json:"number"`
	Last4  string         `json:"last4"`
	Brand  cardinfo.Brand `json:"brand"`
	Valid  bool           `json:"valid"`
	// CardFace is the expiry as printed on the card, "MM/YY"
	CardFace string `json:"card_face,omitempty"`
}

type BrandInfo struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

package models

import (
	"encoding/json"
	"fmt"
)

type listingEnvelope struct {
	Variant string          `json:"variant"`
	Listing json.RawMessage `json:"listing"`
}

// MarshalListing wraps a listing in a variant envelope so the concrete type
// is recoverable on the way back in.
func MarshalListing(l Listing) ([]byte, error) {
	if l == nil {
		return nil, &NullArgumentError{Name: "listing"}
	}
	body, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return json.Marshal(listingEnvelope{Variant: l.Variant(), Listing: body})
}

// UnmarshalListing decodes a variant envelope back into the matching
// aggregate shape. Every tracked field present in the payload comes back
// with its bit set.
func UnmarshalListing(data []byte) (Listing, error) {
	var env listingEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var listing Listing
	switch env.Variant {
	case VariantResidential:
		listing = &ResidentialListing{}
	case VariantRental:
		listing = &RentalListing{}
	case VariantRural:
		listing = &RuralListing{}
	case VariantLand:
		listing = &LandListing{}
	default:
		return nil, fmt.Errorf("unknown listing variant: %q", env.Variant)
	}

	if err := json.Unmarshal(env.Listing, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

package rea

import (
	"strconv"
	"strings"

	"rea_ingest/models"
)

// The placeholder forced onto suppressed sale price text. The typo is in
// the source schema's published behavior; keep it verbatim.
const withheldPriceText = "Address Witheld"

func extractResidential(listing *models.ResidentialListing, root *node) error {
	pricing, err := extractSalePricing(root)
	if err != nil {
		return err
	}
	listing.Pricing = pricing
	return nil
}

func extractSalePricing(root *node) (*models.SalePricing, error) {
	pricing := &models.SalePricing{}

	price, _ := strconv.ParseFloat(root.value("price"), 64)
	pricing.SalePrice.Set(price)

	priceText := root.value("priceView")
	if display := root.childAttr("priceView", "display"); strings.TrimSpace(display) != "" {
		show, err := parseYesNo(display)
		if err != nil {
			return nil, err
		}
		if !show {
			priceText = withheldPriceText
		}
	}
	pricing.SalePriceText.Set(priceText)

	isUnderOffer := false
	if v := root.childAttr("underOffer", "value"); strings.TrimSpace(v) != "" {
		parsed, err := parseYesNo(v)
		if err != nil {
			return nil, err
		}
		isUnderOffer = parsed
	}
	pricing.IsUnderOffer.Set(isUnderOffer)

	return pricing, nil
}

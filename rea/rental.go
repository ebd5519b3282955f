package rea

import (
	"strconv"
	"strings"

	"rea_ingest/models"
)

func extractRental(listing *models.RentalListing, root *node) error {
	listing.Pricing = extractRentalPricing(root)
	return nil
}

func extractRentalPricing(root *node) *models.RentalPricing {
	pricing := &models.RentalPricing{}

	// A fragment may carry several rent entries (weekly, monthly, ...).
	// Only the first weekly one counts; every other cadence is ignored
	// even when present and parseable.
	for _, rent := range root.children("rent") {
		period := strings.ToUpper(strings.TrimSpace(rent.attrOr("period", "")))
		if period != "WEEK" && period != "WEEKLY" {
			continue
		}
		if price, err := strconv.ParseFloat(rent.text(), 64); err == nil {
			pricing.RentalPrice.Set(price)
			pricing.PaymentFrequencyType.Set(models.PaymentFrequencyWeekly)
		}
		break
	}

	if v, ok := root.lookup("priceView"); ok {
		pricing.RentalPriceText.Set(v)
	}
	if _, ok := root.lookup("bond"); ok {
		bond, _ := strconv.ParseFloat(root.value("bond"), 64)
		pricing.Bond.Set(bond)
	}
	if v := root.value("dateAvailable"); v != "" {
		if available, ok := parseDateTime(v); ok {
			pricing.AvailableOn.Set(available)
		}
	}

	return pricing
}

package rea

import (
	"errors"
	"testing"
	"time"

	"rea_ingest/models"
)

func findListing(t *testing.T, result *Result, variant string) models.Listing {
	t.Helper()
	for _, listing := range result.Listings {
		if listing.Variant() == variant {
			return listing
		}
	}
	t.Fatalf("no %s listing in result", variant)
	return nil
}

func TestConvert_PropertyList_Residential(t *testing.T) {
	result, err := Convert(loadFixture(t, "property_list.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if len(result.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(result.Listings))
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skips, got %d", len(result.Skipped))
	}

	listing, ok := findListing(t, result, models.VariantResidential).(*models.ResidentialListing)
	if !ok {
		t.Fatalf("expected *models.ResidentialListing")
	}
	c := listing.Common()

	if c.ID.Value() != "Residential-Current-ABCD1234" {
		t.Fatalf("unexpected id %q", c.ID.Value())
	}
	if c.AgencyID.Value() != "XNWXNW" {
		t.Fatalf("unexpected agency id %q", c.AgencyID.Value())
	}
	if c.StatusType.Value() != models.StatusCurrent {
		t.Fatalf("unexpected status %q", c.StatusType.Value())
	}
	if c.PropertyType.Value() != models.PropertyHouse {
		t.Fatalf("unexpected property type %q", c.PropertyType.Value())
	}
	if c.Title.Value() != "SHOW STOPPER!!!" {
		t.Fatalf("unexpected title %q", c.Title.Value())
	}
	wantUpdated := time.Date(2009, 1, 1, 12, 30, 0, 0, time.UTC)
	if !c.UpdatedOn.Value().Equal(wantUpdated) {
		t.Fatalf("unexpected updatedOn %v", c.UpdatedOn.Value())
	}

	if c.Address == nil {
		t.Fatalf("expected an address")
	}
	if !c.Address.IsStreetDisplayed.Value() {
		t.Fatalf("expected street displayed")
	}
	if c.Address.StreetNumber.Value() != "2/39" {
		t.Fatalf("unexpected street number %q", c.Address.StreetNumber.Value())
	}
	if c.Address.Street.Value() != "Main Road" {
		t.Fatalf("unexpected street %q", c.Address.Street.Value())
	}
	if c.Address.Suburb.Value() != "RICHMOND" {
		t.Fatalf("unexpected suburb %q", c.Address.Suburb.Value())
	}
	if c.Address.CountryISOCode.Value() != "AU" {
		t.Fatalf("unexpected country %q", c.Address.CountryISOCode.Value())
	}
	if c.Address.Postcode.Value() != "3121" {
		t.Fatalf("unexpected postcode %q", c.Address.Postcode.Value())
	}

	if c.Features == nil {
		t.Fatalf("expected features")
	}
	if c.Features.Bedrooms.Value() != 4 || c.Features.Bathrooms.Value() != 2 || c.Features.CarSpaces.Value() != 3 {
		t.Fatalf("unexpected features %d/%d/%d",
			c.Features.Bedrooms.Value(), c.Features.Bathrooms.Value(), c.Features.CarSpaces.Value())
	}

	if listing.Pricing == nil {
		t.Fatalf("expected pricing")
	}
	if listing.Pricing.SalePrice.Value() != 500000 {
		t.Fatalf("unexpected sale price %v", listing.Pricing.SalePrice.Value())
	}
	if listing.Pricing.SalePriceText.Value() != "Between $400,000 and $600,000" {
		t.Fatalf("unexpected price text %q", listing.Pricing.SalePriceText.Value())
	}
	if listing.Pricing.IsUnderOffer.Value() {
		t.Fatalf("expected not under offer")
	}

	if !listing.IsModified() {
		t.Fatalf("freshly extracted listing should report modified")
	}
}

func TestConvert_PropertyList_Agents(t *testing.T) {
	result, err := Convert(loadFixture(t, "property_list.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	c := findListing(t, result, models.VariantResidential).Common()
	agents := c.Agents.Value()

	// The nameless-contact agent is dropped; the rest are sorted by their
	// declared order and reranked 1..n.
	if len(agents) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(agents))
	}
	wantNames := []string{"Mr. John Doe", "Han Solo", "Princess Leia"}
	for i, want := range wantNames {
		if agents[i].Name != want {
			t.Fatalf("agent %d: expected %q, got %q", i, want, agents[i].Name)
		}
		if agents[i].Order != i+1 {
			t.Fatalf("agent %d: expected order %d, got %d", i, i+1, agents[i].Order)
		}
	}

	doe := agents[0]
	if len(doe.Communications) != 3 {
		t.Fatalf("expected 3 communications, got %d", len(doe.Communications))
	}
	if doe.Communications[0].Type != models.CommunicationEmail {
		t.Fatalf("expected email first, got %q", doe.Communications[0].Type)
	}
	if doe.Communications[1].Type != models.CommunicationLandline ||
		doe.Communications[2].Type != models.CommunicationLandline {
		t.Fatalf("expected mobile and BH numbers as landline entries")
	}
}

func TestConvert_PropertyList_InspectionsAndMedia(t *testing.T) {
	result, err := Convert(loadFixture(t, "property_list.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	c := findListing(t, result, models.VariantResidential).Common()

	inspections := c.Inspections.Value()
	if len(inspections) != 2 {
		t.Fatalf("expected 2 inspections after dedup, got %d", len(inspections))
	}
	first := time.Date(2009, 6, 20, 11, 0, 0, 0, time.UTC)
	second := time.Date(2009, 6, 21, 14, 0, 0, 0, time.UTC)
	if !inspections[0].OpensOn.Equal(first) {
		t.Fatalf("expected earliest inspection first, got %v", inspections[0].OpensOn)
	}
	if inspections[0].ClosesOn != nil {
		t.Fatalf("inspection with equal times should have no close time")
	}
	if !inspections[1].OpensOn.Equal(second) {
		t.Fatalf("unexpected second inspection %v", inspections[1].OpensOn)
	}
	if inspections[1].ClosesOn == nil || !inspections[1].ClosesOn.Equal(second.Add(time.Hour)) {
		t.Fatalf("unexpected second inspection close %v", inspections[1].ClosesOn)
	}

	images := c.Images.Value()
	if len(images) != 3 {
		t.Fatalf("expected 3 images (blank url dropped), got %d", len(images))
	}
	wantOrders := []int{1, 2, 4}
	for i, want := range wantOrders {
		if images[i].Order != want {
			t.Fatalf("image %d: expected order %d, got %d", i, want, images[i].Order)
		}
	}

	plans := c.FloorPlans.Value()
	if len(plans) != 2 {
		t.Fatalf("expected 2 floor plans, got %d", len(plans))
	}
	if plans[0].Order != 1 || plans[1].Order != 2 {
		t.Fatalf("unexpected floor plan orders %d, %d", plans[0].Order, plans[1].Order)
	}
}

func TestConvert_PropertyList_Rental(t *testing.T) {
	result, err := Convert(loadFixture(t, "property_list.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	listing, ok := findListing(t, result, models.VariantRental).(*models.RentalListing)
	if !ok {
		t.Fatalf("expected *models.RentalListing")
	}
	c := listing.Common()

	if c.ID.Value() != "Rental-Current-ABCD1234" {
		t.Fatalf("unexpected id %q", c.ID.Value())
	}
	wantUpdated := time.Date(2009, 7, 1, 0, 0, 0, 0, time.UTC)
	if !c.UpdatedOn.Value().Equal(wantUpdated) {
		t.Fatalf("unexpected updatedOn %v", c.UpdatedOn.Value())
	}

	// No country element defaults to Australia, no display flag defaults
	// to displayed.
	if c.Address.CountryISOCode.Value() != "AU" {
		t.Fatalf("unexpected country %q", c.Address.CountryISOCode.Value())
	}
	if !c.Address.IsStreetDisplayed.Value() {
		t.Fatalf("expected street displayed by default")
	}

	if listing.Pricing == nil {
		t.Fatalf("expected pricing")
	}
	// The monthly entry is declared first but only the weekly cadence
	// counts.
	if listing.Pricing.RentalPrice.Value() != 500 {
		t.Fatalf("unexpected rental price %v", listing.Pricing.RentalPrice.Value())
	}
	if listing.Pricing.PaymentFrequencyType.Value() != models.PaymentFrequencyWeekly {
		t.Fatalf("unexpected payment frequency %q", listing.Pricing.PaymentFrequencyType.Value())
	}
	if listing.Pricing.Bond.Value() != 999 {
		t.Fatalf("unexpected bond %v", listing.Pricing.Bond.Value())
	}
	wantAvailable := time.Date(2009, 1, 26, 0, 0, 0, 0, time.UTC)
	if !listing.Pricing.AvailableOn.Value().Equal(wantAvailable) {
		t.Fatalf("unexpected availableOn %v", listing.Pricing.AvailableOn.Value())
	}
	if listing.Pricing.RentalPriceText.Value() != "$500 per week" {
		t.Fatalf("unexpected price text %q", listing.Pricing.RentalPriceText.Value())
	}
}

func TestConvertFragment_WithheldPriceText(t *testing.T) {
	listing, err := ConvertFragment(loadFixture(t, "residential_withheld.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	residential, ok := listing.(*models.ResidentialListing)
	if !ok {
		t.Fatalf("expected *models.ResidentialListing")
	}
	if residential.Common().Address.IsStreetDisplayed.Value() {
		t.Fatalf("expected street display suppressed")
	}
	// A suppressed price view overrides whatever text the feed supplied.
	if got := residential.Pricing.SalePriceText.Value(); got != "Address Witheld" {
		t.Fatalf("unexpected price text %q", got)
	}
	if residential.Pricing.SalePrice.Value() != 500000 {
		t.Fatalf("unexpected sale price %v", residential.Pricing.SalePrice.Value())
	}
}

func TestConvert_UnsupportedCountrySkipsFragment(t *testing.T) {
	result, err := Convert(loadFixture(t, "mixed_country.xml"))
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	// The German residential fragment is skipped; its sibling still
	// converts.
	if len(result.Listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(result.Listings))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skip, got %d", len(result.Skipped))
	}

	var unsupported *UnsupportedCountryError
	if !errors.As(result.Skipped[0].Reason, &unsupported) {
		t.Fatalf("expected UnsupportedCountryError, got %v", result.Skipped[0].Reason)
	}

	survivor := result.Listings[0]
	if survivor.Variant() != models.VariantRental {
		t.Fatalf("expected the rental to survive, got %s", survivor.Variant())
	}
	if survivor.Common().Address.CountryISOCode.Value() != "NZ" {
		t.Fatalf("unexpected country %q", survivor.Common().Address.CountryISOCode.Value())
	}
}

func TestConvertFragment_UnknownCategory(t *testing.T) {
	listing, err := ConvertFragment([]byte(`<land modTime="20090701"><uniqueID>L1</uniqueID></land>`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if listing != nil {
		t.Fatalf("expected no listing for an unimplemented category")
	}
}

func TestConvertFragment_Empty(t *testing.T) {
	if _, err := ConvertFragment([]byte("  ")); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestConvertFragment_Malformed(t *testing.T) {
	_, err := ConvertFragment([]byte(`<residential><uniqueID>R1`))
	var malformed *MalformedDocumentError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedDocumentError, got %v", err)
	}
}

func TestConvertWithOptions_FanOut(t *testing.T) {
	result, err := ConvertWithOptions(loadFixture(t, "property_list.xml"), Options{Workers: 4})
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if len(result.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(result.Listings))
	}

	seen := map[string]bool{}
	for _, listing := range result.Listings {
		seen[listing.Variant()] = true
	}
	if !seen[models.VariantResidential] || !seen[models.VariantRental] {
		t.Fatalf("expected both variants, got %v", seen)
	}
}

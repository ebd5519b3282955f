package validation

import (
	"testing"
	"time"

	"rea_ingest/models"
)

func validRental(t *testing.T) *models.RentalListing {
	t.Helper()
	l := &models.RentalListing{}
	l.ID.Set("Rental-Current-ABCD1234")
	l.AgencyID.Set("XNWXNW")
	l.StatusType.Set(models.StatusCurrent)
	l.UpdatedOn.Set(time.Date(2009, 7, 1, 0, 0, 0, 0, time.UTC))
	l.Address = &models.Address{}
	l.Address.Suburb.Set("Collingwood")
	l.Address.State.Set("vic")
	l.Address.CountryISOCode.Set("AU")
	l.Agents.Set([]models.ListingAgent{
		{Name: "Jane Smith", Order: 1, Communications: []models.Communication{
			{Type: models.CommunicationEmail, Details: "jsmith@somedomain.com.au"},
		}},
	})
	return l
}

func TestValidate_ValidListing(t *testing.T) {
	errs := Validate(validRental(t))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_NilListing(t *testing.T) {
	errs := Validate(nil)
	if errs["Listing"] == "" {
		t.Fatalf("expected a listing-level error, got %v", errs)
	}
}

func TestValidate_MissingIdentifiers(t *testing.T) {
	l := &models.RentalListing{}
	l.UpdatedOn.Set(time.Now())
	errs := Validate(l)
	if errs["Id"] == "" {
		t.Fatalf("expected an Id error, got %v", errs)
	}
	if errs["AgencyId"] == "" {
		t.Fatalf("expected an AgencyId error, got %v", errs)
	}
}

func TestValidate_ZeroUpdatedOnSurfaced(t *testing.T) {
	l := validRental(t)
	l.UpdatedOn.Set(time.Time{})
	errs := Validate(l)
	if errs["UpdatedOn"] == "" {
		t.Fatalf("expected the zero-date sentinel surfaced, got %v", errs)
	}
}

func TestValidate_UnknownStatus(t *testing.T) {
	l := validRental(t)
	l.StatusType.Set(models.StatusUnknown)
	errs := Validate(l)
	if errs["StatusType"] == "" {
		t.Fatalf("expected a StatusType error, got %v", errs)
	}
}

func TestValidate_AddressRules(t *testing.T) {
	l := validRental(t)
	l.Address.Suburb.Set("")
	l.Address.State.Set("")
	l.Address.CountryISOCode.Set("DE")
	errs := Validate(l)
	if errs["Address.Suburb"] == "" || errs["Address.State"] == "" {
		t.Fatalf("expected suburb and state errors, got %v", errs)
	}
	if errs["Address.CountryIsoCode"] == "" {
		t.Fatalf("expected a country error, got %v", errs)
	}
}

func TestValidate_AgentRules(t *testing.T) {
	l := validRental(t)
	l.Agents.Set([]models.ListingAgent{{Name: "", Order: 0}})
	errs := Validate(l)
	if errs["Agents[0].Name"] == "" {
		t.Fatalf("expected a name error, got %v", errs)
	}
	if errs["Agents[0].Communications"] == "" {
		t.Fatalf("expected a communications error, got %v", errs)
	}
	if errs["Agents[0].Order"] == "" {
		t.Fatalf("expected an order error, got %v", errs)
	}
}

func TestValidate_NegativePricing(t *testing.T) {
	l := validRental(t)
	l.Pricing = &models.RentalPricing{}
	l.Pricing.RentalPrice.Set(-1)
	l.Pricing.Bond.Set(-50)
	errs := Validate(l)
	if errs["Pricing.RentalPrice"] == "" || errs["Pricing.Bond"] == "" {
		t.Fatalf("expected pricing errors, got %v", errs)
	}
}

func TestValidate_BuildingDetails(t *testing.T) {
	l := validRental(t)
	l.BuildingDetails = &models.BuildingDetails{Area: &models.UnitOfMeasure{}}
	l.BuildingDetails.Area.Value.Set(120)
	errs := Validate(l)
	if errs["BuildingDetails.Area.Type"] == "" {
		t.Fatalf("expected an area type error, got %v", errs)
	}

	l.BuildingDetails.Area.Type.Set("sqm")
	errs = Validate(l)
	if len(errs) != 0 {
		t.Fatalf("expected no errors with a typed area, got %v", errs)
	}
}

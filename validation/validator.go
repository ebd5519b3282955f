// Package validation checks a populated listing against the business rules
// the converter deliberately does not enforce. The result is a map of
// field name to human-readable message; an empty map means valid.
package validation

import (
	"fmt"

	"rea_ingest/models"
)

func Validate(listing models.Listing) map[string]string {
	errors := make(map[string]string)
	if listing == nil {
		errors["Listing"] = "A listing is required."
		return errors
	}

	common := listing.Common()

	if common.ID.Value() == "" {
		errors["Id"] = "An Id is required. eg. Biz-1234."
	}
	if common.AgencyID.Value() == "" {
		errors["AgencyId"] = "An AgencyId is required. eg. XYZ-1234."
	}
	if common.StatusType.IsModified() && common.StatusType.Value() == models.StatusUnknown {
		errors["StatusType"] = "An unknown StatusType cannot be stored."
	}

	// The date fallback chain degrades to the zero time instead of an
	// error; this is where that sentinel gets surfaced.
	if common.UpdatedOn.Value().IsZero() {
		errors["UpdatedOn"] = "An UpdatedOn date could not be determined from the source document."
	}

	if common.Address != nil {
		validateAddress(common.Address, errors)
	}
	for i, agent := range common.Agents.Value() {
		validateAgent(i, agent, errors)
	}
	if common.Features != nil {
		validateFeatures(common.Features, errors)
	}

	switch l := listing.(type) {
	case *models.ResidentialListing:
		if l.Pricing != nil && l.Pricing.SalePrice.Value() < 0 {
			errors["Pricing.SalePrice"] = "A SalePrice must not be negative."
		}
		if l.BuildingDetails != nil {
			validateBuildingDetails(l.BuildingDetails, errors)
		}
	case *models.RentalListing:
		if l.Pricing != nil {
			if l.Pricing.RentalPrice.Value() < 0 {
				errors["Pricing.RentalPrice"] = "A RentalPrice must not be negative."
			}
			if l.Pricing.Bond.Value() < 0 {
				errors["Pricing.Bond"] = "A Bond must not be negative."
			}
		}
		if l.BuildingDetails != nil {
			validateBuildingDetails(l.BuildingDetails, errors)
		}
	}

	return errors
}

func validateAddress(address *models.Address, errors map[string]string) {
	if address.Suburb.Value() == "" {
		errors["Address.Suburb"] = "A Suburb is required. eg. Ponsonby, Sub Farm."
	}
	if address.State.Value() == "" {
		errors["Address.State"] = "A State is required. eg. NSW, VIC, etc."
	}
	code := address.CountryISOCode.Value()
	if code != "AU" && code != "NZ" {
		errors["Address.CountryIsoCode"] = fmt.Sprintf("The CountryIsoCode %q is not supported.", code)
	}
}

func validateAgent(index int, agent models.ListingAgent, errors map[string]string) {
	prefix := fmt.Sprintf("Agents[%d]", index)
	if agent.Name == "" {
		errors[prefix+".Name"] = "A Name is required. eg. Jane Smith."
	}
	if len(agent.Communications) == 0 {
		errors[prefix+".Communications"] = "At least one Communication is required."
	}
	if agent.Order < 1 {
		errors[prefix+".Order"] = "An Order must be a 1-based rank."
	}
}

func validateFeatures(features *models.Features, errors map[string]string) {
	check := func(field string, value int) {
		if value < 0 || value > 255 {
			errors["Features."+field] = fmt.Sprintf("A %s count must be between 0 and 255.", field)
		}
	}
	check("Bedrooms", features.Bedrooms.Value())
	check("Bathrooms", features.Bathrooms.Value())
	check("CarSpaces", features.CarSpaces.Value())
}

func validateBuildingDetails(details *models.BuildingDetails, errors map[string]string) {
	if details.Area == nil {
		return
	}
	if details.Area.Value.Value() < 0 {
		errors["BuildingDetails.Area.Value"] = "An Area Value must not be negative."
	}
	if details.Area.Value.IsModified() && details.Area.Type.Value() == "" {
		errors["BuildingDetails.Area.Type"] = "An Area Type is required when a Value is set. eg. sqm."
	}
}

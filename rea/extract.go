package rea

import (
	"sort"
	"strconv"
	"strings"

	"rea_ingest/models"
)

// extractCommon populates the fields every variant shares. Each concern is
// independently skippable; only address extraction can fail the fragment.
func extractCommon(listing models.Listing, root *node) error {
	c := listing.Common()

	c.UpdatedOn.Set(parseModTime(root.attrOr("modTime", "")))

	if v := root.value("agentID"); v != "" {
		c.AgencyID.Set(v)
	}
	if v := root.value("uniqueID"); v != "" {
		c.ID.Set(v)
	}
	if v := root.attrOr("status", ""); strings.TrimSpace(v) != "" {
		c.StatusType.Set(models.ParseStatusType(v))
	}
	if category := root.child("category"); category != nil {
		if v := category.attrOr("name", ""); strings.TrimSpace(v) != "" {
			c.PropertyType.Set(models.ParsePropertyType(v))
		}
	}
	if v, ok := root.lookup("headline"); ok {
		c.Title.Set(v)
	}
	if v, ok := root.lookup("description"); ok {
		c.Description.Set(v)
	}

	address, err := extractAddress(root)
	if err != nil {
		return err
	}
	c.Address = address

	if agents := extractAgents(root); agents != nil {
		c.Agents.Set(agents)
	}
	c.Features = extractFeatures(root)
	if inspections := extractInspections(root); inspections != nil {
		c.Inspections.Set(inspections)
	}
	if images := extractImages(root); images != nil {
		c.Images.Set(images)
	}
	if plans := extractFloorPlans(root); plans != nil {
		c.FloorPlans.Set(plans)
	}

	return nil
}

func extractAddress(root *node) (*models.Address, error) {
	el := root.child("address")
	if el == nil {
		return nil, nil
	}

	address := &models.Address{}

	isDisplayed := true
	if display := el.attrOr("display", ""); strings.TrimSpace(display) != "" {
		v, err := parseYesNo(display)
		if err != nil {
			return nil, err
		}
		isDisplayed = v
	}
	address.IsStreetDisplayed.Set(isDisplayed)

	subNumber := el.value("subNumber")
	streetNumber := el.value("streetNumber")
	if subNumber != "" {
		streetNumber = subNumber + "/" + streetNumber
	}
	address.StreetNumber.Set(streetNumber)

	address.Street.Set(el.value("street"))
	address.Suburb.Set(el.value("suburb"))
	address.State.Set(el.value("state"))

	// REA rule: an omitted country defaults to Australia.
	isoCode := "AU"
	if country := el.value("country"); country != "" {
		code, err := countryToISOCode(country)
		if err != nil {
			return nil, err
		}
		isoCode = code
	}
	address.CountryISOCode.Set(isoCode)

	address.Postcode.Set(el.value("postcode"))

	return address, nil
}

func extractAgents(root *node) []models.ListingAgent {
	elements := root.children("listingAgent")
	if len(elements) == 0 {
		return nil
	}

	type candidate struct {
		agent models.ListingAgent
		order int
	}

	var candidates []candidate
	for _, el := range elements {
		name := el.value("name")

		var comms []models.Communication
		if email := el.value("email"); email != "" {
			comms = append(comms, models.Communication{
				Type:    models.CommunicationEmail,
				Details: email,
			})
		}
		if mobile := el.valueWhereAttr("telephone", "type", "mobile"); mobile != "" {
			comms = append(comms, models.Communication{
				Type:    models.CommunicationLandline,
				Details: mobile,
			})
		}
		if office := el.valueWhereAttr("telephone", "type", "BH"); office != "" {
			comms = append(comms, models.Communication{
				Type:    models.CommunicationLandline,
				Details: office,
			})
		}

		// Some feeds ship the element with no data; an agent with no name
		// or no way of being contacted is useless, so it is dropped.
		if name == "" || len(comms) == 0 {
			continue
		}

		order := 0
		if v := el.attrOr("id", ""); strings.TrimSpace(v) != "" {
			if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				order = parsed
			}
		}

		candidates = append(candidates, candidate{
			agent: models.ListingAgent{Name: name, Communications: comms},
			order: order,
		})
	}

	if len(candidates) == 0 {
		return nil
	}

	// Sort by the declared order, then reassign a dense 1-based rank. The
	// declared values are scaffolding, not output.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].order < candidates[j].order
	})

	agents := make([]models.ListingAgent, 0, len(candidates))
	for i, c := range candidates {
		c.agent.Order = i + 1
		agents = append(agents, c.agent)
	}
	return agents
}

func extractFeatures(root *node) *models.Features {
	el := root.child("features")
	if el == nil {
		return nil
	}

	features := &models.Features{}
	features.Bedrooms.Set(countValue(el, "bedrooms"))
	features.Bathrooms.Set(countValue(el, "bathrooms"))
	features.CarSpaces.Set(countValue(el, "garages"))
	return features
}

// countValue parses a byte-ranged room count; anything missing, negative,
// unparseable or above 255 becomes 0.
func countValue(el *node, tag string) int {
	v, err := strconv.Atoi(el.value(tag))
	if err != nil || v < 0 || v > 255 {
		return 0
	}
	return v
}

func extractInspections(root *node) []models.Inspection {
	times := root.child("inspectionTimes")
	if times == nil {
		return nil
	}

	var inspections []models.Inspection
	for _, el := range times.children("inspection") {
		// Accepted format: DATE START_TIME "to" END_TIME, date shared by
		// both times. Some feeds ship entirely empty entries; skip them.
		tokens := strings.Fields(el.text())
		if len(tokens) != 4 {
			continue
		}

		opensOn, ok := parseDateTime(tokens[0] + " " + tokens[1])
		if !ok {
			continue
		}
		closesOn, ok := parseDateTime(tokens[0] + " " + tokens[3])
		if !ok {
			continue
		}

		inspection := models.Inspection{OpensOn: opensOn}
		if !closesOn.Equal(opensOn) {
			inspection.ClosesOn = &closesOn
		}

		duplicate := false
		for _, existing := range inspections {
			if existing.Equal(inspection) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			inspections = append(inspections, inspection)
		}
	}

	if len(inspections) == 0 {
		return nil
	}

	sort.Slice(inspections, func(i, j int) bool {
		return inspections[i].OpensOn.Before(inspections[j].OpensOn)
	})
	return inspections
}

func extractImages(root *node) []models.Media {
	el := root.child("images")
	if el == nil {
		el = root.child("objects")
	}
	if el == nil {
		return nil
	}

	var images []models.Media
	for _, img := range el.children("img") {
		url := img.attrOr("url", "")
		if strings.TrimSpace(url) == "" {
			continue
		}
		images = append(images, models.Media{
			URL:   url,
			Order: imageOrderToNumber(img.attrOr("id", "")),
		})
	}
	if len(images) == 0 {
		return nil
	}
	return images
}

func extractFloorPlans(root *node) []models.Media {
	el := root.child("objects")
	if el == nil {
		return nil
	}

	var plans []models.Media
	for _, plan := range el.children("floorplan") {
		url := plan.attrOr("url", "")
		if strings.TrimSpace(url) == "" {
			continue
		}
		order, _ := strconv.Atoi(strings.TrimSpace(plan.attrOr("id", "")))
		plans = append(plans, models.Media{URL: url, Order: order})
	}
	if len(plans) == 0 {
		return nil
	}
	return plans
}

package models

import "time"

// Variant names, also used as the envelope discriminator by the JSON codec.
const (
	VariantResidential = "residential"
	VariantRental      = "rental"
	VariantRural       = "rural"
	VariantLand        = "land"
)

// Listing is the aggregate produced by the converter. Concrete variants are
// ResidentialListing, RentalListing, RuralListing and LandListing.
type Listing interface {
	Common() *ListingCommon
	Variant() string
	IsModified() bool
	ClearAllModified()

	mergeFrom(src Listing) error
}

// Merge combines src into dst field by field: every field whose bit is set
// on src overwrites dst, everything else on dst is left untouched. Nested
// aggregates are merged recursively with the same rule, never replaced
// wholesale.
func Merge(dst, src Listing) error {
	if dst == nil {
		return &NullArgumentError{Name: "destination"}
	}
	if src == nil {
		return &NullArgumentError{Name: "source"}
	}
	return dst.mergeFrom(src)
}

// ListingCommon holds the fields shared by every listing variant.
type ListingCommon struct {
	ID           Tracked[string]         `json:"id"`
	AgencyID     Tracked[string]         `json:"agencyId"`
	StatusType   Tracked[StatusType]     `json:"statusType"`
	PropertyType Tracked[PropertyType]   `json:"propertyType"`
	Title        Tracked[string]         `json:"title"`
	Description  Tracked[string]         `json:"description"`
	UpdatedOn    Tracked[time.Time]      `json:"updatedOn"`
	Address      *Address                `json:"address,omitempty"`
	Agents       Tracked[[]ListingAgent] `json:"agents"`
	Features     *Features               `json:"features,omitempty"`
	Inspections  Tracked[[]Inspection]   `json:"inspections"`
	Images       Tracked[[]Media]        `json:"images"`
	FloorPlans   Tracked[[]Media]        `json:"floorPlans"`
}

func (l *ListingCommon) IsModified() bool {
	return l.ID.IsModified() ||
		l.AgencyID.IsModified() ||
		l.StatusType.IsModified() ||
		l.PropertyType.IsModified() ||
		l.Title.IsModified() ||
		l.Description.IsModified() ||
		l.UpdatedOn.IsModified() ||
		(l.Address != nil && l.Address.IsModified()) ||
		l.Agents.IsModified() ||
		(l.Features != nil && l.Features.IsModified()) ||
		l.Inspections.IsModified() ||
		l.Images.IsModified() ||
		l.FloorPlans.IsModified()
}

func (l *ListingCommon) mergeFrom(src *ListingCommon) {
	l.ID.MergeFrom(src.ID)
	l.AgencyID.MergeFrom(src.AgencyID)
	l.StatusType.MergeFrom(src.StatusType)
	l.PropertyType.MergeFrom(src.PropertyType)
	l.Title.MergeFrom(src.Title)
	l.Description.MergeFrom(src.Description)
	l.UpdatedOn.MergeFrom(src.UpdatedOn)
	if src.Address != nil {
		if l.Address == nil {
			l.Address = &Address{}
		}
		l.Address.MergeFrom(src.Address)
	}
	l.Agents.MergeFrom(src.Agents)
	if src.Features != nil {
		if l.Features == nil {
			l.Features = &Features{}
		}
		l.Features.MergeFrom(src.Features)
	}
	l.Inspections.MergeFrom(src.Inspections)
	l.Images.MergeFrom(src.Images)
	l.FloorPlans.MergeFrom(src.FloorPlans)
}

func (l *ListingCommon) clearAllModified() {
	l.ID.ClearModified()
	l.AgencyID.ClearModified()
	l.StatusType.ClearModified()
	l.PropertyType.ClearModified()
	l.Title.ClearModified()
	l.Description.ClearModified()
	l.UpdatedOn.ClearModified()
	if l.Address != nil {
		l.Address.ClearAllModified()
	}
	l.Agents.ClearModified()
	if l.Features != nil {
		l.Features.ClearAllModified()
	}
	l.Inspections.ClearModified()
	l.Images.ClearModified()
	l.FloorPlans.ClearModified()
}

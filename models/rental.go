package models

// RentalListing is a property offered for rent.
type RentalListing struct {
	ListingCommon
	Pricing         *RentalPricing   `json:"pricing,omitempty"`
	BuildingDetails *BuildingDetails `json:"buildingDetails,omitempty"`
}

func (l *RentalListing) Common() *ListingCommon { return &l.ListingCommon }

func (l *RentalListing) Variant() string { return VariantRental }

func (l *RentalListing) IsModified() bool {
	return l.ListingCommon.IsModified() ||
		(l.Pricing != nil && l.Pricing.IsModified()) ||
		(l.BuildingDetails != nil && l.BuildingDetails.IsModified())
}

func (l *RentalListing) ClearAllModified() {
	l.ListingCommon.clearAllModified()
	if l.Pricing != nil {
		l.Pricing.ClearAllModified()
	}
	if l.BuildingDetails != nil {
		l.BuildingDetails.ClearAllModified()
	}
}

func (l *RentalListing) mergeFrom(src Listing) error {
	other, ok := src.(*RentalListing)
	if !ok {
		return &VariantMismatchError{Destination: l.Variant(), Source: src.Variant()}
	}
	if other == nil {
		return &NullArgumentError{Name: "source"}
	}
	l.ListingCommon.mergeFrom(&other.ListingCommon)
	if other.Pricing != nil {
		if l.Pricing == nil {
			l.Pricing = &RentalPricing{}
		}
		l.Pricing.MergeFrom(other.Pricing)
	}
	if other.BuildingDetails != nil {
		if l.BuildingDetails == nil {
			l.BuildingDetails = &BuildingDetails{}
		}
		l.BuildingDetails.MergeFrom(other.BuildingDetails)
	}
	return nil
}

package models

// ResidentialListing is a property offered for sale.
type ResidentialListing struct {
	ListingCommon
	Pricing         *SalePricing     `json:"pricing,omitempty"`
	BuildingDetails *BuildingDetails `json:"buildingDetails,omitempty"`
}

func (l *ResidentialListing) Common() *ListingCommon { return &l.ListingCommon }

func (l *ResidentialListing) Variant() string { return VariantResidential }

func (l *ResidentialListing) IsModified() bool {
	return l.ListingCommon.IsModified() ||
		(l.Pricing != nil && l.Pricing.IsModified()) ||
		(l.BuildingDetails != nil && l.BuildingDetails.IsModified())
}

func (l *ResidentialListing) ClearAllModified() {
	l.ListingCommon.clearAllModified()
	if l.Pricing != nil {
		l.Pricing.ClearAllModified()
	}
	if l.BuildingDetails != nil {
		l.BuildingDetails.ClearAllModified()
	}
}

func (l *ResidentialListing) mergeFrom(src Listing) error {
	other, ok := src.(*ResidentialListing)
	if !ok {
		return &VariantMismatchError{Destination: l.Variant(), Source: src.Variant()}
	}
	if other == nil {
		return &NullArgumentError{Name: "source"}
	}
	l.ListingCommon.mergeFrom(&other.ListingCommon)
	if other.Pricing != nil {
		if l.Pricing == nil {
			l.Pricing = &SalePricing{}
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

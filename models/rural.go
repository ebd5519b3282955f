package models

// RuralListing exists as a model shape only; the REA converter does not
// yet produce it.
type RuralListing struct {
	ListingCommon
	Pricing *SalePricing `json:"pricing,omitempty"`
}

func (l *RuralListing) Common() *ListingCommon { return &l.ListingCommon }

func (l *RuralListing) Variant() string { return VariantRural }

func (l *RuralListing) IsModified() bool {
	return l.ListingCommon.IsModified() ||
		(l.Pricing != nil && l.Pricing.IsModified())
}

func (l *RuralListing) ClearAllModified() {
	l.ListingCommon.clearAllModified()
	if l.Pricing != nil {
		l.Pricing.ClearAllModified()
	}
}

func (l *RuralListing) mergeFrom(src Listing) error {
	other, ok := src.(*RuralListing)
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
	return nil
}

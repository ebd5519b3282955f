package models

// LandListing exists as a model shape only; the REA converter does not
// yet produce it.
type LandListing struct {
	ListingCommon
}

func (l *LandListing) Common() *ListingCommon { return &l.ListingCommon }

func (l *LandListing) Variant() string { return VariantLand }

func (l *LandListing) IsModified() bool { return l.ListingCommon.IsModified() }

func (l *LandListing) ClearAllModified() { l.ListingCommon.clearAllModified() }

func (l *LandListing) mergeFrom(src Listing) error {
	other, ok := src.(*LandListing)
	if !ok {
		return &VariantMismatchError{Destination: l.Variant(), Source: src.Variant()}
	}
	if other == nil {
		return &NullArgumentError{Name: "source"}
	}
	l.ListingCommon.mergeFrom(&other.ListingCommon)
	return nil
}

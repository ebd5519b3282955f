package models

// Address describes where a listed property sits. StreetNumber may be a
// composite "sub/street" value when the source declared a sub-number.
type Address struct {
	IsStreetDisplayed Tracked[bool]   `json:"isStreetDisplayed"`
	StreetNumber      Tracked[string] `json:"streetNumber"`
	Street            Tracked[string] `json:"street"`
	Suburb            Tracked[string] `json:"suburb"`
	State             Tracked[string] `json:"state"`
	CountryISOCode    Tracked[string] `json:"countryIsoCode"`
	Postcode          Tracked[string] `json:"postcode"`
}

func (a *Address) IsModified() bool {
	return a.IsStreetDisplayed.IsModified() ||
		a.StreetNumber.IsModified() ||
		a.Street.IsModified() ||
		a.Suburb.IsModified() ||
		a.State.IsModified() ||
		a.CountryISOCode.IsModified() ||
		a.Postcode.IsModified()
}

func (a *Address) MergeFrom(src *Address) {
	a.IsStreetDisplayed.MergeFrom(src.IsStreetDisplayed)
	a.StreetNumber.MergeFrom(src.StreetNumber)
	a.Street.MergeFrom(src.Street)
	a.Suburb.MergeFrom(src.Suburb)
	a.State.MergeFrom(src.State)
	a.CountryISOCode.MergeFrom(src.CountryISOCode)
	a.Postcode.MergeFrom(src.Postcode)
}

func (a *Address) ClearAllModified() {
	a.IsStreetDisplayed.ClearModified()
	a.StreetNumber.ClearModified()
	a.Street.ClearModified()
	a.Suburb.ClearModified()
	a.State.ClearModified()
	a.CountryISOCode.ClearModified()
	a.Postcode.ClearModified()
}

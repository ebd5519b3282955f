package models

// Features carries the byte-ranged room counts. Valid values are 0-255;
// the extractor discards anything outside that range.
type Features struct {
	Bedrooms  Tracked[int] `json:"bedrooms"`
	Bathrooms Tracked[int] `json:"bathrooms"`
	CarSpaces Tracked[int] `json:"carSpaces"`
}

func (f *Features) IsModified() bool {
	return f.Bedrooms.IsModified() ||
		f.Bathrooms.IsModified() ||
		f.CarSpaces.IsModified()
}

func (f *Features) MergeFrom(src *Features) {
	f.Bedrooms.MergeFrom(src.Bedrooms)
	f.Bathrooms.MergeFrom(src.Bathrooms)
	f.CarSpaces.MergeFrom(src.CarSpaces)
}

func (f *Features) ClearAllModified() {
	f.Bedrooms.ClearModified()
	f.Bathrooms.ClearModified()
	f.CarSpaces.ClearModified()
}

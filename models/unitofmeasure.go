package models

import (
	"fmt"
	"strings"
)

// UnitOfMeasure is a measured quantity plus the unit it is measured in,
// each half tracked independently.
type UnitOfMeasure struct {
	Type  Tracked[string]  `json:"type"`
	Value Tracked[float64] `json:"value"`
}

func (u *UnitOfMeasure) IsModified() bool {
	return u.Type.IsModified() || u.Value.IsModified()
}

// MergeFrom merges each half on its own: an unset Value on src never
// erases a Value on u, whatever the state of the Type bit, and vice versa.
func (u *UnitOfMeasure) MergeFrom(src *UnitOfMeasure) {
	u.Type.MergeFrom(src.Type)
	u.Value.MergeFrom(src.Value)
}

func (u *UnitOfMeasure) ClearAllModified() {
	u.Type.ClearModified()
	u.Value.ClearModified()
}

func (u *UnitOfMeasure) String() string {
	t := u.Type.Value()
	if strings.TrimSpace(t) == "" {
		t = "-no type-"
	}
	return fmt.Sprintf("%v %s", u.Value.Value(), t)
}

// BuildingDetails is a nested model shape carried for merge and validation.
// The REA extraction path never populates it.
type BuildingDetails struct {
	Area         *UnitOfMeasure   `json:"area,omitempty"`
	EnergyRating Tracked[float64] `json:"energyRating"`
}

func (b *BuildingDetails) IsModified() bool {
	return (b.Area != nil && b.Area.IsModified()) ||
		b.EnergyRating.IsModified()
}

func (b *BuildingDetails) MergeFrom(src *BuildingDetails) {
	if src.Area != nil {
		if b.Area == nil {
			b.Area = &UnitOfMeasure{}
		}
		b.Area.MergeFrom(src.Area)
	}
	b.EnergyRating.MergeFrom(src.EnergyRating)
}

func (b *BuildingDetails) ClearAllModified() {
	if b.Area != nil {
		b.Area.ClearAllModified()
	}
	b.EnergyRating.ClearModified()
}

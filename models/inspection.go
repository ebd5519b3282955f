package models

import "time"

// Inspection is one open-home window. ClosesOn is nil when the source gave
// the same time for open and close.
type Inspection struct {
	OpensOn  time.Time  `json:"opensOn"`
	ClosesOn *time.Time `json:"closesOn,omitempty"`
}

// Equal compares by the (OpensOn, ClosesOn) pair; the converter uses it to
// drop duplicate entries.
func (i Inspection) Equal(other Inspection) bool {
	if !i.OpensOn.Equal(other.OpensOn) {
		return false
	}
	if i.ClosesOn == nil || other.ClosesOn == nil {
		return i.ClosesOn == other.ClosesOn
	}
	return i.ClosesOn.Equal(*other.ClosesOn)
}

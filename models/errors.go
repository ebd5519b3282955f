package models

import "fmt"

// NullArgumentError reports a nil listing handed to the merge engine or an
// extraction entry point.
type NullArgumentError struct {
	Name string
}

func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("argument %q must not be nil", e.Name)
}

// VariantMismatchError reports a merge between two different listing variants.
type VariantMismatchError struct {
	Destination string
	Source      string
}

func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("cannot merge a %s listing into a %s listing", e.Source, e.Destination)
}

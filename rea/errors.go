package rea

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the input document is empty or
// whitespace only.
var ErrEmptyDocument = errors.New("rea: document is empty")

// ErrUnrecognizedCategory marks a fragment whose category this converter
// does not produce a listing for. The batch continues past it.
var ErrUnrecognizedCategory = errors.New("rea: unrecognized fragment category")

// MalformedDocumentError reports input that could not be parsed as XML.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("rea: malformed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// UnsupportedCountryError reports a country value outside the AU/NZ table.
// Unlike most extraction failures this one aborts the fragment.
type UnsupportedCountryError struct {
	Country string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("rea: country %q is unhandled - not sure of the ISO code to use", e.Country)
}

// InvalidBooleanTextError reports text that is neither "yes" nor "no".
type InvalidBooleanTextError struct {
	Text string
}

func (e *InvalidBooleanTextError) Error() string {
	return fmt.Sprintf("rea: %q cannot be parsed as yes/no", e.Text)
}

package rea

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Fragment tags this dialect recognizes. Future dialect revisions may add
// "rural" and "land".
var fragmentTags = map[string]bool{
	"residential": true,
	"rental":      true,
}

// SplitDocument locates every fragment element at any depth and returns
// each one as an independently re-parseable substring of the input. A
// document with no fragment tags yields an empty result, not an error;
// input that is not well-formed XML yields a MalformedDocumentError.
func SplitDocument(data []byte) ([]string, error) {
	if isBlank(data) {
		return nil, ErrEmptyDocument
	}

	dec := xml.NewDecoder(bytes.NewReader(data))

	var fragments []string
	var offset int64
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedDocumentError{Err: err}
		}

		if se, ok := tok.(xml.StartElement); ok && fragmentTags[se.Name.Local] {
			// offset still points at the '<' of this element; Skip
			// advances past its matching end tag.
			if err := dec.Skip(); err != nil {
				return nil, &MalformedDocumentError{Err: err}
			}
			fragments = append(fragments, string(data[offset:dec.InputOffset()]))
		}

		offset = dec.InputOffset()
	}

	return fragments, nil
}

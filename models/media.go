package models

// Media is an image or floor plan reference. For images Order comes from
// the letter-coded id attribute, for floor plans from a literal integer.
type Media struct {
	URL   string `json:"url"`
	Order int    `json:"order"`
}

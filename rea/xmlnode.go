package rea

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// node is a generic XML element tree. The extractors navigate it with the
// helpers below instead of declaring a struct per REA element.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func parseFragment(data []byte) (*node, error) {
	var n node
	if err := xml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (n *node) text() string {
	return strings.TrimSpace(n.Content)
}

// attr returns the named attribute and whether it was present.
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) attrOr(name, def string) string {
	if v, ok := n.attr(name); ok {
		return v
	}
	return def
}

// child returns the first direct child with the given tag, or nil.
func (n *node) child(tag string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			return &n.Children[i]
		}
	}
	return nil
}

func (n *node) children(tag string) []*node {
	var out []*node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == tag {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// lookup returns the trimmed text of the first child with the given tag and
// whether that child exists.
func (n *node) lookup(tag string) (string, bool) {
	c := n.child(tag)
	if c == nil {
		return "", false
	}
	return c.text(), true
}

// value returns the trimmed text of the first child with the given tag, or
// the empty string when the child is missing.
func (n *node) value(tag string) string {
	v, _ := n.lookup(tag)
	return v
}

// childAttr returns an attribute of the first child with the given tag.
func (n *node) childAttr(tag, name string) string {
	c := n.child(tag)
	if c == nil {
		return ""
	}
	return c.attrOr(name, "")
}

// valueWhereAttr returns the text of the first child with the given tag
// whose attribute matches, e.g. telephone[@type="mobile"].
func (n *node) valueWhereAttr(tag, name, want string) string {
	for _, c := range n.children(tag) {
		if c.attrOr(name, "") == want {
			return c.text()
		}
	}
	return ""
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

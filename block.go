package tothepoint

import "strings"

// TagKind classifies an extracted block by the element it came from.
type TagKind string

// TagKind values.
const (
	KindParagraph TagKind = "paragraph"
	KindHeading   TagKind = "heading"
	KindQuote     TagKind = "quote"
	KindListItem  TagKind = "listItem"
)

// Block is a normalized unit of extracted body text. Index is the ordinal
// position within the extracted sequence, Text is whitespace-collapsed and
// non-empty, and Node is the back-reference to the source element (nil for
// blocks synthesized from linked-data metadata).
//
// Within a sequence no two blocks share the same lowercase text; the first
// occurrence wins.
type Block struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Kind  TagKind `json:"kind"`
	Node  Node    `json:"-"`
}

// kindForTag maps an element name to its block kind. Only tags in the
// block-level set are recognized.
func kindForTag(tag string) (TagKind, bool) {
	switch tag {
	case "p":
		return KindParagraph, true
	case "h2", "h3", "h4", "h5", "h6":
		return KindHeading, true
	case "blockquote":
		return KindQuote, true
	case "li":
		return KindListItem, true
	}
	return "", false
}

// minBlockLength returns the minimum rune count a block of the given kind
// must have to count as content rather than noise (nav labels, bylines).
func minBlockLength(kind TagKind) int {
	switch kind {
	case KindListItem:
		return 8
	case KindHeading:
		return 10
	default:
		return 20
	}
}

// collapseWhitespace collapses every whitespace run to a single space and
// trims the result.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package tothepoint

import (
	"encoding/json"
	"strings"
)

// BodyText is a tagged variant over the shapes the articleBody field of a
// linked-data record can take in the wild: a string, an array of strings,
// or absent. Any other shape decodes as absent rather than an error.
type BodyText struct {
	parts   []string
	present bool
}

// NewBodyText returns a present BodyText holding the given parts.
// Empty or whitespace-only parts are dropped; no parts means absent.
func NewBodyText(parts ...string) BodyText {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return BodyText{parts: kept, present: len(kept) > 0}
}

// Present reports whether the field carried usable text.
func (b BodyText) Present() bool { return b.present }

// Parts returns the raw text parts. A scalar articleBody yields one part.
func (b BodyText) Parts() []string { return b.parts }

// UnmarshalJSON accepts a JSON string or array of strings. Other shapes
// (objects, numbers, null) decode as absent.
func (b *BodyText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = NewBodyText(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*b = NewBodyText(arr...)
		return nil
	}
	*b = BodyText{}
	return nil
}

// MetadataRecord is one embedded structured-data record (a linked-data
// block) after decoding. Types is the normalized set of schema type names.
type MetadataRecord struct {
	Types    []string
	Headline string
	Body     BodyText
}

// articleTypes are schema type names accepted as articles that do not end
// with the "Article" suffix.
var articleTypes = map[string]struct{}{
	"BlogPosting": {},
	"Report":      {},
}

// IsArticleType reports whether any of the given schema type names denotes
// an article: either it ends with "Article" (Article, NewsArticle,
// TechArticle, ...) or it is a member of a small fixed set.
func IsArticleType(types []string) bool {
	for _, t := range types {
		if strings.HasSuffix(t, "Article") {
			return true
		}
		if _, ok := articleTypes[t]; ok {
			return true
		}
	}
	return false
}

// ldBlock mirrors the fields of a linked-data block the pipeline cares
// about. @type may be a string or an array of strings; @graph nests more
// blocks.
type ldBlock struct {
	Type     json.RawMessage   `json:"@type"`
	Graph    []json.RawMessage `json:"@graph"`
	Headline string            `json:"headline"`
	Body     BodyText          `json:"articleBody"`
}

// DecodeMetadata decodes raw linked-data blocks into records. Malformed
// blocks are skipped, not reported: absent metadata is a normal condition.
// Blocks wrapped in @graph are flattened.
func DecodeMetadata(blocks []json.RawMessage) []MetadataRecord {
	var records []MetadataRecord
	for _, raw := range blocks {
		records = append(records, decodeBlock(raw)...)
	}
	return records
}

func decodeBlock(raw json.RawMessage) []MetadataRecord {
	var block ldBlock
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil
	}

	var records []MetadataRecord
	for _, nested := range block.Graph {
		records = append(records, decodeBlock(nested)...)
	}

	types := decodeTypes(block.Type)
	if len(types) == 0 && !block.Body.Present() && block.Headline == "" {
		return records
	}
	return append(records, MetadataRecord{
		Types:    types,
		Headline: strings.TrimSpace(block.Headline),
		Body:     block.Body,
	})
}

// decodeTypes normalizes the @type field, which may be a string or an
// array of strings.
func decodeTypes(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return []string{s}
		}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		types := make([]string, 0, len(arr))
		for _, t := range arr {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		return types
	}
	return nil
}

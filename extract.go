package tothepoint

import (
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// blockSelector matches the block-level tag set that can carry body text.
// h1 is deliberately excluded: it is page-title territory, not body.
const blockSelector = "p, h2, h3, h4, h5, h6, blockquote, li"

// excludeSelector matches structural chrome that never holds article
// content: navigation, page furniture, forms, scripts, embedded media, and
// interactive controls. A block whose ancestor chain intersects this set is
// dropped.
const excludeSelector = "nav, header, footer, aside, form, script, style, noscript, " +
	"figure, iframe, video, audio, button, select, input, textarea, label"

// boilerplatePrefixes are case-insensitive prefixes of phrases that mark a
// block as site furniture rather than content.
var boilerplatePrefixes = []string{
	"read more",
	"related",
	"advertisement",
	"sponsored",
	"sign up",
	"subscribe",
	"share",
	"follow us",
	"copyright",
	"all rights reserved",
}

// isBoilerplate reports whether the normalized text starts with a known
// boilerplate phrase.
func isBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, prefix := range boilerplatePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ExtractBlocks walks the subtree under root and returns its ordered,
// deduplicated sequence of content blocks. Malformed or absent nodes simply
// produce fewer blocks; an empty result is valid, never an error.
func ExtractBlocks(root Node) []Block {
	blocks, _ := extractBlocks(root)
	return blocks
}

// extractBlocks is ExtractBlocks plus a count of blocks dropped as
// boilerplate, which the container scorer uses as a penalty signal.
func extractBlocks(root Node) ([]Block, int) {
	if root == nil {
		return nil, 0
	}

	var blocks []Block
	boilerplateHits := 0
	seen := make(map[uint64]struct{})

	for _, n := range root.Find(blockSelector) {
		if n.HasAncestor(excludeSelector) {
			continue
		}
		text := collapseWhitespace(n.Text())
		if text == "" {
			continue
		}
		if isBoilerplate(text) {
			boilerplateHits++
			continue
		}
		kind, ok := kindForTag(n.Tag())
		if !ok {
			continue
		}
		if utf8.RuneCountInString(text) < minBlockLength(kind) {
			continue
		}
		key := xxhash.Sum64String(strings.ToLower(text))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		blocks = append(blocks, Block{
			Index: len(blocks),
			Text:  text,
			Kind:  kind,
			Node:  n,
		})
	}
	return blocks, boilerplateHits
}

package tothepoint

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// BodySource identifies which fallback source produced an extraction.
type BodySource string

// BodySource values, in fallback order.
const (
	SourceLinkedData      BodySource = "linked-data"
	SourceMarkedContainer BodySource = "marked-container"
	SourceScoredContainer BodySource = "scored-container"
	SourceAbsent          BodySource = "absent"
)

// BodyExtraction is the result of locating the article body. When Source is
// SourceAbsent, Text is empty and Blocks is nil; that is a normal outcome
// for non-article pages, not an error. Reasons accumulates short diagnostic
// tags in the order the fallback chain produced them.
type BodyExtraction struct {
	Text    string     `json:"text"`
	Blocks  []Block    `json:"blocks"`
	Source  BodySource `json:"source"`
	Reasons []string   `json:"reasons"`
}

// Found reports whether any fallback source produced a valid body.
func (e BodyExtraction) Found() bool { return e.Source != SourceAbsent }

// Validity gate and scoring weights for container selection.
const (
	minBodyChars  = 250
	minBodyBlocks = 3
	maxCandidates = 30

	paragraphWeight    = 180
	headingWeight      = 60
	listItemWeight     = 30
	quoteWeight        = 90
	linkDensityWeight  = 1200
	boilerplateWeight  = 250
	articleMarkerBonus = 500
	mainMarkerBonus    = 250
)

// Selectors identifying explicitly marked article containers.
const (
	markedBodySelector = `[itemprop~="articleBody"]`
	articleSelector    = "article"
	mainSelector       = `main, [role="main"]`
	candidateSelector  = "section, div, article, main"
)

// ExtractBody locates the article body under root, trying three sources in
// order and returning the first that passes the validity gate:
//
//  1. an articleBody field inside the decoded linked-data records,
//     normalized paragraph by paragraph;
//  2. blocks extracted from nodes explicitly marked as the article body;
//  3. the best-scoring candidate container.
//
// If none validate the result has Source == SourceAbsent. ExtractBody never
// returns an error: a missing body is a typed absence.
func ExtractBody(root Node, records []MetadataRecord) BodyExtraction {
	var reasons []string

	if blocks, reason := linkedDataBlocks(records); blocks != nil {
		return bodyResult(SourceLinkedData, blocks, append(reasons, reason))
	} else {
		reasons = append(reasons, reason)
	}

	if root == nil {
		return BodyExtraction{Source: SourceAbsent, Reasons: append(reasons, "no-document")}
	}

	if blocks, reason := markedContainerBlocks(root); blocks != nil {
		return bodyResult(SourceMarkedContainer, blocks, append(reasons, reason))
	} else {
		reasons = append(reasons, reason)
	}

	if blocks, reason := scoredContainerBlocks(root); blocks != nil {
		return bodyResult(SourceScoredContainer, blocks, append(reasons, reason))
	} else {
		reasons = append(reasons, reason)
	}

	return BodyExtraction{Source: SourceAbsent, Reasons: reasons}
}

// bodyResult assembles a successful extraction from a validated block
// sequence.
func bodyResult(source BodySource, blocks []Block, reasons []string) BodyExtraction {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}
	return BodyExtraction{
		Text:    strings.Join(texts, " "),
		Blocks:  blocks,
		Source:  source,
		Reasons: reasons,
	}
}

// validBody applies the validity gate: at least minBodyChars characters of
// concatenated text and at least minBodyBlocks blocks.
func validBody(blocks []Block) (int, bool) {
	chars := 0
	for i, b := range blocks {
		if i > 0 {
			chars++ // joining space
		}
		chars += utf8.RuneCountInString(b.Text)
	}
	return chars, chars >= minBodyChars && len(blocks) >= minBodyBlocks
}

// linkedDataBlocks synthesizes blocks from the first article-typed metadata
// record carrying body text. The body is split on newline runs and each
// paragraph is normalized and boilerplate-filtered like any other block.
func linkedDataBlocks(records []MetadataRecord) ([]Block, string) {
	for _, rec := range records {
		if !IsArticleType(rec.Types) || !rec.Body.Present() {
			continue
		}

		var blocks []Block
		seen := make(map[uint64]struct{})
		for _, part := range rec.Body.Parts() {
			for _, para := range strings.FieldsFunc(part, func(r rune) bool { return r == '\n' || r == '\r' }) {
				text := collapseWhitespace(para)
				if text == "" || isBoilerplate(text) {
					continue
				}
				if utf8.RuneCountInString(text) < minBlockLength(KindParagraph) {
					continue
				}
				key := xxhash.Sum64String(strings.ToLower(text))
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				blocks = append(blocks, Block{Index: len(blocks), Text: text, Kind: KindParagraph})
			}
		}

		if chars, ok := validBody(blocks); ok {
			return blocks, fmt.Sprintf("linked-data:ok blocks=%d chars=%d", len(blocks), chars)
		}
		return nil, "linked-data:below-threshold"
	}
	return nil, "linked-data:no-record"
}

// markedContainerBlocks extracts blocks from nodes explicitly marked as the
// article body. Nested duplicate markers are collapsed by keeping only
// top-level marker nodes; blocks are merged across markers in document
// order and deduplicated again.
func markedContainerBlocks(root Node) ([]Block, string) {
	markers := topLevelNodes(root.Find(markedBodySelector))
	if len(markers) == 0 {
		return nil, "marked-container:none"
	}

	var blocks []Block
	seen := make(map[uint64]struct{})
	for _, marker := range markers {
		for _, b := range ExtractBlocks(marker) {
			key := xxhash.Sum64String(strings.ToLower(b.Text))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			b.Index = len(blocks)
			blocks = append(blocks, b)
		}
	}

	if chars, ok := validBody(blocks); ok {
		return blocks, fmt.Sprintf("marked-container:ok blocks=%d chars=%d", len(blocks), chars)
	}
	return nil, "marked-container:below-threshold"
}

// topLevelNodes drops every node contained in another node of the same set.
func topLevelNodes(nodes []Node) []Node {
	var top []Node
	for i, n := range nodes {
		nested := false
		for j, other := range nodes {
			if i != j && other.Contains(n) {
				nested = true
				break
			}
		}
		if !nested {
			top = append(top, n)
		}
	}
	return top
}

// candidate is an ephemeral scored container; it exists only during
// selection.
type candidate struct {
	node   Node
	blocks []Block
	score  int
}

// scoredContainerBlocks enumerates candidate containers, scores each by its
// block composition and link density, and returns the blocks of the best
// valid candidate.
func scoredContainerBlocks(root Node) ([]Block, string) {
	candidates := seedCandidates(root)
	if len(candidates) == 0 {
		return nil, "scored-container:no-candidates"
	}

	var best *candidate
	for _, node := range candidates {
		blocks, boilerplateHits := extractBlocks(node)
		if len(blocks) == 0 {
			continue
		}
		if _, ok := validBody(blocks); !ok {
			continue
		}
		score := containerScore(blocks, linkDensity(node), markerBonus(node), boilerplateHits)
		if best == nil || score > best.score {
			best = &candidate{node: node, blocks: blocks, score: score}
		}
	}

	if best == nil {
		return nil, "scored-container:below-threshold"
	}
	return best.blocks, fmt.Sprintf("scored-container:ok score=%d blocks=%d", best.score, len(best.blocks))
}

// seedCandidates collects candidate containers: semantic markers first,
// then any generic container holding at least two qualifying paragraphs,
// ranked by paragraph count and capped to bound cost on large documents.
func seedCandidates(root Node) []Node {
	var nodes []Node
	appendUnique := func(n Node) {
		for _, existing := range nodes {
			if existing.Equal(n) {
				return
			}
		}
		nodes = append(nodes, n)
	}

	for _, sel := range []string{articleSelector, markedBodySelector, mainSelector} {
		for _, n := range root.Find(sel) {
			appendUnique(n)
		}
	}

	type counted struct {
		node       Node
		paragraphs int
	}
	var generic []counted
	for _, n := range root.Find(candidateSelector) {
		count := qualifyingParagraphs(n)
		if count >= 2 {
			generic = append(generic, counted{node: n, paragraphs: count})
		}
	}
	sort.SliceStable(generic, func(i, j int) bool {
		return generic[i].paragraphs > generic[j].paragraphs
	})
	if len(generic) > maxCandidates {
		generic = generic[:maxCandidates]
	}
	for _, c := range generic {
		appendUnique(c.node)
	}
	return nodes
}

// qualifyingParagraphs counts paragraph descendants long enough to be
// content.
func qualifyingParagraphs(n Node) int {
	count := 0
	for _, p := range n.Find("p") {
		text := collapseWhitespace(p.Text())
		if text == "" || isBoilerplate(text) {
			continue
		}
		if utf8.RuneCountInString(text) >= minBlockLength(KindParagraph) {
			count++
		}
	}
	return count
}

// containerScore computes the composite container score from the extracted
// block composition, the container's link density, its semantic marker
// bonus, and the number of boilerplate blocks it carried.
func containerScore(blocks []Block, linkDensity float64, bonus, boilerplateHits int) int {
	textLen := 0
	counts := map[TagKind]int{}
	for _, b := range blocks {
		textLen += utf8.RuneCountInString(b.Text)
		counts[b.Kind]++
	}
	score := textLen +
		paragraphWeight*counts[KindParagraph] +
		headingWeight*counts[KindHeading] +
		listItemWeight*counts[KindListItem] +
		quoteWeight*counts[KindQuote]
	score -= int(math.Round(linkDensityWeight * linkDensity))
	score -= boilerplateWeight * boilerplateHits
	return score + bonus
}

// linkDensity is the fraction of a container's visible text that sits
// inside anchor descendants; 0 when the container has no text.
func linkDensity(n Node) float64 {
	total := utf8.RuneCountInString(collapseWhitespace(n.Text()))
	if total == 0 {
		return 0
	}
	linked := 0
	for _, a := range n.Find("a") {
		linked += utf8.RuneCountInString(collapseWhitespace(a.Text()))
	}
	return float64(linked) / float64(total)
}

// markerBonus rewards containers that declare themselves as the article.
func markerBonus(n Node) int {
	if n.Matches(articleSelector) || n.Matches(markedBodySelector) {
		return articleMarkerBonus
	}
	if n.Matches(mainSelector) {
		return mainMarkerBonus
	}
	return 0
}

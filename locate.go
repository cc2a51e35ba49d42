package tothepoint

// Location bundles the body extraction with the ranking computed over it.
// These two outputs are the only data the presentation layer may rely on.
type Location struct {
	Body    BodyExtraction `json:"body"`
	Ranking RankingResult  `json:"ranking"`
}

// Locator runs the full pipeline over a single document snapshot: body
// extraction through the fallback chain, then title-to-passage ranking.
type Locator interface {
	// Locate extracts the article body under root, using the decoded
	// linked-data records at the boundary, and ranks its blocks against
	// title. A document with no plausible body yields an absent body and an
	// empty match list, not an error.
	Locate(root Node, records []MetadataRecord, title string) (*Location, error)
}

// Pipeline is the canonical Locator implementation composing ExtractBody
// and Rank. It holds no state between calls.
type Pipeline struct{}

var _ Locator = (*Pipeline)(nil)

// NewPipeline returns a new Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Locate implements Locator.
func (p *Pipeline) Locate(root Node, records []MetadataRecord, title string) (*Location, error) {
	if root == nil && len(records) == 0 {
		return nil, Errorf(EINVALID, "document root required")
	}

	body := ExtractBody(root, records)
	loc := &Location{Body: body}
	if body.Found() {
		loc.Ranking = Rank(body.Blocks, title)
	}
	return loc, nil
}

package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	tothepoint "github.com/drivernf/to-the-point"
)

// Page is a parsed document plus the boundary lookups the pipeline needs:
// the root node, the decoded linked-data records, the page title, and the
// article sniff.
type Page struct {
	doc *goquery.Document
}

// Parse parses raw HTML into a Page. Empty or unparsable input returns an
// EINVALID error; everything past this point uses typed absences instead.
func Parse(rawHTML string) (*Page, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tothepoint.Errorf(tothepoint.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, tothepoint.Errorf(tothepoint.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// Root returns the document body as the extraction root, or the document
// node itself for fragment trees without one.
func (p *Page) Root() tothepoint.Node {
	if body := p.doc.Find("body").First(); body.Length() > 0 {
		return &Node{sel: body}
	}
	return &Node{sel: p.doc.Selection}
}

// Title returns the <title> text, whitespace-collapsed.
func (p *Page) Title() string {
	return strings.Join(strings.Fields(p.doc.Find("title").First().Text()), " ")
}

// Metadata decodes the page's embedded linked-data blocks. Malformed or
// absent blocks yield fewer records, never an error.
func (p *Page) Metadata() []tothepoint.MetadataRecord {
	var blocks []json.RawMessage
	p.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, json.RawMessage(text))
		}
	})
	return tothepoint.DecodeMetadata(blocks)
}

// IsArticle reports whether the page declares itself an article: a
// linked-data record with an article type, or an og:type meta tag of
// "article".
func (p *Page) IsArticle() bool {
	for _, rec := range p.Metadata() {
		if tothepoint.IsArticleType(rec.Types) {
			return true
		}
	}
	ogType, _ := p.doc.Find(`meta[property="og:type"]`).First().Attr("content")
	return strings.EqualFold(strings.TrimSpace(ogType), "article")
}

// Headline returns the best title for ranking: the first linked-data
// headline, falling back to the <title> text.
func (p *Page) Headline() string {
	for _, rec := range p.Metadata() {
		if rec.Headline != "" {
			return rec.Headline
		}
	}
	return p.Title()
}

package goquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tothepoint "github.com/drivernf/to-the-point"
	gq "github.com/drivernf/to-the-point/goquery"
)

func TestExtractBody(t *testing.T) {
	t.Parallel()

	t.Run("prefers the linked-data articleBody when valid", func(t *testing.T) {
		t.Parallel()

		page, err := gq.Parse(`<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{"@type": "NewsArticle", "headline": "Reservoir Levels Fall", "articleBody": "The reservoir dropped to a third of its usual volume after months without meaningful rainfall across the region.\nOfficials announced staged restrictions on agricultural use starting next week, the first such measure in a decade.\nHydrologists warn that groundwater extraction is already running far beyond sustainable replenishment rates."}
</script>
</head><body>
<article><p>A rendered teaser paragraph that is much shorter than the metadata body.</p></article>
</body></html>`)
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceLinkedData, body.Source)
		require.Len(t, body.Blocks, 3)
		assert.True(t, strings.HasPrefix(body.Blocks[0].Text, "The reservoir dropped"))
		for _, b := range body.Blocks {
			assert.Equal(t, tothepoint.KindParagraph, b.Kind)
			assert.Nil(t, b.Node)
		}
		require.NotEmpty(t, body.Reasons)
		assert.True(t, strings.HasPrefix(body.Reasons[len(body.Reasons)-1], "linked-data:ok"))
	})

	t.Run("falls back to the marked container, keeping only top-level markers", func(t *testing.T) {
		t.Parallel()

		page, err := gq.Parse(`<!DOCTYPE html>
<html><body>
<div itemprop="articleBody">
	<p>Negotiators reached a provisional agreement late on Thursday after a final round of talks in the capital.</p>
	<div itemprop="articleBody">
		<p>The agreement still requires ratification by all member parliaments before it can take effect.</p>
	</div>
	<p>Observers described the outcome as narrow but workable given the positions both sides started from.</p>
</div>
</body></html>`)
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceMarkedContainer, body.Source)
		require.Len(t, body.Blocks, 3)
		assert.Contains(t, body.Reasons, "linked-data:no-record")
		assert.True(t, strings.HasPrefix(body.Reasons[len(body.Reasons)-1], "marked-container:ok"))
	})

	t.Run("scores containers when nothing is marked", func(t *testing.T) {
		t.Parallel()

		page, err := gq.Parse(`<!DOCTYPE html>
<html><body>
<div class="promo">
	<p><a href="/a">A first promotional paragraph wrapped entirely in a hyperlink element.</a></p>
	<p><a href="/b">A second promotional paragraph wrapped entirely in a hyperlink element.</a></p>
	<p><a href="/c">A third promotional paragraph wrapped entirely in a hyperlink element.</a></p>
	<p><a href="/d">A fourth promotional paragraph wrapped entirely in a hyperlink element.</a></p>
</div>
<div class="story">
	<h2>Glacier Survey Results</h2>
	<p>Researchers measured ice thickness at forty sites along the northern ridge during the spring campaign.</p>
	<p>The survey found thinning at every site, with losses concentrated near the terminus of the glacier.</p>
	<p>Longer melt seasons and reduced snowfall accumulation both contribute to the measured imbalance.</p>
</div>
</body></html>`)
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceScoredContainer, body.Source)
		require.Len(t, body.Blocks, 4)
		assert.Equal(t, "Glacier Survey Results", body.Blocks[0].Text)
		assert.True(t, strings.HasPrefix(body.Reasons[len(body.Reasons)-1], "scored-container:ok"))
	})

	t.Run("two short paragraphs fail the validity gate", func(t *testing.T) {
		t.Parallel()

		// 180 characters of total text across two paragraphs: below both
		// the 250-character and the 3-block thresholds.
		page, err := gq.Parse(`<!DOCTYPE html>
<html><body>
<div>
	<p>This first paragraph runs to exactly ninety characters of text if you count every letter.</p>
	<p>The second paragraph is about as short, leaving the page far below the body threshold.</p>
</div>
</body></html>`)
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceAbsent, body.Source)
		assert.False(t, body.Found())
		assert.Empty(t, body.Text)
		assert.Empty(t, body.Blocks)
		assert.Contains(t, body.Reasons, "scored-container:below-threshold")
	})

	t.Run("a page with no plausible container is a typed absence", func(t *testing.T) {
		t.Parallel()

		page, err := gq.Parse("<html><body><p>One lonely paragraph of modest length sits here.</p></body></html>")
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceAbsent, body.Source)
		assert.Equal(t, []string{
			"linked-data:no-record",
			"marked-container:none",
			"scored-container:no-candidates",
		}, body.Reasons)
	})

	t.Run("link-heavy containers lose to editorial containers", func(t *testing.T) {
		t.Parallel()

		// Both containers pass the validity gate; the promo side carries
		// enough anchored text for the link-density penalty to decide.
		var sb strings.Builder
		for _, n := range []string{"one", "two", "three", "four", "five", "six"} {
			sb.WriteString(`<p><a href="/x">Anchored promotional paragraph ` + n +
				` of respectable length for scoring purposes.</a></p>`)
		}
		promo := sb.String()
		page, err := gq.Parse(`<!DOCTYPE html><html><body>
<div class="promo">` + promo + `</div>
<div class="story">
	<p>Editorial paragraph one carries plain narrative text with no hyperlinks anywhere inside it.</p>
	<p>Editorial paragraph two continues the account in the same unadorned and linkless fashion.</p>
	<p>Editorial paragraph three closes the piece with a short summary of what happened afterwards.</p>
</div>
</body></html>`)
		require.NoError(t, err)

		body := tothepoint.ExtractBody(page.Root(), page.Metadata())

		assert.Equal(t, tothepoint.SourceScoredContainer, body.Source)
		require.NotEmpty(t, body.Blocks)
		assert.True(t, strings.HasPrefix(body.Blocks[0].Text, "Editorial paragraph one"))
	})
}

package main

import (
	"encoding/json"
	"fmt"

	tothepoint "github.com/drivernf/to-the-point"
	gq "github.com/drivernf/to-the-point/goquery"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
	rawHTML, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	page, err := gq.Parse(rawHTML)
	if err != nil {
		return err
	}

	isArticle := page.IsArticle()
	if !isArticle && !c.Force {
		fmt.Fprintln(deps.Stdout, "Page does not declare itself an article (use --force to rank anyway).")
		return nil
	}

	title := c.Title
	if title == "" {
		title = page.Headline()
	}

	loc, err := deps.Locator.Locate(page.Root(), page.Metadata(), title)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			IsArticle bool                      `json:"isArticle"`
			Title     string                    `json:"title"`
			Body      tothepoint.BodyExtraction `json:"body"`
			Ranking   tothepoint.RankingResult  `json:"ranking"`
		}{isArticle, title, loc.Body, loc.Ranking})
	}

	if !loc.Body.Found() {
		fmt.Fprintf(deps.Stdout, "No article body found (%v).\n", loc.Body.Reasons)
		return nil
	}

	matches := loc.Ranking.Matches
	if c.Top > 0 && len(matches) > c.Top {
		matches = matches[:c.Top]
	}
	if len(matches) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches for %q (%d blocks, %d chunks).\n",
			title, len(loc.Body.Blocks), loc.Ranking.ChunkCount)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\nSource: %s\n\n", title, loc.Body.Source)
	for i, m := range matches {
		fmt.Fprintf(deps.Stdout, "%2d. score=%.4f blocks=%d-%d\n    %s\n",
			i+1, m.Score, m.StartBlock, m.EndBlock, m.Snippet)
	}
	return nil
}

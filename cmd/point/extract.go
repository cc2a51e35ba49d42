package main

import (
	"fmt"
	"strings"

	tothepoint "github.com/drivernf/to-the-point"
	gq "github.com/drivernf/to-the-point/goquery"
	"github.com/drivernf/to-the-point/htmlmd"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rawHTML, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	page, err := gq.Parse(rawHTML)
	if err != nil {
		return err
	}

	body := tothepoint.ExtractBody(page.Root(), page.Metadata())
	if !body.Found() {
		fmt.Fprintf(deps.Stdout, "No article body found (%v).\n", body.Reasons)
		return nil
	}

	if c.Format == "markdown" {
		md, err := renderMarkdown(body.Blocks)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	for _, b := range body.Blocks {
		fmt.Fprintln(deps.Stdout, b.Text)
	}
	return nil
}

// renderMarkdown rebuilds HTML from the extracted blocks and converts it to
// Markdown. Blocks without a source node (linked-data) become paragraphs.
func renderMarkdown(blocks []tothepoint.Block) (string, error) {
	var sb strings.Builder
	for _, b := range blocks {
		if b.Node == nil {
			sb.WriteString("<p>" + b.Text + "</p>\n")
			continue
		}
		outer, err := gq.OuterHTML(b.Node)
		if err != nil {
			return "", err
		}
		sb.WriteString(outer + "\n")
	}
	return htmlmd.NewConverter().Convert(sb.String())
}

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tothepoint "github.com/drivernf/to-the-point"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Locator tothepoint.Locator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Locate  LocateCmd  `cmd:"" help:"Extract the article body and rank its passages against a title"`
	Extract ExtractCmd `cmd:"" help:"Extract the article body only"`
	Serve   ServeCmd   `cmd:"" help:"Serve the locate API over HTTP"`
}

// LocateCmd is the "locate" subcommand.
type LocateCmd struct {
	File  string `arg:"" help:"HTML file to read ('-' for stdin)"`
	Title string `short:"t" help:"Query title (defaults to the page's headline, then <title>)"`
	JSON  bool   `help:"Emit the full result as JSON"`
	Top   int    `short:"n" default:"10" help:"Maximum matches to print"`
	Force bool   `short:"f" help:"Rank even when the page does not declare itself an article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string `arg:"" help:"HTML file to read ('-' for stdin)"`
	Format string `enum:"text,markdown" default:"text" help:"Output format (text or markdown)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// readInput reads the document from a file path, or from stdin when the
// path is "-".
func readInput(deps *Dependencies, file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", tothepoint.Errorf(tothepoint.EINVALID, "read stdin: %v", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", tothepoint.Errorf(tothepoint.ENOTFOUND, "read %s: %v", file, err)
	}
	return string(data), nil
}

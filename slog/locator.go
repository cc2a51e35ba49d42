// Package slog provides log/slog-based logging decorators for domain
// interfaces.
package slog

import (
	"log/slog"
	"time"

	tothepoint "github.com/drivernf/to-the-point"
)

// Ensure LoggingLocator implements tothepoint.Locator.
var _ tothepoint.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator with observability logging: which fallback
// source produced the body, the accumulated diagnostic tags, and ranking
// counts.
type LoggingLocator struct {
	next   tothepoint.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next tothepoint.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped Locator and logs the outcome.
func (l *LoggingLocator) Locate(root tothepoint.Node, records []tothepoint.MetadataRecord, title string) (*tothepoint.Location, error) {
	begin := time.Now()
	loc, err := l.next.Locate(root, records, title)
	if err != nil {
		l.logger.Error("locate failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	l.logger.Info("locate",
		"source", string(loc.Body.Source),
		"reasons", loc.Body.Reasons,
		"blocks", len(loc.Body.Blocks),
		"queryTokens", loc.Ranking.QueryTokenCount,
		"chunks", loc.Ranking.ChunkCount,
		"matches", len(loc.Ranking.Matches),
		"duration", time.Since(begin),
	)
	return loc, nil
}

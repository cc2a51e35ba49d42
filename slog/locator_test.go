package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tothepoint "github.com/drivernf/to-the-point"
	"github.com/drivernf/to-the-point/mock"
	ptslog "github.com/drivernf/to-the-point/slog"
)

func TestLoggingLocator(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the outcome", func(t *testing.T) {
		t.Parallel()

		want := &tothepoint.Location{
			Body: tothepoint.BodyExtraction{
				Source:  tothepoint.SourceScoredContainer,
				Reasons: []string{"scored-container:ok score=920 blocks=4"},
			},
		}
		next := &mock.Locator{
			LocateFn: func(_ tothepoint.Node, _ []tothepoint.MetadataRecord, title string) (*tothepoint.Location, error) {
				assert.Equal(t, "glacier survey", title)
				return want, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		got, err := ptslog.NewLoggingLocator(next, logger).Locate(nil, nil, "glacier survey")
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Contains(t, buf.String(), "source=scored-container")
	})

	t.Run("propagates and logs errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Locator{
			LocateFn: func(tothepoint.Node, []tothepoint.MetadataRecord, string) (*tothepoint.Location, error) {
				return nil, errors.New("boom")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, err := ptslog.NewLoggingLocator(next, logger).Locate(nil, nil, "x")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "locate failed")
	})
}

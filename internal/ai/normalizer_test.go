package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/ai"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// fakeCompleter scripts completion responses for normalizer and analyzer
// tests.
type fakeCompleter struct {
	configured bool
	response   string
	err        error
	calls      int
}

func (f *fakeCompleter) Complete(
	_ context.Context, _, _ string, _ float64, _ int,
) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func TestCleanContentUnconfiguredPassesThrough(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{configured: false}
	n := ai.NewNormalizer(fake, logger.NewNoOp())

	got := n.CleanContent(context.Background(), "original body", "Title")
	assert.Equal(t, "original body", got)
	assert.Zero(t, fake.calls, "unconfigured normalizer must not call the API")
}

func TestCleanContentSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{
		configured: true,
		response:   `{"cleaned_content": "clean body text"}`,
	}
	n := ai.NewNormalizer(fake, logger.NewNoOp())

	got := n.CleanContent(context.Background(), "raw body", "Title")
	assert.Equal(t, "clean body text", got)
}

func TestCleanContentExtractsWrappedJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{
		configured: true,
		response:   "Here you go:\n```json\n{\"cleaned_content\": \"clean body text\"}\n```",
	}
	n := ai.NewNormalizer(fake, logger.NewNoOp())

	got := n.CleanContent(context.Background(), "raw body", "Title")
	assert.Equal(t, "clean body text", got)
}

func TestCleanContentFailureFallsBack(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{configured: true, err: errors.New("timeout")}
	n := ai.NewNormalizer(fake, logger.NewNoOp())

	got := n.CleanContent(context.Background(), "raw body", "Title")
	assert.Equal(t, "raw body", got)
}

func TestCleanContentUnparseableFallsBack(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{configured: true, response: "not json at all"}
	n := ai.NewNormalizer(fake, logger.NewNoOp())

	got := n.CleanContent(context.Background(), "raw body", "Title")
	assert.Equal(t, "raw body", got)
}

func TestCleanContentJSONArtifactGuard(t *testing.T) {
	t.Parallel()

	for _, cleaned := range []string{`{"echoed": "wrapper"}`, `"quoted content"`} {
		payload, err := json.Marshal(map[string]string{"cleaned_content": cleaned})
		require.NoError(t, err)

		fake := &fakeCompleter{configured: true, response: string(payload)}
		n := ai.NewNormalizer(fake, logger.NewNoOp())

		got := n.CleanContent(context.Background(), "raw body", "Title")
		assert.Equal(t, "raw body", got,
			"cleaned content %q must be discarded", cleaned)
	}
}

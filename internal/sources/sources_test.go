package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/sources"
)

func TestAllReturnsFixedOrder(t *testing.T) {
	t.Parallel()

	all := sources.All()
	require.Len(t, all, 6)

	ids := make([]string, 0, len(all))
	for _, s := range all {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		"textiletoday", "tbsnews", "rmgbd", "bgmea", "financialexpress", "textilefocus",
	}, ids)
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	first := sources.All()
	first[0].Name = "mutated"

	again := sources.All()
	assert.Equal(t, "Textile Today", again[0].Name)
}

func TestGet(t *testing.T) {
	t.Parallel()

	s, err := sources.Get("bgmea")
	require.NoError(t, err)
	assert.Equal(t, "BGMEA", s.Name)
	assert.Equal(t, "https://www.bgmea.com.bd/page/all-news", s.URL)

	_, err = sources.Get("nope")
	require.Error(t, err)
	assert.False(t, sources.Exists("nope"))
	assert.True(t, sources.Exists("rmgbd"))
}

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry([]Source{
		{Name: "Maeil Business", URL: "https://www.mk.co.kr/rss/30000001/"},
		{Name: "GeekNews", URL: "https://news.hada.io/rss/news"},
	})

	assert.Equal(t, []string{"Maeil Business", "GeekNews"}, reg.Names())

	src, ok := reg.Lookup("GeekNews")
	require.True(t, ok)
	assert.Equal(t, "https://news.hada.io/rss/news", src.URL)

	_, ok = reg.Lookup("Unknown")
	assert.False(t, ok)

	def, ok := reg.Default()
	require.True(t, ok)
	assert.Equal(t, "Maeil Business", def.Name)
}

func TestRegistry_SkipsInvalidAndDuplicates(t *testing.T) {
	reg := NewRegistry([]Source{
		{Name: "", URL: "https://example.com/missing-name"},
		{Name: "No URL", URL: ""},
		{Name: "Valid", URL: "https://example.com/a"},
		{Name: "Valid", URL: "https://example.com/duplicate"},
	})

	assert.Equal(t, []string{"Valid"}, reg.Names())
	src, _ := reg.Lookup("Valid")
	assert.Equal(t, "https://example.com/a", src.URL, "first registration wins")
}

func TestRegistry_Empty(t *testing.T) {
	reg := NewRegistry(nil)
	assert.Empty(t, reg.Names())
	_, ok := reg.Default()
	assert.False(t, ok)
}
